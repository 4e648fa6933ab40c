package config_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/config"
)

func TestDefault(t *testing.T) {
	conf := config.Default()
	c, err := conf.Calculator.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	r, err := c.Run("pi")
	if err != nil {
		t.Fatal(err)
	}
	if r.Value != 0 || r.Kind != calc.NodeConstant {
		t.Errorf("pi should be an implicit constant, got %v %v", r, r.Kind)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		ok   bool
	}{
		{"empty", "", true},
		{"partial", "http:\n  port: \"9000\"\n", true},
		{"full", `
logging:
  log_level: debug
  log_to_file: true
  filename: x.log
calculator:
  implicit_constants: false
  builtins: [pi, e]
  builtin_precision: 256
  constants:
    g: 9.8
  result_format: "%.3f"
  history_file: hist
  operators:
    - {char: ":", rank: 0, op: assign}
    - {char: "+", rank: 1, op: add}
http:
  port: "80"
  allow_origins: [example.com]
  debug_mode: true
`, true},
		{"unknown-field", "calculator:\n  implicit: true\n", false},
		{"bad-type", "http:\n  allow_origins: 7\n", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			conf := config.Default()
			err := config.Parse([]byte(c.yaml), &conf)
			if (err == nil) != c.ok {
				t.Errorf("want ok=%t, got %v", c.ok, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calc.yaml")
	data := "calculator:\n  builtins: [pi]\n  constants:\n    g: 9.8\nhttp:\n  port: \"9000\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.ENV_CONFIG_FILE_PATH, "")
	t.Setenv(config.ENV_LOG_LEVEL, "error")
	conf, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if conf.HTTP.Port != "9000" {
		t.Errorf("port: want 9000, got %q", conf.HTTP.Port)
	}
	if conf.Logging.LogLevel != "error" {
		t.Errorf("log level not overridden: %q", conf.Logging.LogLevel)
	}
	if !conf.Calculator.ImplicitConstants || conf.Calculator.ResultFormat != "%g" {
		t.Errorf("defaults lost: %+v", conf.Calculator)
	}
	c, err := conf.Calculator.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	if v, err := c.Table().Value("pi"); err != nil || math.Abs(v-math.Pi) > 1e-15 {
		t.Errorf("pi: got %v, %v", v, err)
	}
	if v, err := c.Table().Value("g"); err != nil || v != 9.8 {
		t.Errorf("g: got %v, %v", v, err)
	}
}

func TestLoadEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	if err := os.WriteFile(path, []byte("http:\n  port: \"1234\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.ENV_CONFIG_FILE_PATH, path)
	t.Setenv(config.ENV_HTTP_PORT, "")
	conf, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if conf.HTTP.Port != "1234" {
		t.Errorf("port: want 1234, got %q", conf.HTTP.Port)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want not exist, got %v", err)
	}
}

func TestTable(t *testing.T) {
	cases := []struct {
		name string
		ops  []config.OperatorConfig
		ok   bool
	}{
		{"default", nil, true},
		{"custom", []config.OperatorConfig{{Char: ":", Rank: 0, Op: "assign"}, {Char: "x", Rank: 3, Op: "mul"}}, true},
		{"long-char", []config.OperatorConfig{{Char: ":=", Op: "assign"}}, false},
		{"bad-op", []config.OperatorConfig{{Char: "^", Rank: 6, Op: "pow"}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cc := config.CalculatorConfig{Operators: c.ops}
			tbl, err := cc.Table()
			if !c.ok {
				if err == nil {
					t.Errorf("no error for %v", c.ops)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if _, err := tbl.AssignmentOperator(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestNewNoAssignment(t *testing.T) {
	cc := config.CalculatorConfig{Operators: []config.OperatorConfig{{Char: "+", Rank: 1, Op: "add"}}}
	if _, err := cc.New(nil); !errors.Is(err, calc.ErrNoAssignmentOperator) {
		t.Errorf("want no assignment operator, got %v", err)
	}
}
