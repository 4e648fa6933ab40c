// Package config reads the calculator's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/zephyrtronium/calc"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CALC_CONFIG_FILE_PATH"

	ENV_LOG_LEVEL   = "CALC_LOG_LEVEL"
	ENV_HTTP_PORT   = "CALC_HTTP_PORT"
	ENV_HISTORY     = "CALC_HISTORY_FILE"
	ENV_GIN_DEBUG   = "CALC_GIN_DEBUG_MODE"
	ENV_LOG_TO_FILE = "CALC_LOG_TO_FILE"
)

type LoggerConfig struct {
	LogToFile       bool   `json:"log_to_file" yaml:"log_to_file"`
	Filename        string `json:"filename" yaml:"filename"`
	MaxSize         int    `json:"max_size" yaml:"max_size"`
	MaxAge          int    `json:"max_age" yaml:"max_age"`
	MaxBackups      int    `json:"max_backups" yaml:"max_backups"`
	LogLevel        string `json:"log_level" yaml:"log_level"`
	IncludeSrc      bool   `json:"include_src" yaml:"include_src"`
	CompressOldLogs bool   `json:"compress_old_logs" yaml:"compress_old_logs"`
}

// OperatorConfig describes one operator of a custom operator table.
type OperatorConfig struct {
	Char string `json:"char" yaml:"char"`
	Rank int    `json:"rank" yaml:"rank"`
	// Op is one of assign, add, sub, mul, div, mod.
	Op string `json:"op" yaml:"op"`
}

type CalculatorConfig struct {
	ImplicitConstants bool               `json:"implicit_constants" yaml:"implicit_constants"`
	Builtins          []string           `json:"builtins" yaml:"builtins"`
	BuiltinPrecision  uint               `json:"builtin_precision" yaml:"builtin_precision"`
	Constants         map[string]float64 `json:"constants" yaml:"constants"`
	// ResultFormat is a fmt verb for printing results.
	ResultFormat string `json:"result_format" yaml:"result_format"`
	HistoryFile  string `json:"history_file" yaml:"history_file"`
	// Operators replaces the default operator table if it is not empty.
	Operators []OperatorConfig `json:"operators" yaml:"operators"`
}

type HTTPConfig struct {
	Port         string   `json:"port" yaml:"port"`
	AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
	DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
}

type Config struct {
	Logging    LoggerConfig     `json:"logging" yaml:"logging"`
	Calculator CalculatorConfig `json:"calculator" yaml:"calculator"`
	HTTP       HTTPConfig       `json:"http" yaml:"http"`
}

// Default returns the configuration used when there is no file.
func Default() Config {
	return Config{
		Logging: LoggerConfig{
			Filename:   "calc.log",
			MaxSize:    10,
			MaxAge:     28,
			MaxBackups: 3,
			LogLevel:   "error",
		},
		Calculator: CalculatorConfig{
			ImplicitConstants: true,
			BuiltinPrecision:  128,
			ResultFormat:      "%g",
			HistoryFile:       ".calc_history",
		},
		HTTP: HTTPConfig{
			Port:         "8080",
			AllowOrigins: []string{"*"},
		},
	}
}

// Load reads the configuration file at path, or at the path named by
// CALC_CONFIG_FILE_PATH if path is empty. Fields the file omits keep their
// defaults. If there is no path at all, Load returns the defaults. In either
// case, environment variables override the result.
func Load(path string) (Config, error) {
	conf := Default()
	if path == "" {
		path = os.Getenv(ENV_CONFIG_FILE_PATH)
	}
	if path != "" {
		yamlFile, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := Parse(yamlFile, &conf); err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}
	envOverride(&conf)
	return conf, nil
}

// Parse decodes YAML into conf. Unknown fields are an error.
func Parse(data []byte, conf *Config) error {
	return yaml.UnmarshalStrict(data, conf)
}

func envOverride(conf *Config) {
	if level := os.Getenv(ENV_LOG_LEVEL); level != "" {
		conf.Logging.LogLevel = level
	}
	if os.Getenv(ENV_LOG_TO_FILE) == "true" {
		conf.Logging.LogToFile = true
	}
	if port := os.Getenv(ENV_HTTP_PORT); port != "" {
		conf.HTTP.Port = port
	}
	if hist := os.Getenv(ENV_HISTORY); hist != "" {
		conf.Calculator.HistoryFile = hist
	}
	if os.Getenv(ENV_GIN_DEBUG) == "true" {
		conf.HTTP.DebugMode = true
	}
}

var opkinds = map[string]calc.OperatorKind{
	"assign": calc.OpAssign,
	"add":    calc.OpAdd,
	"sub":    calc.OpSub,
	"mul":    calc.OpMul,
	"div":    calc.OpDiv,
	"mod":    calc.OpMod,
}

// Table creates the symbol table described by the operator list, or the
// default table if the list is empty.
func (c *CalculatorConfig) Table() (*calc.Table, error) {
	if len(c.Operators) == 0 {
		return calc.NewTable(), nil
	}
	ops := make([]calc.Operator, 0, len(c.Operators))
	for _, o := range c.Operators {
		if len(o.Char) != 1 {
			return nil, fmt.Errorf("operator %q must be a single byte", o.Char)
		}
		k, ok := opkinds[o.Op]
		if !ok {
			return nil, fmt.Errorf("operator %q has unknown operation %q", o.Char, o.Op)
		}
		ops = append(ops, calc.Operator{Char: o.Char[0], Rank: o.Rank, Op: k})
	}
	return calc.NewTable(ops...), nil
}

// Options returns calculator options for the configuration. l may be nil
// to discard log messages.
func (c *CalculatorConfig) Options(l calc.Logger) ([]calc.Option, error) {
	t, err := c.Table()
	if err != nil {
		return nil, err
	}
	opts := []calc.Option{
		calc.WithTable(t),
		calc.WithImplicitConstants(c.ImplicitConstants),
	}
	if l != nil {
		opts = append(opts, calc.WithLogger(l))
	}
	if len(c.Builtins) > 0 {
		opts = append(opts, calc.WithBuiltins(c.BuiltinPrecision, c.Builtins...))
	}
	if len(c.Constants) > 0 {
		opts = append(opts, calc.WithConstants(c.Constants))
	}
	return opts, nil
}

// New creates a calculator from the configuration.
func (c *CalculatorConfig) New(l calc.Logger) (*calc.Calculator, error) {
	opts, err := c.Options(l)
	if err != nil {
		return nil, err
	}
	return calc.New(opts...)
}
