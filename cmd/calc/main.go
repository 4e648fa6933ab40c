package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/config"
	"github.com/zephyrtronium/calc/internal/logging"
	"github.com/zephyrtronium/calc/internal/repl"
	"github.com/zephyrtronium/calc/internal/server"
)

func main() {
	log.SetFlags(0)
	var (
		confname, inname, verb, addr string
		with                         [][2]string
		color, quiet                 bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`constant definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&confname, "config", "", "YAML configuration file (default $"+config.ENV_CONFIG_FILE_PATH+")")
	flag.StringVar(&inname, "in", "", "file of statements, one per line (- for stdin)")
	flag.StringVar(&verb, "fmt", "", "result formatting string (default from config)")
	flag.Func("given", "name=value constant definition (any number of times)", addwith)
	flag.StringVar(&addr, "http", "", "serve HTTP on this port instead of reading statements")
	flag.BoolVar(&color, "color", true, "color interactive output")
	flag.BoolVar(&quiet, "q", false, "print only results and errors")
	flag.Parse()

	conf, err := config.Load(confname)
	if err != nil {
		log.Fatal(err)
	}
	logging.Default(conf.Logging)
	if verb == "" {
		verb = conf.Calculator.ResultFormat
	}
	if addr != "" {
		conf.HTTP.Port = addr
	}
	for _, d := range with {
		nm, vl := d[0], d[1]
		v, err := given(vl)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		if conf.Calculator.Constants == nil {
			conf.Calculator.Constants = make(map[string]float64)
		}
		conf.Calculator.Constants[nm] = v
	}

	interactive := addr == "" && inname == "" && flag.NArg() == 0
	sink := &logging.Sink{Out: os.Stdout, Color: color && interactive, Quiet: quiet}
	c, err := conf.Calculator.New(sink)
	if err != nil {
		log.Fatal(err)
	}

	if addr != "" {
		if err := server.Run(conf.HTTP, c); err != nil {
			os.Exit(1)
		}
		return
	}

	s := repl.New(c, verb)
	if interactive {
		interact(s, conf.Calculator.HistoryFile)
		return
	}
	ok := true
	if inname != "" {
		good, err := batchFile(s, inname)
		if err != nil {
			log.Fatal(err)
		}
		ok = good
	}
	for _, arg := range flag.Args() {
		if _, good := s.Statement(arg); !good {
			ok = false
		}
	}
	if !ok {
		os.Exit(1)
	}
}

// given evaluates the value of a -given definition.
func given(s string) (float64, error) {
	c, err := calc.New()
	if err != nil {
		return 0, err
	}
	r, err := c.Run(s)
	if err != nil {
		return 0, err
	}
	if !r.HasValue() {
		return 0, fmt.Errorf("%q has no value", s)
	}
	return r.Value, nil
}

// batch handles each line of in, stopping at exit or quit. It reports
// whether every statement succeeded.
func batch(s *repl.Session, in io.Reader) bool {
	ok := true
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		switch strings.TrimSpace(line) {
		case "":
			continue
		case "exit", "quit":
			return ok
		}
		if !repl.IsKeyword(line) {
			if _, good := s.Statement(line); !good {
				ok = false
			}
			continue
		}
		if s.Handle(line) {
			return ok
		}
	}
	if err := sc.Err(); err != nil {
		log.Print(err)
		return false
	}
	return ok
}

// batchFile runs batch on the named file, or on stdin if the name is -.
func batchFile(s *repl.Session, inname string) (bool, error) {
	if inname == "-" {
		return batch(s, os.Stdin), nil
	}
	f, err := os.Open(inname)
	if err != nil {
		return false, err
	}
	defer f.Close()
	return batch(s, f), nil
}

// interact runs a line-editing session with history.
func interact(s *repl.Session, history string) {
	if history != "" && !filepath.IsAbs(history) {
		if home, err := os.UserHomeDir(); err == nil {
			history = filepath.Join(home, history)
		}
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if history != "" {
		if f, err := os.Open(history); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}

	s.Calculator().Log(`Type "help" for a list of topics.`, calc.LogTerminal)
	for {
		line, err := ln.Prompt("> ")
		if err != nil {
			// io.EOF on ^D, liner.ErrPromptAborted on ^C.
			fmt.Println()
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if s.Handle(line) {
			break
		}
	}

	if history != "" {
		if f, err := os.Create(history); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}
}
