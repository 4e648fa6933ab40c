package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/zephyrtronium/calc"
)

// ANSI colors for terminal output.
const (
	reset  = "\x1b[0m"
	red    = "\x1b[31m"
	green  = "\x1b[32m"
	yellow = "\x1b[33m"
	blue   = "\x1b[34m"
	cyan   = "\x1b[36m"
)

// Sink is a calc.Logger that prints messages for a person at a terminal and
// mirrors each one as a structured record.
type Sink struct {
	// Out receives one line per message. If nil, nothing is printed.
	Out io.Writer
	// Logger receives a record per message. If nil, slog.Default is used.
	Logger *slog.Logger
	// Color enables ANSI colors by message kind.
	Color bool
	// Quiet suppresses printing declarations and info messages.
	Quiet bool
}

var _ calc.Logger = (*Sink)(nil)

// Log implements calc.Logger.
func (s *Sink) Log(msg string, kind calc.LogKind) {
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}
	l.Log(context.Background(), level(kind), msg, slog.String("kind", kind.String()))
	if s.Out == nil || (s.Quiet && !kind.IsError() && kind != calc.LogResult && kind != calc.LogTerminal) {
		return
	}
	line := msg
	if c := color(kind); s.Color && c != "" {
		line = c + msg + reset
	}
	io.WriteString(s.Out, line+"\n")
}

// level is the structured log level for a message kind.
func level(kind calc.LogKind) slog.Level {
	switch {
	case kind.IsError():
		return slog.LevelWarn
	case kind == calc.LogResult, kind == calc.LogTerminal:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func color(kind calc.LogKind) string {
	switch kind {
	case calc.LogParseError, calc.LogSyntaxError, calc.LogIllegalDeclaration, calc.LogDivideByZero:
		return red
	case calc.LogConstantDeclaration:
		return blue
	case calc.LogVariableDeclaration:
		return cyan
	case calc.LogFunctionDeclaration:
		return yellow
	case calc.LogResult:
		return green
	default:
		return ""
	}
}
