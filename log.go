package calc

import (
	"errors"
	"strconv"
)

// LogKind is the category of a log message.
type LogKind int8

const (
	// LogInfo is user input or a normal message.
	LogInfo LogKind = iota
	// LogParseError is a failure to parse a statement.
	LogParseError
	// LogSyntaxError is an improperly formed statement.
	LogSyntaxError
	LogConstantDeclaration
	LogVariableDeclaration
	LogFunctionDeclaration
	// LogIllegalDeclaration is an attempt to redefine or remove an operator,
	// to assign a non-number to a constant or variable, or to declare an
	// invalid name.
	LogIllegalDeclaration
	LogDivideByZero
	// LogTerminal is output from the host, e.g. help text.
	LogTerminal
	// LogResult is a numeric result.
	LogResult
)

func (k LogKind) String() string {
	switch k {
	case LogInfo:
		return "info"
	case LogParseError:
		return "parse-error"
	case LogSyntaxError:
		return "syntax-error"
	case LogConstantDeclaration:
		return "constant-declaration"
	case LogVariableDeclaration:
		return "variable-declaration"
	case LogFunctionDeclaration:
		return "function-declaration"
	case LogIllegalDeclaration:
		return "illegal-declaration"
	case LogDivideByZero:
		return "divide-by-zero"
	case LogTerminal:
		return "terminal"
	case LogResult:
		return "result"
	default:
		return "LogKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// IsError returns whether the kind reports a failure.
func (k LogKind) IsError() bool {
	switch k {
	case LogParseError, LogSyntaxError, LogIllegalDeclaration, LogDivideByZero:
		return true
	default:
		return false
	}
}

// Logger receives messages as a calculator handles statements. The
// calculator does not keep or queue messages.
type Logger interface {
	Log(msg string, kind LogKind)
}

// LoggerFunc adapts a function to a Logger.
type LoggerFunc func(msg string, kind LogKind)

// Log calls f.
func (f LoggerFunc) Log(msg string, kind LogKind) {
	f(msg, kind)
}

type nopLogger struct{}

func (nopLogger) Log(string, LogKind) {}

// ErrorKind returns the log category for an error from a calculator.
func ErrorKind(err error) LogKind {
	var dz *DivideByZeroError
	var be *BracketError
	switch {
	case errors.As(err, &dz):
		return LogDivideByZero
	case errors.Is(err, ErrIllegalRedefinition),
		errors.Is(err, ErrNonNumericAssignment),
		errors.Is(err, ErrInvalidSymbolName),
		errors.Is(err, ErrMalformedSignature),
		errors.Is(err, ErrDuplicateSymbol),
		errors.Is(err, ErrCannotRemoveOperator):
		return LogIllegalDeclaration
	case errors.Is(err, ErrMalformedStatement),
		errors.Is(err, ErrUndefinedOrInvalidSymbol),
		errors.As(err, &be):
		return LogSyntaxError
	default:
		return LogParseError
	}
}

// declKind returns the log category for declaring s.
func declKind(s Symbol) LogKind {
	switch s.Kind() {
	case KindConstant:
		return LogConstantDeclaration
	case KindVariable:
		return LogVariableDeclaration
	case KindFunction:
		return LogFunctionDeclaration
	default:
		return LogInfo
	}
}
