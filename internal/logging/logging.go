// Package logging sets up structured logging and reports calculator messages
// to a terminal.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/zephyrtronium/calc/internal/config"
)

// Init creates the structured logger described by conf and installs it as
// the slog default. Records go to w, and also to a rotated file if conf asks
// for one.
func Init(conf config.LoggerConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     logLevelFromString(conf.LogLevel),
		AddSource: conf.IncludeSrc,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				source, _ := a.Value.Any().(*slog.Source)
				if source != nil {
					source.File = filepath.Base(source.File)
					source.Function = strings.Replace(source.Function, "github.com/zephyrtronium/calc", "", -1)
				}
			}
			return a
		},
	}

	if conf.LogToFile && conf.Filename != "" {
		logTarget := &lumberjack.Logger{
			Filename:   conf.Filename,
			MaxSize:    conf.MaxSize, // megabytes
			MaxAge:     conf.MaxAge,  // days
			Compress:   conf.CompressOldLogs,
			MaxBackups: conf.MaxBackups,
		}
		w = io.MultiWriter(w, logTarget)
	}
	logger := slog.New(slog.NewJSONHandler(w, opts))
	slog.SetDefault(logger)
	return logger
}

// Default is Init writing to stderr, so that structured records do not mix
// with results on stdout.
func Default(conf config.LoggerConfig) *slog.Logger {
	return Init(conf, os.Stderr)
}

func logLevelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
