// Package logging provides structured logging functionality.
//
// The interactive viewer owns the terminal, so it logs only to a
// rotated file. Non-interactive commands log to stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Mr-Dark-debug/chainview/internal/config"
)

// NewFileLogger creates a logger writing JSON lines to the rotated
// file named in cfg. With no file configured, or if the log directory
// cannot be created, the logger discards everything and nothing is
// written to disk.
func NewFileLogger(cfg config.LogConfig) zerolog.Logger {
	var writer io.Writer = io.Discard

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err == nil {
			writer = &lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   true,
			}
		}
	}

	return newLogger(writer, cfg.Level)
}

// NewConsoleLogger creates a human-readable logger on w.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}
	return newLogger(console, level)
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config level name to a zerolog level; unknown
// names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
