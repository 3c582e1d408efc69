package cmd

import (
	"io"
	"log/slog"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/lmittmann/tint"
)

// NewLogger builds the process logger with a colored console handler.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// EchoLogLevel maps a log level to the one Echo's own logger understands.
func EchoLogLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
