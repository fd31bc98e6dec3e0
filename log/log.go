// Package log provides termui's ambient logging: a small wrapper over
// golang.org/x/exp/slog matching the convention used throughout the
// codebase this library descends from, where the top-level state carries a
// single *slog.Logger defaulting to a discard handler until the
// application supplies one.
package log

import (
	"io"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the package logger, e.g. with one built by New.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// New builds a logger writing to w. If w is a terminal-like *os.File (an
// auxiliary log fd, never the alternate screen the application owns), the
// output is wrapped with tint for readable colourized level/time output;
// otherwise it falls back to slog's structured text handler.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if f, ok := w.(*os.File); ok {
		fi, err := f.Stat()
		if err == nil && fi.Mode()&os.ModeCharDevice != 0 {
			return slog.New(tint.NewHandler(w, &tint.Options{Level: level}))
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Debug(msg string, args ...any) { logger.Debug(msg, args...) }
func Info(msg string, args ...any)  { logger.Info(msg, args...) }
func Warn(msg string, args ...any)  { logger.Warn(msg, args...) }
func Error(msg string, args ...any) { logger.Error(msg, args...) }
