// Package logger builds the process logger.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
)

// Settings controls logger construction.
type Settings struct {
	// Verbose lowers the console level to debug.
	Verbose bool
	// File, when set, also receives every record as JSON.
	File io.Writer
}

// NewLogger returns a tint logger writing to stderr, fanned out to a JSON
// handler when settings.File is set.
func NewLogger(settings Settings) *slog.Logger {
	return newLogger(os.Stderr, isTerminal(os.Stderr), settings)
}

func newLogger(console io.Writer, color bool, settings Settings) *slog.Logger {
	level := slog.LevelInfo
	if settings.Verbose {
		level = slog.LevelDebug
	}

	var handler slog.Handler = tint.NewHandler(console, &tint.Options{
		Level:   level,
		NoColor: !color,
	})

	if settings.File != nil {
		handler = slogmulti.Fanout(
			handler,
			slog.NewJSONHandler(settings.File, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return slog.New(handler)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
