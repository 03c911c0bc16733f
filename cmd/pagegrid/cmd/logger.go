package cmd

import (
	"io"
	"log/slog"
)

// newLogger creates a text slog.Logger on w. Debug records are only emitted
// when verbose is set. It does not touch the global logger.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
