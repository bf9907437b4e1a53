package main

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger returns a structured slog.Logger with the given level. Output is
// JSON unless stdout is an interactive terminal.
func NewLogger(level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if term.IsTerminal(int(os.Stdout.Fd())) {
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(h).With("app", appName)
}
