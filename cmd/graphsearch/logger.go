package main

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger returns a logger writing to w. level is any name slog accepts
// ("debug", "info", "warn", "error", optionally with an offset such as
// "warn+2"); format is "text" or "json".
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("graphsearch: log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return nil, fmt.Errorf("graphsearch: unknown log format %q", format)
}
