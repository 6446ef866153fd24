package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrNoInput is returned when "-" is given but stdin is an interactive terminal.
var ErrNoInput = errors.New("graphsearch: no input on stdin (pipe a file or pass a path)")

// stdinPath selects standard input as the source.
const stdinPath = "-"

// openSource opens path for reading, or stdin for "-".
func (a *app) openSource(path string) (io.ReadCloser, error) {
	if path != stdinPath {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("graphsearch: %w", err)
		}
		return f, nil
	}

	if f, ok := a.stdin.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return nil, ErrNoInput
		}
	}

	return io.NopCloser(a.stdin), nil
}

// sources defaults an empty argument list to stdin.
func sources(args []string) []string {
	if len(args) == 0 {
		return []string{stdinPath}
	}

	return args
}
