// Package prompt is the interactive surface the walker asks its questions on.
package prompt

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
)

// Item is one entry of a single-choice list.
type Item struct {
	Label  string
	Detail string
}

// Prompter asks one question at a time and blocks until it is answered or
// dismissed. Dismissal is reported as ok == false, never as an error.
type Prompter interface {
	// Pick offers items and returns the chosen label.
	Pick(ctx context.Context, caption string, items []Item) (label string, ok bool, err error)
	// Input asks for free text. An empty answer is valid and distinct from dismissal.
	Input(ctx context.Context, caption string) (text string, ok bool, err error)
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
