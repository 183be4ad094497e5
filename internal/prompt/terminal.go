package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// escapeLine is what a cooked-mode terminal delivers when the user presses
// Esc then Enter.
const escapeLine = "\x1b"

var (
	captionStyle = color.New(color.FgCyan, color.Bold)
	detailStyle  = color.New(color.Faint)
	warnStyle    = color.New(color.FgYellow)
)

// Terminal prompts on a line-oriented reader/writer pair. A choice is made
// by number or by label; a blank line, Esc, or end of input dismisses it.
// Text input is dismissed by Esc or end of input only and is returned
// without its line ending, otherwise untouched.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	// pending carries the result of a read that outlived a cancelled prompt.
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Terminal{in: br, out: out}
}

func (t *Terminal) Pick(ctx context.Context, caption string, items []Item) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	captionStyle.Fprintf(t.out, "%s\n", caption)
	if len(items) == 0 {
		warnStyle.Fprintln(t.out, "  (no choices available)")
		return "", false, nil
	}
	for i, item := range items {
		fmt.Fprintf(t.out, "  %d) %s", i+1, item.Label)
		if item.Detail != "" {
			detailStyle.Fprintf(t.out, "  %s", item.Detail)
		}
		fmt.Fprintln(t.out)
	}

	for {
		fmt.Fprintf(t.out, "Select [1-%d, blank to skip]: ", len(items))
		line, ok, err := t.readLine(ctx)
		if err != nil || !ok {
			return "", false, err
		}
		value := strings.TrimSpace(line)
		if value == "" {
			return "", false, nil
		}
		if label, found := match(items, value); found {
			return label, true, nil
		}
		warnStyle.Fprintf(t.out, "invalid selection %q\n", value)
	}
}

func (t *Terminal) Input(ctx context.Context, caption string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	captionStyle.Fprintf(t.out, "%s: ", caption)
	line, ok, err := t.readLine(ctx)
	if err != nil || !ok {
		return "", false, err
	}
	return line, true, nil
}

// Unread returns the input the terminal has not consumed yet, including
// anything already buffered. It must not be used while a prompt is waiting.
func (t *Terminal) Unread() io.Reader {
	return t.in
}

// readLine returns ok == false on end of input or an Esc line. It gives up
// with ctx.Err() when ctx ends first; the abandoned line is handed to the
// next prompt instead of being lost.
func (t *Terminal) readLine(ctx context.Context) (string, bool, error) {
	if t.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := t.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		t.pending = ch
	}

	var res lineResult
	select {
	case <-ctx.Done():
		fmt.Fprintln(t.out)
		return "", false, ctx.Err()
	case res = <-t.pending:
		t.pending = nil
	}

	line, err := res.line, res.err
	if err != nil && err != io.EOF {
		return "", false, fmt.Errorf("read prompt input: %w", err)
	}
	if err == io.EOF && line == "" {
		fmt.Fprintln(t.out)
		return "", false, nil
	}
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == escapeLine {
		return "", false, nil
	}
	return line, true, nil
}

func match(items []Item, value string) (string, bool) {
	if n, err := strconv.Atoi(value); err == nil {
		if n >= 1 && n <= len(items) {
			return items[n-1].Label, true
		}
		return "", false
	}
	for _, item := range items {
		if strings.EqualFold(value, item.Label) {
			return item.Label, true
		}
	}
	return "", false
}
