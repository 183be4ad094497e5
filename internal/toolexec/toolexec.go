// Package toolexec assembles and runs the external tool that receives the
// generated flags.
package toolexec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Command is a fully assembled tool invocation.
type Command struct {
	Binary string
	Args   []string
	Dir    string
	Env    []string
}

// Assemble orders the argument vector as base args, passthrough args, then
// the generated flag tokens.
func Assemble(binary string, base, passthrough, flagTokens []string) Command {
	args := make([]string, 0, len(base)+len(passthrough)+len(flagTokens))
	args = append(args, base...)
	args = append(args, passthrough...)
	args = append(args, flagTokens...)
	return Command{Binary: binary, Args: args}
}

// String renders the command as a single shell-quoted line.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, Quote(c.Binary))
	for _, arg := range c.Args {
		parts = append(parts, Quote(arg))
	}
	return strings.Join(parts, " ")
}

// ExitError reports a tool that ran but exited non-zero.
type ExitError struct {
	Binary string
	Code   int
	Err    error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Binary, e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Run executes c with the given streams and waits for it to finish.
func Run(ctx context.Context, c Command, stdin io.Reader, stdout, stderr io.Writer) error {
	if c.Binary == "" {
		return fmt.Errorf("no tool configured")
	}
	cmd := exec.CommandContext(ctx, c.Binary, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(cmd.Environ(), c.Env...)
	}
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Binary: c.Binary, Code: exitErr.ExitCode(), Err: err}
	}
	if err != nil {
		return fmt.Errorf("run %s: %w", c.Binary, err)
	}
	return nil
}

// Quote returns s unchanged when the shell would read it as one plain word,
// and single-quoted otherwise.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, unsafeShellRune) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func unsafeShellRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("-_./=:,+@%", r)
}
