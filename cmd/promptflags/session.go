package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/mostlydev/promptflags/internal/config"
	"github.com/mostlydev/promptflags/internal/inspect"
	"github.com/mostlydev/promptflags/internal/manifest"
	"github.com/mostlydev/promptflags/internal/prompt"
	"github.com/mostlydev/promptflags/internal/toolexec"
)

var (
	inspectTemplateImage = inspect.Inspect
	manifestFromImage    = manifest.FromImage
)

type sessionOptions struct {
	ConfigPath    string
	Image         string
	AnswersScript string
}

// template is a loaded manifest plus the tool invocation it should feed.
type template struct {
	Manifest *manifest.Manifest
	Source   string
	Tool     string
	Args     []string
}

func loadTemplate(ctx context.Context, session sessionOptions, manifestArg string) (*config.Config, *template, error) {
	cfg, err := config.Load(session.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	tmpl := &template{Tool: cfg.Tool, Args: append([]string(nil), cfg.Args...)}

	image := session.Image
	if image == "" && manifestArg == "" {
		image = cfg.Image
	}
	if image == "" {
		path := manifestArg
		if path == "" {
			path = cfg.Manifest
		}
		m, err := manifest.Load(path)
		if err != nil {
			return nil, nil, err
		}
		tmpl.Manifest = m
		tmpl.Source = path
		return cfg, tmpl, nil
	}

	info, err := inspectTemplateImage(ctx, image)
	if err != nil {
		return nil, nil, err
	}
	manifestPath := cfg.ImageManifestPath
	if manifestArg != "" {
		manifestPath = manifestArg
	} else if info.ManifestPath != "" {
		manifestPath = info.ManifestPath
	}
	if info.Tool != "" {
		tmpl.Tool = info.Tool
	}
	if len(info.Args) > 0 {
		tmpl.Args = info.Args
	}

	m, err := manifestFromImage(ctx, image, manifestPath)
	if err != nil {
		return nil, nil, err
	}
	tmpl.Manifest = m
	tmpl.Source = image + ":" + manifestPath
	return cfg, tmpl, nil
}

// newPrompter returns a scripted prompter when a script is given, otherwise
// a terminal prompter that writes its questions to out. The returned reader
// is what is left of in once the questions are answered.
func newPrompter(scriptPath string, in io.Reader, out io.Writer) (prompt.Prompter, io.Reader, error) {
	if scriptPath == "" {
		term := prompt.NewTerminal(in, out)
		if f, ok := in.(*os.File); ok {
			if prompt.IsInteractive(f) {
				return term, f, nil
			}
			warnf(out, "stdin is not a terminal; reading one answer per line")
		}
		return term, term.Unread(), nil
	}

	r, closeFn, err := openInput(scriptPath, in)
	if err != nil {
		return nil, nil, err
	}
	defer closeFn()

	responses, err := prompt.ParseScript(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", scriptPath, err)
	}
	return prompt.NewScripted(responses...), in, nil
}

// openInput opens path, or returns stdin for "-".
func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

const (
	formatShell = "shell"
	formatLines = "lines"
	formatJSON  = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatShell, formatLines, formatJSON, "":
		return nil
	}
	return fmt.Errorf("unknown format %q (allowed: %s, %s, %s)", format, formatShell, formatLines, formatJSON)
}

func writeFlags(w io.Writer, tokens []string, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	switch format {
	case formatShell, "":
		quoted := make([]string, 0, len(tokens))
		for _, token := range tokens {
			quoted = append(quoted, toolexec.Quote(token))
		}
		_, err := fmt.Fprintln(w, strings.Join(quoted, " "))
		return err
	case formatLines:
		for _, token := range tokens {
			if _, err := fmt.Fprintln(w, token); err != nil {
				return err
			}
		}
		return nil
	default:
		return json.NewEncoder(w).Encode(tokens)
	}
}

var (
	okStyle   = color.New(color.FgGreen)
	warnStyle = color.New(color.FgYellow)
	failStyle = color.New(color.FgRed)
)

func infof(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "[promptflags] "+format+"\n", args...)
}

func successf(w io.Writer, format string, args ...any) {
	okStyle.Fprintf(w, "[promptflags] "+format+"\n", args...)
}

func warnf(w io.Writer, format string, args ...any) {
	warnStyle.Fprintf(w, "[promptflags] "+format+"\n", args...)
}
