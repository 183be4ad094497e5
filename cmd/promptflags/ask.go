package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mostlydev/promptflags/internal/answer"
	"github.com/mostlydev/promptflags/internal/flags"
	"github.com/mostlydev/promptflags/internal/walker"
)

var (
	askFormat  string
	askAnswers bool
)

type askOptions struct {
	Session     sessionOptions
	ManifestArg string
	Format      string
	Answers     bool
}

var askCmd = &cobra.Command{
	Use:   "ask [manifest]",
	Short: "Ask for every manifest variable and print the resulting flags",
	Long: `Ask for every manifest variable and print the resulting flags.

The manifest argument may be a file or a template directory. With --image it
is the manifest path inside the image instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := askOptions{
			Session: rootOpts,
			Format:  askFormat,
			Answers: askAnswers,
		}
		if len(args) == 1 {
			opts.ManifestArg = args[0]
		}
		return runAsk(cmd.Context(), opts, os.Stdin, os.Stdout, os.Stderr)
	},
}

func runAsk(ctx context.Context, opts askOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := checkFormat(opts.Format); err != nil {
		return err
	}
	answers, err := collectAnswers(ctx, opts.Session, opts.ManifestArg, stdin, stderr)
	if err != nil {
		return err
	}
	if opts.Answers {
		return writeAnswers(stdout, answers.answers)
	}
	return writeFlags(stdout, flags.Build(answers.answers), opts.Format)
}

type collected struct {
	template *template
	answers  *answer.Map
	// stdin is the input left over for the tool.
	stdin io.Reader
}

func collectAnswers(ctx context.Context, session sessionOptions, manifestArg string, stdin io.Reader, stderr io.Writer) (*collected, error) {
	_, tmpl, err := loadTemplate(ctx, session, manifestArg)
	if err != nil {
		return nil, err
	}
	p, rest, err := newPrompter(session.AnswersScript, stdin, stderr)
	if err != nil {
		return nil, err
	}

	name := tmpl.Manifest.Name
	if name == "" {
		name = tmpl.Source
	}
	infof(stderr, "%d variable(s) in %s", len(tmpl.Manifest.Variables), name)

	answers, err := walker.Walk(ctx, p, tmpl.Manifest.Variables)
	if err != nil {
		return nil, err
	}
	return &collected{template: tmpl, answers: answers, stdin: rest}, nil
}

func writeAnswers(w io.Writer, answers *answer.Map) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(answers); err != nil {
		return fmt.Errorf("render answers: %w", err)
	}
	return enc.Close()
}

func init() {
	askCmd.Flags().StringVar(&askFormat, "format", formatShell, "Output format: shell, lines, or json")
	askCmd.Flags().BoolVar(&askAnswers, "answers", false, "Print the collected answers as YAML instead of flags")
	rootCmd.AddCommand(askCmd)
}
