package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mostlydev/promptflags/internal/flags"
	"github.com/mostlydev/promptflags/internal/toolexec"
)

var runDryRun bool

var runTool = toolexec.Run

type runOptions struct {
	Session     sessionOptions
	ManifestArg string
	Passthrough []string
	DryRun      bool
}

var runCmd = &cobra.Command{
	Use:   "run [manifest] [-- tool-args...]",
	Short: "Ask for every manifest variable, then run the tool with the resulting flags",
	Long: `Ask for every manifest variable, then run the tool with the resulting flags.

The tool command line is: <tool> <config args> <tool-args> <generated flags>.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		positional, passthrough := args, []string(nil)
		if dash := cmd.ArgsLenAtDash(); dash >= 0 {
			positional, passthrough = args[:dash], args[dash:]
		}
		if len(positional) > 1 {
			return fmt.Errorf("expected at most one manifest argument, got %d (put tool arguments after --)", len(positional))
		}

		opts := runOptions{
			Session:     rootOpts,
			Passthrough: passthrough,
			DryRun:      runDryRun,
		}
		if len(positional) == 1 {
			opts.ManifestArg = positional[0]
		}
		return runRun(cmd.Context(), opts, os.Stdin, os.Stdout, os.Stderr)
	},
}

func runRun(ctx context.Context, opts runOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	c, err := collectAnswers(ctx, opts.Session, opts.ManifestArg, stdin, stderr)
	if err != nil {
		return err
	}

	command := toolexec.Assemble(c.template.Tool, c.template.Args, opts.Passthrough, flags.Build(c.answers))
	if opts.DryRun {
		_, err := fmt.Fprintln(stdout, command.String())
		return err
	}

	infof(stderr, "running %s", command)
	if err := runTool(ctx, command, c.stdin, stdout, stderr); err != nil {
		return err
	}
	successf(stderr, "%s finished", command.Binary)
	return nil
}

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Print the tool command instead of running it")
	rootCmd.AddCommand(runCmd)
}
