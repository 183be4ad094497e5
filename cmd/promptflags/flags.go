package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mostlydev/promptflags/internal/answer"
	"github.com/mostlydev/promptflags/internal/flags"
)

var flagsFormat string

var flagsCmd = &cobra.Command{
	Use:   "flags <answers.yml>",
	Short: "Turn a YAML answer map into flags without prompting",
	Long: `Turn a YAML answer map into flags without prompting.

Pass '-' to read the answers from stdin. The input has the same shape as
'promptflags ask --answers' prints.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFlags(args[0], flagsFormat, os.Stdin, os.Stdout)
	},
}

func runFlags(path, format string, stdin io.Reader, stdout io.Writer) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	r, closeFn, err := openInput(path, stdin)
	if err != nil {
		return err
	}
	defer closeFn()

	answers, err := answer.Parse(r)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return writeFlags(stdout, flags.Build(answers), format)
}

func init() {
	flagsCmd.Flags().StringVar(&flagsFormat, "format", formatShell, "Output format: shell, lines, or json")
	rootCmd.AddCommand(flagsCmd)
}
