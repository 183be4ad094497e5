package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mostlydev/promptflags/internal/manifest"
	"github.com/mostlydev/promptflags/internal/toolexec"
)

var kindStyle = color.New(color.FgMagenta)

var inspectCmd = &cobra.Command{
	Use:   "inspect [manifest]",
	Short: "Show the variables a manifest will ask for",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manifestArg := ""
		if len(args) == 1 {
			manifestArg = args[0]
		}
		return runInspect(cmd.Context(), rootOpts, manifestArg, os.Stdout)
	},
}

func runInspect(ctx context.Context, session sessionOptions, manifestArg string, out io.Writer) error {
	_, tmpl, err := loadTemplate(ctx, session, manifestArg)
	if err != nil {
		return err
	}

	if tmpl.Manifest.Name != "" {
		fmt.Fprintf(out, "Template: %s\n", tmpl.Manifest.Name)
	}
	fmt.Fprintf(out, "Source:   %s\n", tmpl.Source)
	fmt.Fprintf(out, "Command:  %s\n", toolexec.Assemble(tmpl.Tool, tmpl.Args, nil, nil))
	if len(tmpl.Manifest.Variables) == 0 {
		fmt.Fprintln(out, "No variables.")
		return nil
	}
	fmt.Fprintln(out, "Variables:")
	writeVariables(out, tmpl.Manifest.Variables, "", 1)
	return nil
}

func writeVariables(out io.Writer, vars []manifest.Variable, prefix string, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, v := range vars {
		h := v.Head()
		flagName := h.Name
		if prefix != "" {
			flagName = prefix + "." + h.Name
		}

		fmt.Fprintf(out, "%s- %s ", indent, flagName)
		kindStyle.Fprintf(out, "[%s]", kindLabel(v))
		if h.Description != "" {
			fmt.Fprintf(out, " %s", h.Description)
		}
		fmt.Fprintln(out)

		switch v := v.(type) {
		case manifest.OptionVariable:
			for _, opt := range v.Options {
				if opt.Description != "" {
					fmt.Fprintf(out, "%s    * %s: %s\n", indent, opt.Name, opt.Description)
				} else {
					fmt.Fprintf(out, "%s    * %s\n", indent, opt.Name)
				}
			}
		case manifest.NestedVariable:
			writeVariables(out, v.Variables, flagName, depth+1)
		}
	}
}

func kindLabel(v manifest.Variable) string {
	if u, ok := v.(manifest.UnknownVariable); ok {
		if u.Type == "" {
			return "untyped, skipped"
		}
		return u.Type + ", skipped"
	}
	return string(v.Kind())
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
