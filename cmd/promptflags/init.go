package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mostlydev/promptflags/internal/config"
)

var initTool string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a promptflags config and a sample manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		return runInit(dir, initTool, os.Stderr)
	},
}

const sampleManifest = `name: My Template
variables:
  - name: fluent
    description: Would you like to use Fluent (ORM)?
    type: nested
    variables:
      - name: db
        description: Which database would you like to use?
        type: option
        options:
          - name: Postgres
            description: Recommended
          - name: MySQL
          - name: SQLite
  - name: leaf
    description: Would you like to use Leaf (templating)?
    type: bool
`

func runInit(dir, tool string, out io.Writer) error {
	cfg := config.Default()
	if tool != "" {
		cfg.Tool = tool
	}
	rendered, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	files := map[string]string{
		config.DefaultPath:     string(rendered),
		config.DefaultManifest: sampleManifest,
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	// Check for existing files first
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists; refusing to overwrite (delete it first or use a new directory)", name)
		}
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		infof(out, "created %s", name)
	}

	successf(out, "scaffold ready. Next steps:")
	fmt.Fprintf(out, "  1. edit %s (the variables to ask for)\n", config.DefaultManifest)
	fmt.Fprintln(out, "  2. promptflags inspect")
	fmt.Fprintln(out, "  3. promptflags run -- MyApp")
	return nil
}

func init() {
	initCmd.Flags().StringVar(&initTool, "tool", "", "Tool that receives the generated flags (default "+config.DefaultTool+")")
	rootCmd.AddCommand(initCmd)
}
