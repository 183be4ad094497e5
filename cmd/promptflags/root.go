package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mostlydev/promptflags/internal/config"
)

var (
	version = "dev"
	commit  = "none"
)

var rootOpts sessionOptions

var rootCmd = &cobra.Command{
	Use:          "promptflags",
	Short:        "Ask for template variables and turn the answers into tool flags",
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
	rootCmd.PersistentFlags().StringVar(&rootOpts.ConfigPath, "config", config.DefaultPath, "Path to the promptflags config file")
	rootCmd.PersistentFlags().StringVar(&rootOpts.Image, "image", "", "Read the manifest out of this template image")
	rootCmd.PersistentFlags().StringVar(&rootOpts.AnswersScript, "answers-script", "", "YAML list of scripted responses to use instead of the terminal ('-' for stdin)")
}
