package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mostlydev/promptflags/internal/config"
	"github.com/mostlydev/promptflags/internal/doctor"
)

var doctorRunner doctor.Runner

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the configured tool (and Docker, for image templates) is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(rootOpts, os.Stdout)
	},
}

func runDoctor(session sessionOptions, out io.Writer) error {
	cfg, err := config.Load(session.ConfigPath)
	if err != nil {
		return err
	}

	target := doctor.Target{
		Tool:        cfg.Tool,
		VersionArgs: cfg.VersionArgs,
		NeedDocker:  session.Image != "" || cfg.Image != "",
	}
	var results []doctor.CheckResult
	if doctorRunner != nil {
		results = doctor.RunAllWithRunner(target, doctorRunner)
	} else {
		results = doctor.RunAll(target)
	}

	allOK := true
	for _, result := range results {
		status, style := "OK", okStyle
		if !result.OK {
			status, style = "FAIL", failStyle
			allOK = false
		}

		detail := result.Detail
		if result.Version != "" {
			detail = result.Version
		}
		fmt.Fprintf(out, "%-10s ", result.Name)
		style.Fprintf(out, "%-4s", status)
		fmt.Fprintf(out, " %s\n", detail)
	}

	if !allOK {
		return fmt.Errorf("one or more checks failed")
	}

	return nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
