package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/mostlydev/promptflags/internal/toolexec"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	var exitErr *toolexec.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		os.Exit(exitErr.Code)
	}
	os.Exit(1)
}
