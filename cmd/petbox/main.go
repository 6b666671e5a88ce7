package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/petbox/petbox/internal/cli"
	"github.com/petbox/petbox/internal/container"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	app := cli.New()
	app.SetVersion(version, commit, date)

	if err := app.Execute(); err != nil {
		// The in-container command's exit status is our exit status.
		var exitErr *container.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
