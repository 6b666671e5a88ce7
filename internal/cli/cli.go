// Package cli wires the cobra application: flag parsing, configuration
// loading, runtime detection, and signal-driven teardown around the
// toolbox launcher.
package cli

import (
	"github.com/spf13/cobra"
)

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Elevated runtime invocation (--root)
	rootMode bool

	// launch runs the toolbox session; replaced in tests
	launch func(cmd *cobra.Command, args []string) error

	// Version information
	versionInfo VersionInfo
}

// New creates a new CLI application
func New() *App {
	app := &App{}
	app.launch = app.runLaunch
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "petbox [command [arg...]]",
		Short: "Launch a pet toolbox container",
		Long: `petbox keeps one long-lived "pet" container per user as a portable
toolbox of administrative and debugging binaries on hosts whose base
OS lacks them.

With no arguments it opens the configured shell inside the container;
any arguments are run inside the container instead. On exit the
container is stopped but kept provisioned for the next invocation.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.launch(cmd, args)
		},
	}

	a.rootCmd.Flags().BoolVarP(&a.rootMode, "root", "r", false,
		"Invoke the container runtime through sudo")

	// Flags are only flags before the first positional argument; a --root
	// after the command is part of the command.
	a.rootCmd.Flags().SetInterspersed(false)
}
