package cli

import (
	"context"
	"fmt"

	"github.com/petbox/petbox/internal/config"
	"github.com/petbox/petbox/internal/container"
	"github.com/petbox/petbox/internal/toolbox"
	"github.com/spf13/cobra"
)

// runLaunch is the root command body: resolve configuration, detect the
// runtime, and hand control to the launcher with signal teardown in place.
func (a *App) runLaunch(cmd *cobra.Command, args []string) error {
	cfg, applied, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	cfg.Privileged = a.rootMode
	if err := cfg.Validate(); err != nil {
		return err
	}

	styles := DefaultStyles()
	out := cmd.OutOrStdout()
	for _, path := range applied {
		fmt.Fprintln(out, styles.Render(styles.Notice,
			fmt.Sprintf("Overriding defaults with %s", path)))
	}

	runtime, err := container.DetectRuntime()
	if err != nil {
		return err
	}
	client := container.NewCLIClient(runtime, cfg.Privileged)

	notify := func(format string, fmtArgs ...any) {
		fmt.Fprintln(out, styles.Render(styles.Notice, fmt.Sprintf(format, fmtArgs...)))
	}
	launcher := toolbox.New(client, cfg, notify)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// An interrupt cancels in-flight runtime calls and stops the container;
	// the deferred Stop inside Run covers every other exit path.
	handler := NewSignalHandler(cancel)
	handler.OnShutdown(launcher.Stop)
	handler.Start()
	defer handler.Stop()

	return launcher.Run(ctx, args)
}
