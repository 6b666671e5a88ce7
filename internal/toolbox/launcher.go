// Package toolbox drives the pet container lifecycle: make sure the image is
// local, bring the named container to running through one of the documented
// provisioning paths, hand the terminal to a session inside it, and stop the
// container on the way out while keeping it provisioned for next time.
package toolbox

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/petbox/petbox/internal/config"
	"github.com/petbox/petbox/internal/container"
)

// Launcher sequences provisioning operations against the runtime client.
// It holds no state of its own beyond the one-shot stop obligation; the
// container's state lives in the external runtime.
type Launcher struct {
	client container.Client
	cfg    *config.Config
	notify func(format string, args ...any)

	stopOnce sync.Once
}

// New creates a Launcher. notify receives human-readable notices (reuse
// hints, pull progress); pass nil to discard them.
func New(client container.Client, cfg *config.Config, notify func(format string, args ...any)) *Launcher {
	if notify == nil {
		notify = func(string, ...any) {}
	}
	return &Launcher{client: client, cfg: cfg, notify: notify}
}

// Run provisions the container and runs args inside it, or the configured
// shell when args is empty. The stop obligation is acquired before any
// runtime mutation and discharged on every exit path; callers should also
// register Stop as a signal callback so an interrupt tears the session down.
func (l *Launcher) Run(ctx context.Context, args []string) error {
	defer l.Stop()

	ref := l.cfg.ImageRef()
	name := l.cfg.ContainerName

	if !l.client.ImageExists(ctx, ref) {
		l.notify("Image %s not found locally, pulling...", ref)
		if err := l.client.PullImage(ctx, ref); err != nil {
			return fmt.Errorf("pull image %s: %w", ref, err)
		}
	}

	runLabel := l.client.RunLabel(ctx, ref)

	if !l.client.ContainerExists(ctx, name) {
		if runLabel != "" {
			// The run label starts and attaches execution itself; there is
			// no separate start or exec on this path.
			l.notify("Launching container %s via image run label", name)
			err := l.client.RunLabelLaunch(ctx, name, ref)
			var exitErr *container.ExitCodeError
			if errors.As(err, &exitErr) {
				return err
			}
			if err != nil {
				return fmt.Errorf("run label launch for %s from %s: %w", name, ref, err)
			}
			return nil
		}
		if err := l.client.CreateContainer(ctx, name, ref); err != nil {
			return fmt.Errorf("create container %s from %s: %w", name, ref, err)
		}
	} else {
		l.notify("Reusing container %s (run '%s rm %s' for a fresh one)",
			name, l.client.Runtime(), name)
	}

	st, err := l.client.ContainerState(ctx, name)
	if err != nil {
		return err
	}
	switch st.State {
	case container.StateConfigured, container.StateExited, container.StateStopped:
		if err := l.client.StartContainer(ctx, name); err != nil {
			return fmt.Errorf("start container %s: %w", name, err)
		}
	case container.StateRunning:
		// Already up, nothing to do.
	default:
		return fmt.Errorf("container %s is in unexpected state %q", name, st.Raw)
	}

	if len(args) == 0 {
		args = []string{l.cfg.Shell}
	}
	return l.client.Exec(ctx, name, sessionEnv(os.Environ()), args)
}

// Stop discharges the stop obligation. Safe to call from multiple paths
// (deferred return, signal handler); the container is stopped at most once
// and failures are deliberately swallowed — cleanup is best-effort and the
// container definition persists for the next invocation.
func (l *Launcher) Stop() {
	l.stopOnce.Do(func() {
		_ = l.client.StopContainer(context.Background(), l.cfg.ContainerName)
	})
}

// sessionEnv selects the locale and terminal variables to forward into the
// container session.
func sessionEnv(environ []string) []string {
	var env []string
	for _, kv := range environ {
		key, _, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if key == "LANG" || key == "TERM" || strings.HasPrefix(key, "LC_") {
			env = append(env, kv)
		}
	}
	return env
}
