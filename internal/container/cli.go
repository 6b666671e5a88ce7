package container

import (
	"context"
	"fmt"
)

const (
	// toolboxHostname is the hostname set inside every toolbox container.
	toolboxHostname = "petbox"

	// hostRootMount binds the host root filesystem into the container.
	hostRootMount = "/:/media/root:rslave"
)

// CLIClient implements Client by shelling out to the podman/docker CLI.
// With elevated set, every invocation goes through sudo so the runtime
// operates on the root user's containers.
type CLIClient struct {
	runtime  string
	elevated bool
	run      CommandRunner
}

// NewCLIClient creates a Client for the given runtime binary. Use
// DetectRuntime() to find an available runtime first.
func NewCLIClient(runtime string, elevated bool) *CLIClient {
	return &CLIClient{runtime: runtime, elevated: elevated, run: ExecRunner{}}
}

// NewCLIClientWithRunner is like NewCLIClient with a custom CommandRunner,
// for tests.
func NewCLIClientWithRunner(runtime string, elevated bool, run CommandRunner) *CLIClient {
	return &CLIClient{runtime: runtime, elevated: elevated, run: run}
}

func (c *CLIClient) Runtime() string {
	return c.runtime
}

// argv builds a full invocation, prefixed with sudo when elevated.
// --preserve-env keeps the caller's locale and terminal variables visible
// to the runtime.
func (c *CLIClient) argv(args ...string) []string {
	if c.elevated {
		return append([]string{"sudo", "--preserve-env", c.runtime}, args...)
	}
	return append([]string{c.runtime}, args...)
}

func (c *CLIClient) ImageExists(ctx context.Context, ref string) bool {
	_, err := c.run.Output(ctx, c.argv("inspect", "--type", "image", "--format", "{{.Id}}", ref)...)
	return err == nil
}

func (c *CLIClient) PullImage(ctx context.Context, ref string) error {
	return c.run.Attached(ctx, c.argv("pull", ref)...)
}

func (c *CLIClient) RunLabel(ctx context.Context, ref string) string {
	label, err := c.run.Output(ctx, c.argv("container", "runlabel", "--display", "RUN", ref)...)
	if err != nil {
		// No label, or the runtime doesn't know the verb. Either way the
		// launcher falls back to the create path.
		return ""
	}
	return label
}

func (c *CLIClient) ContainerExists(ctx context.Context, name string) bool {
	_, err := c.run.Output(ctx, c.argv("inspect", "--type", "container", "--format", "{{.Id}}", name)...)
	return err == nil
}

func (c *CLIClient) ContainerState(ctx context.Context, name string) (Status, error) {
	raw, err := c.run.Output(ctx, c.argv("inspect", "--type", "container", "--format", "{{.State.Status}}", name)...)
	if err != nil {
		return Status{}, fmt.Errorf("inspect container %s: %w", name, err)
	}
	return ParseStatus(raw), nil
}

func (c *CLIClient) CreateContainer(ctx context.Context, name, ref string) error {
	args := c.argv("create",
		"--hostname", toolboxHostname,
		"--name", name,
		"--network", "host",
		"--privileged",
		"--security-opt", "label=disable",
		"--tty",
		"--volume", hostRootMount,
		ref)
	if _, err := c.run.Output(ctx, args...); err != nil {
		return err
	}
	return nil
}

func (c *CLIClient) StartContainer(ctx context.Context, name string) error {
	if _, err := c.run.Output(ctx, c.argv("start", name)...); err != nil {
		return err
	}
	return nil
}

func (c *CLIClient) StopContainer(ctx context.Context, name string) error {
	if _, err := c.run.Output(ctx, c.argv("stop", name)...); err != nil {
		return err
	}
	return nil
}

func (c *CLIClient) RunLabelLaunch(ctx context.Context, name, ref string) error {
	return c.run.Attached(ctx, c.argv("container", "runlabel", "--name", name, "RUN", ref)...)
}

func (c *CLIClient) Exec(ctx context.Context, name string, env []string, argv []string) error {
	args := []string{"exec", "--interactive", "--tty"}
	for _, kv := range env {
		args = append(args, "--env", kv)
	}
	args = append(args, name)
	args = append(args, argv...)
	return c.run.Attached(ctx, c.argv(args...)...)
}

// Verify CLIClient implements Client.
var _ Client = (*CLIClient)(nil)
