package container

import "context"

// Client is the narrow interface over the external container runtime. Every
// operation is a synchronous call against the runtime CLI; implementations
// report outcomes as an error plus whatever output the operation captures.
// The launcher never talks to the runtime except through this interface, so
// tests can substitute a recording fake.
type Client interface {
	// Runtime returns the name of the runtime binary ("podman" or "docker"),
	// used in user-facing hint messages.
	Runtime() string

	// ImageExists reports whether the image is present locally. A failed
	// inspect is indistinguishable from a missing image.
	ImageExists(ctx context.Context, ref string) bool

	// PullImage fetches the image, attached to the invoking terminal so the
	// runtime's own progress and errors are visible.
	PullImage(ctx context.Context, ref string) error

	// RunLabel returns the image's RUN label, or "" when the image declares
	// none or the query fails.
	RunLabel(ctx context.Context, ref string) string

	// ContainerExists reports whether a container with the given name exists
	// in any state. A failed inspect is indistinguishable from absence.
	ContainerExists(ctx context.Context, name string) bool

	// ContainerState inspects the container's current lifecycle status.
	ContainerState(ctx context.Context, name string) (Status, error)

	// CreateContainer creates (but does not start) the toolbox container
	// with the fixed provisioning options.
	CreateContainer(ctx context.Context, name, ref string) error

	// StartContainer starts a previously created container.
	StartContainer(ctx context.Context, name string) error

	// StopContainer stops the container. Callers treat this as best-effort
	// and discard the result.
	StopContainer(ctx context.Context, name string) error

	// RunLabelLaunch executes the image's RUN label with the given container
	// name, attached to the invoking terminal. The label mechanism starts
	// and attaches execution itself; no separate start or exec follows.
	RunLabelLaunch(ctx context.Context, name, ref string) error

	// Exec runs argv inside the running container on an interactive
	// pseudo-terminal with stdin attached, forwarding the extra environment
	// entries (KEY=VALUE). A non-zero command status comes back as an
	// *ExitCodeError.
	Exec(ctx context.Context, name string, env []string, argv []string) error
}
