package container

// State is the lifecycle state the runtime reports for a container.
// Anything outside the four states the launcher knows how to handle is
// StateUnknown; Status keeps the verbatim string for error reporting.
type State int

const (
	StateConfigured State = iota
	StateExited
	StateStopped
	StateRunning
	StateUnknown
)

// Status pairs the parsed state with the raw status string from the runtime.
type Status struct {
	State State
	Raw   string
}

// ParseStatus maps a runtime status string to a Status. Podman reports a
// freshly created container as "configured", docker as "created"; both mean
// the same thing to the launcher.
func ParseStatus(raw string) Status {
	st := Status{Raw: raw}
	switch raw {
	case "configured", "created":
		st.State = StateConfigured
	case "exited":
		st.State = StateExited
	case "stopped":
		st.State = StateStopped
	case "running":
		st.State = StateRunning
	default:
		st.State = StateUnknown
	}
	return st
}

func (s State) String() string {
	switch s {
	case StateConfigured:
		return "configured"
	case StateExited:
		return "exited"
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}
