package container

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CommandRunner executes one runtime CLI invocation. argv[0] is the binary.
// Output captures stdout for queries; Attached inherits the invoking
// terminal for operations the user interacts with (pull, runlabel, exec).
type CommandRunner interface {
	Output(ctx context.Context, argv ...string) (string, error)
	Attached(ctx context.Context, argv ...string) error
}

// ExecRunner runs commands through os/exec.
type ExecRunner struct{}

// Output runs argv and returns its trimmed stdout. On a non-zero exit the
// error carries the command's stderr.
func (ExecRunner) Output(ctx context.Context, argv ...string) (string, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr := bytes.TrimSpace(exitErr.Stderr)
			if len(stderr) > 0 {
				return "", fmt.Errorf("%s: %s", argv[0], stderr)
			}
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Attached runs argv with the process's stdio so the command owns the
// terminal. A non-zero exit becomes an *ExitCodeError.
func (ExecRunner) Attached(ctx context.Context, argv ...string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return NewExitCodeError(exitErr.ExitCode())
		}
		return err
	}
	return nil
}
