package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type launchCapture struct {
	called bool
	args   []string
	root   bool
}

// captureLaunch replaces the launch body and records what it was given.
func captureLaunch(app *App) *launchCapture {
	c := &launchCapture{}
	app.launch = func(cmd *cobra.Command, args []string) error {
		c.called = true
		c.args = args
		c.root = app.rootMode
		return nil
	}
	return c
}

func TestRootFlag_FirstPositionIsAFlag(t *testing.T) {
	app := New()
	got := captureLaunch(app)

	app.rootCmd.SetArgs([]string{"--root", "whoami"})
	require.NoError(t, app.Execute())

	assert.True(t, got.called)
	assert.Equal(t, []string{"whoami"}, got.args)
	assert.True(t, got.root)
}

func TestRootFlag_ShortForm(t *testing.T) {
	app := New()
	got := captureLaunch(app)

	app.rootCmd.SetArgs([]string{"-r"})
	require.NoError(t, app.Execute())

	assert.Empty(t, got.args)
	assert.True(t, got.root)
}

func TestRootFlag_AfterCommandIsPassthrough(t *testing.T) {
	app := New()
	got := captureLaunch(app)

	app.rootCmd.SetArgs([]string{"echo", "--root"})
	require.NoError(t, app.Execute())

	assert.Equal(t, []string{"echo", "--root"}, got.args)
	assert.False(t, got.root)
}

func TestNoArgs_LaunchesWithEmptyCommand(t *testing.T) {
	app := New()
	got := captureLaunch(app)

	app.rootCmd.SetArgs([]string{})
	require.NoError(t, app.Execute())

	assert.True(t, got.called)
	assert.Empty(t, got.args)
}

func TestHelp_DoesNotLaunch(t *testing.T) {
	app := New()
	got := captureLaunch(app)

	var out bytes.Buffer
	app.rootCmd.SetOut(&out)
	app.rootCmd.SetArgs([]string{"--help"})
	require.NoError(t, app.Execute())

	assert.False(t, got.called)
	assert.Contains(t, out.String(), "toolbox")
}

func TestVersionFlag(t *testing.T) {
	app := New()
	got := captureLaunch(app)
	app.SetVersion("1.2.3", "abcdef0", "2026-08-25")

	var out bytes.Buffer
	app.rootCmd.SetOut(&out)
	app.rootCmd.SetArgs([]string{"--version"})
	require.NoError(t, app.Execute())

	assert.False(t, got.called)
	assert.Contains(t, out.String(), "petbox version 1.2.3")
	assert.Contains(t, out.String(), "commit: abcdef0")
}

func TestSetVersion_Defaults(t *testing.T) {
	app := New()
	app.SetVersion("", "", "")

	assert.Equal(t, "dev", app.versionInfo.Version)
	assert.Equal(t, "unknown", app.versionInfo.Commit)
	assert.Equal(t, "unknown", app.versionInfo.Date)
}
