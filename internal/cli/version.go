package cli

import "fmt"

// VersionInfo holds build-time version metadata set via ldflags.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// SetVersion sets the version information reported by --version
func (a *App) SetVersion(version, commit, date string) {
	// Use default values if not set
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	if date == "" {
		date = "unknown"
	}

	a.versionInfo = VersionInfo{Version: version, Commit: commit, Date: date}
	a.rootCmd.Version = version
	a.rootCmd.SetVersionTemplate(fmt.Sprintf(
		"petbox version %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
}
