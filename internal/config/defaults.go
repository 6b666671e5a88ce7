package config

import (
	"os"
	"os/user"
)

const (
	defaultRegistry = "registry.fedoraproject.org"
	defaultImage    = "fedora-toolbox:latest"
	defaultShell    = "/bin/bash"

	containerPrefix = "petbox-"
)

// Default returns a Config with built-in defaults. The container name is
// derived from the invoking user so every user owns a separate toolbox.
func Default() *Config {
	return &Config{
		Registry:      defaultRegistry,
		Image:         defaultImage,
		ContainerName: containerPrefix + invokingUser(),
		Shell:         defaultShell,
	}
}

// invokingUser names the real user behind the invocation. SUDO_USER wins so
// `sudo petbox` reuses the same container the user owns without sudo.
func invokingUser() string {
	if u := os.Getenv("SUDO_USER"); u != "" {
		return u
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "root"
}
