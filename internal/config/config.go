// Package config resolves the launcher configuration: built-in defaults,
// optionally overridden by the per-user YAML config file and the legacy
// env-format rc file. Resolution happens once at startup; the resulting
// Config value is passed explicitly and never mutated afterwards.
package config

import "fmt"

// Config holds the fully resolved launcher settings.
type Config struct {
	// Registry is the image registry host.
	Registry string `yaml:"registry"`

	// Image is the toolbox image name, including tag.
	Image string `yaml:"image"`

	// ContainerName is the name of the pet container. Defaults to a
	// per-user name so each user gets their own toolbox.
	ContainerName string `yaml:"container_name"`

	// Shell is the interactive shell started when no command is given.
	Shell string `yaml:"shell"`

	// Privileged selects the elevated (sudo) runtime invocation path.
	// Only the --root flag sets this; config files cannot.
	Privileged bool `yaml:"-"`
}

// ImageRef derives the full image reference.
func (c *Config) ImageRef() string {
	return c.Registry + "/" + c.Image
}

// Validate checks that every resolved field the runtime needs is non-empty.
// Anything beyond that is passed through and surfaces as a runtime error.
func (c *Config) Validate() error {
	if c.Registry == "" {
		return fmt.Errorf("registry must not be empty")
	}
	if c.Image == "" {
		return fmt.Errorf("image must not be empty")
	}
	if c.ContainerName == "" {
		return fmt.Errorf("container name must not be empty")
	}
	if c.Shell == "" {
		return fmt.Errorf("shell must not be empty")
	}
	return nil
}
