package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Recognized keys in the env-format rc file. Anything else is ignored.
const (
	rcKeyRegistry = "REGISTRY"
	rcKeyImage    = "IMAGE"
	rcKeyName     = "TOOLBOX_NAME"
	rcKeyShell    = "TOOLBOX_SHELL"
)

// Load resolves the configuration from built-in defaults, the per-user YAML
// config file (~/.config/petbox/config.yaml), and the legacy rc file
// (~/.petboxrc), in that order of precedence. It returns the paths of the
// override files that were applied so the caller can notify the user.
// Missing files are not an error.
func Load() (*Config, []string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		// Can't find home directory, run with defaults
		return Default(), nil, nil
	}

	yamlPath := filepath.Join(home, ".config", "petbox", "config.yaml")
	rcPath := filepath.Join(home, ".petboxrc")
	return LoadFromPaths(yamlPath, rcPath)
}

// LoadFromPaths is Load with explicit file locations, for tests.
func LoadFromPaths(yamlPath, rcPath string) (*Config, []string, error) {
	cfg := Default()
	var applied []string

	ok, err := loadYAML(cfg, yamlPath)
	if err != nil {
		return nil, nil, err
	}
	if ok {
		applied = append(applied, yamlPath)
	}

	ok, err = loadRC(cfg, rcPath)
	if err != nil {
		return nil, nil, err
	}
	if ok {
		applied = append(applied, rcPath)
	}

	return cfg, applied, nil
}

// loadYAML unmarshals the config file over the defaults already in cfg, so
// keys the file does not set keep their values.
func loadYAML(cfg *Config, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return false, err
	}
	return true, nil
}

// loadRC applies the legacy KEY=value rc file. Only the four historic keys
// are recognized; the file contents are trusted local configuration.
func loadRC(cfg *Config, path string) (bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return false, err
	}

	if v, ok := vars[rcKeyRegistry]; ok && v != "" {
		cfg.Registry = v
	}
	if v, ok := vars[rcKeyImage]; ok && v != "" {
		cfg.Image = v
	}
	if v, ok := vars[rcKeyName]; ok && v != "" {
		cfg.ContainerName = v
	}
	if v, ok := vars[rcKeyShell]; ok && v != "" {
		cfg.Shell = v
	}
	return true, nil
}
