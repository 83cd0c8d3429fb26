package config

import (
	"os"
	"path/filepath"
)

// Loader handles loading the configuration.
type Loader struct {
	Version      string // Build version, used to determine dev mode
	OverridePath string // From -c
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load attempts to load the configuration. A missing file yields defaults,
// except for an explicit override path, which must exist.
func (l *Loader) Load() (*Config, error) {
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err != nil {
			return nil, err
		}
	}
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// GetConfigPath returns the path to the configuration file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	// 1. Explicit override
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err == nil {
			return l.OverridePath
		}
	}

	// 2. Local run directory (dev mode)
	if l.Version == "dev" {
		wd, _ := os.Getwd()
		localPath := filepath.Join(wd, ".inkshotrc")
		if _, err := os.Stat(localPath); err == nil {
			return localPath
		}
	}

	// 3. XDG_CONFIG_HOME
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		p := filepath.Join(xdg, "inkshot", "config.rc")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	// 4. ~/.config
	home, _ := os.UserHomeDir()
	if home == "" {
		return ""
	}
	p := filepath.Join(home, ".config", "inkshot", "config.rc")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
