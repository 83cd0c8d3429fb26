package theme

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Loader handles loading themes from various sources.
type Loader struct {
	ConfigDir string
	SystemDir string
	// Inline holds themes defined in the configuration file.
	Inline map[string]*Theme
}

// NewLoader creates a new Loader with standard paths.
func NewLoader(inline map[string]*Theme) *Loader {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return &Loader{
		ConfigDir: filepath.Join(dir, "inkshot", "themes"),
		SystemDir: "/usr/share/inkshot/themes",
		Inline:    inline,
	}
}

// Load attempts to load a theme by name or path.
// Order:
// 1. Empty name gives Default.
// 2. Themes defined inline in the config.
// 3. If it's a file path that exists, load it.
// 4. Embedded themes.
// 5. ConfigDir, then SystemDir.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if t, ok := l.Inline[name]; ok {
		return t, nil
	}
	if _, err := os.Stat(name); err == nil {
		return parseFile(name)
	}

	filename := name
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}
	if f, err := EmbeddedThemes.Open("defaults/" + filename); err == nil {
		defer f.Close()
		return Parse(f)
	}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, filename)
		if _, err := os.Stat(p); err == nil {
			return parseFile(p)
		}
	}
	return nil, fmt.Errorf("theme '%s' not found", name)
}

func parseFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
