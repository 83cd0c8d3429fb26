package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/inkshot/internal/shape"
	"github.com/example/inkshot/internal/theme"
)

// Codecs selects which image backends are enabled.
type Codecs struct {
	PNG  bool
	JPEG bool
	JXL  bool
}

// Notify holds notification settings.
type Notify struct {
	Capture bool
	Save    bool
	Copy    bool
}

// Editor holds the initial drawing tool settings.
type Editor struct {
	Tool      shape.Kind
	Color     shape.Color
	Thickness float64
	Filled    bool
}

// Config holds the application configuration.
type Config struct {
	Format   string // Default export format name
	LogLevel string
	Renderer string // raster or smooth
	Theme    string
	SaveDir  string
	Codecs   Codecs
	Notify   Notify
	Editor   Editor
	Themes   map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	st := shape.DefaultStyle()
	return &Config{
		Format:   "png",
		LogLevel: "warning",
		Renderer: "raster",
		Codecs:   Codecs{PNG: true, JPEG: true, JXL: true},
		Editor: Editor{
			Tool:      shape.Rectangle,
			Color:     st.Color,
			Thickness: st.Thickness,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// Style returns the editor settings as a shape style.
func (e Editor) Style() shape.Style {
	return shape.Style{Color: e.Color, Thickness: e.Thickness, Filled: e.Filled}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	fmt.Fprintf(&sb, "format = %s\n", c.Format)
	fmt.Fprintf(&sb, "log_level = %s\n", c.LogLevel)
	fmt.Fprintf(&sb, "renderer = %s\n", c.Renderer)
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[codecs]\n")
	fmt.Fprintf(&sb, "png = %v\n", c.Codecs.PNG)
	fmt.Fprintf(&sb, "jpeg = %v\n", c.Codecs.JPEG)
	fmt.Fprintf(&sb, "jxl = %v\n", c.Codecs.JXL)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "capture = %v\n", c.Notify.Capture)
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	sb.WriteString("[editor]\n")
	fmt.Fprintf(&sb, "tool = %s\n", c.Editor.Tool)
	fmt.Fprintf(&sb, "color = %s\n", theme.Hex(toRGBA(c.Editor.Color)))
	fmt.Fprintf(&sb, "thickness = %g\n", c.Editor.Thickness)
	fmt.Fprintf(&sb, "filled = %v\n", c.Editor.Filled)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.Hex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
