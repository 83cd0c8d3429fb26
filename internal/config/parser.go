package config

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/example/inkshot/internal/format"
	"github.com/example/inkshot/internal/shape"
	"github.com/example/inkshot/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentTheme *theme.Theme

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			currentTheme = nil

			if strings.HasPrefix(currentSection, "theme.") {
				themeName := strings.TrimPrefix(currentSection, "theme.")
				// Start with defaults so missing keys are fine
				currentTheme = theme.Default()
				currentTheme.Name = themeName
				cfg.Themes[themeName] = currentTheme
			}
			continue
		}

		// Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
			value = value[1 : len(value)-1]
		}

		var err error
		switch {
		case currentTheme != nil:
			err = theme.Set(currentTheme, key, value)
		case currentSection == "codecs":
			err = setCodecsField(&cfg.Codecs, key, value)
		case currentSection == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		case currentSection == "editor":
			err = setEditorField(&cfg.Editor, key, value)
		case currentSection == "":
			err = setRootField(cfg, key, value)
		}
		if err != nil {
			if currentSection == "" {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
			return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "format":
		if format.FromString(value) == format.Invalid {
			return fmt.Errorf("unknown format %q", value)
		}
		cfg.Format = strings.ToLower(value)
	case "log_level":
		cfg.LogLevel = strings.ToLower(value)
	case "renderer":
		cfg.Renderer = strings.ToLower(value)
	case "theme":
		cfg.Theme = value
	case "save_dir":
		cfg.SaveDir = value
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	return b, nil
}

func setCodecsField(c *Codecs, key, value string) error {
	b, err := parseBool(key, value)
	if err != nil {
		return err
	}
	switch format.FromString(key) {
	case format.PNG:
		c.PNG = b
	case format.JPEG:
		c.JPEG = b
	case format.JXL:
		c.JXL = b
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := parseBool(key, value)
	if err != nil {
		return err
	}
	switch strings.ToLower(key) {
	case "capture":
		n.Capture = b
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}

func setEditorField(e *Editor, key, value string) error {
	switch strings.ToLower(key) {
	case "tool":
		k, err := shape.ParseKind(value)
		if err != nil {
			return err
		}
		e.Tool = k
	case "color":
		c, err := theme.ParseHex(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		e.Color = shape.RGBA(c.R, c.G, c.B, c.A)
	case "thickness":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("thickness must be a positive number, got %q", value)
		}
		e.Thickness = f
	case "filled":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		e.Filled = b
	}
	return nil
}

func toRGBA(c shape.Color) color.RGBA {
	n := c.NRGBA()
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}
