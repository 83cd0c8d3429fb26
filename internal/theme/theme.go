package theme

import (
	"image/color"
)

// Theme defines the colors of the editor window around the image.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Behind the fitted image
	Foreground color.RGBA // Status text

	// Toolbar
	ToolbarBackground color.RGBA
	ToolbarText       color.RGBA
	ToolActive        color.RGBA // Background of the selected tool
	ToolActiveText    color.RGBA
	ToolBorder        color.RGBA

	// Canvas
	CheckerLight color.RGBA // Shown through transparent pixels
	CheckerDark  color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:              "Default",
		Background:        color.RGBA{220, 220, 220, 255},
		Foreground:        color.RGBA{0, 0, 0, 255},
		ToolbarBackground: color.RGBA{200, 200, 200, 255},
		ToolbarText:       color.RGBA{0, 0, 0, 255},
		ToolActive:        color.RGBA{150, 150, 150, 255},
		ToolActiveText:    color.RGBA{255, 255, 255, 255},
		ToolBorder:        color.RGBA{0, 0, 0, 255},
		CheckerLight:      color.RGBA{220, 220, 220, 255},
		CheckerDark:       color.RGBA{192, 192, 192, 255},
	}
}
