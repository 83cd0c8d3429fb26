package shape

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a packed 0xRRGGBBAA value with straight alpha.
type Color uint32

// RGBA packs four channels into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// FromColor converts any color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// NRGBA unpacks c.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c >> 24), G: uint8(c >> 16), B: uint8(c >> 8), A: uint8(c)}
}

func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// Style is the stroke configuration captured when a shape is created.
type Style struct {
	Color     Color
	Thickness float64
	Filled    bool
}

// DefaultStyle is an opaque red stroke, three pixels wide.
func DefaultStyle() Style {
	return Style{Color: RGBA(0xFF, 0, 0, 0xFF), Thickness: 3}
}

// Kind enumerates the shape variants, one per drawing tool.
type Kind int

const (
	Line Kind = iota
	Circle
	Rectangle
	Freeform
	Arrow
)

var kindNames = [...]string{"line", "circle", "rect", "freeform", "arrow"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every variant in tool order.
func Kinds() []Kind {
	return []Kind{Line, Circle, Rectangle, Freeform, Arrow}
}

// ParseKind accepts the tool names used on the command line and in the config.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return Line, nil
	case "circle":
		return Circle, nil
	case "rect", "rectangle":
		return Rectangle, nil
	case "free", "freeform", "pen":
		return Freeform, nil
	case "arrow":
		return Arrow, nil
	}
	return 0, fmt.Errorf("unknown shape %q", s)
}
