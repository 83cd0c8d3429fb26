package editor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/inkshot/internal/raster"
	"github.com/example/inkshot/internal/shape"
	"github.com/example/inkshot/internal/theme"
)

const (
	statusHeight = 20
	buttonHeight = 24
	swatchSize   = 16
	checkerSize  = 8
)

// Palette is the set of colors reachable with the number keys.
var Palette = []color.RGBA{
	colornames.Red,
	colornames.Orange,
	colornames.Yellow,
	colornames.Limegreen,
	colornames.Dodgerblue,
	colornames.Darkviolet,
	colornames.Black,
	colornames.White,
	colornames.Hotpink,
}

type toolButton struct {
	label string
	kind  shape.Kind
}

var toolButtons = []toolButton{
	{"L:Line", shape.Line},
	{"C:Circle", shape.Circle},
	{"R:Rect", shape.Rectangle},
	{"F:Free", shape.Freeform},
	{"A:Arrow", shape.Arrow},
}

// toolbarWidth fits the widest tool label.
var toolbarWidth = func() int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	w := 48
	for _, b := range toolButtons {
		if n := d.MeasureString(b.label).Ceil() + 8; n > w {
			w = n
		}
	}
	return w
}()

// canvasArea is the part of a width×height window that shows the image.
func canvasArea(width, height int) image.Rectangle {
	return image.Rect(toolbarWidth, 0, width, height-statusHeight)
}

// toolAt returns the tool whose button contains p.
func toolAt(p image.Point) (shape.Kind, bool) {
	if p.X < 0 || p.X >= toolbarWidth || p.Y < 0 {
		return 0, false
	}
	i := p.Y / buttonHeight
	if i >= len(toolButtons) {
		return 0, false
	}
	return toolButtons[i].kind, true
}

// swatchAt returns the palette index whose swatch contains p.
func swatchAt(p image.Point) (int, bool) {
	for i := range Palette {
		if p.In(swatchRect(i)) {
			return i, true
		}
	}
	return 0, false
}

func swatchRect(i int) image.Rectangle {
	cols := max(1, (toolbarWidth-4)/(swatchSize+2))
	y0 := len(toolButtons)*buttonHeight + 4
	x := 4 + (i%cols)*(swatchSize+2)
	y := y0 + (i/cols)*(swatchSize+2)
	return image.Rect(x, y, x+swatchSize, y+swatchSize)
}

// frame is everything needed to paint one window frame.
type frame struct {
	theme   *theme.Theme
	img     image.Image
	view    View
	shapes  []shape.Shape
	current shape.Shape
	tool    shape.Kind
	style   shape.Style
	status  string
}

func paintFrame(dst *image.RGBA, f frame) {
	b := dst.Bounds()
	th := f.theme
	draw.Draw(dst, b, image.NewUniform(th.Background), image.Point{}, draw.Src)

	area := canvasArea(b.Dx(), b.Dy()).Add(b.Min)
	ib := f.img.Bounds()
	ir := f.view.Rect(ib.Dx(), ib.Dy()).Intersect(area)
	drawCheckerboard(dst, ir, th.CheckerLight, th.CheckerDark)
	if sub, ok := dst.SubImage(area).(*image.RGBA); ok && !area.Empty() {
		xdraw.NearestNeighbor.Scale(sub, f.view.Rect(ib.Dx(), ib.Dy()), f.img, ib, draw.Over, nil)
		c := raster.NewCanvas(sub)
		for _, s := range f.shapes {
			s.Draw(c, f.view.Offset, f.view.Scale)
		}
		if f.current != nil {
			f.current.Draw(c, f.view.Offset, f.view.Scale)
		}
	}

	drawToolbar(dst, th, f.tool, f.style)
	drawStatus(dst, th, f.status)
}

func drawCheckerboard(dst *image.RGBA, r image.Rectangle, light, dark color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := dark
			if ((x/checkerSize)+(y/checkerSize))%2 == 0 {
				c = light
			}
			dst.SetRGBA(x, y, c)
		}
	}
}

func drawToolbar(dst *image.RGBA, th *theme.Theme, tool shape.Kind, st shape.Style) {
	b := dst.Bounds()
	bar := image.Rect(b.Min.X, b.Min.Y, b.Min.X+toolbarWidth, b.Max.Y-statusHeight)
	draw.Draw(dst, bar, image.NewUniform(th.ToolbarBackground), image.Point{}, draw.Src)

	for i, tb := range toolButtons {
		r := image.Rect(0, i*buttonHeight, toolbarWidth, (i+1)*buttonHeight).Add(b.Min)
		text := th.ToolbarText
		if tb.kind == tool {
			draw.Draw(dst, r, image.NewUniform(th.ToolActive), image.Point{}, draw.Src)
			text = th.ToolActiveText
		}
		outline(dst, r, th.ToolBorder)
		label(dst, r.Min.X+4, r.Min.Y+16, tb.label, text)
	}

	for i, c := range Palette {
		r := swatchRect(i).Add(b.Min)
		draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
		if shape.FromColor(c) == st.Color {
			outline(dst, r.Inset(-1), th.ToolBorder)
		}
	}
}

func drawStatus(dst *image.RGBA, th *theme.Theme, status string) {
	b := dst.Bounds()
	r := image.Rect(b.Min.X, b.Max.Y-statusHeight, b.Max.X, b.Max.Y)
	draw.Draw(dst, r, image.NewUniform(th.ToolbarBackground), image.Point{}, draw.Src)
	label(dst, r.Min.X+4, r.Min.Y+14, status, th.Foreground)
}

func label(dst *image.RGBA, x, y int, s string, c color.RGBA) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: basicfont.Face7x13, Dot: fixed.P(x, y)}
	d.DrawString(s)
}

func outline(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	u := image.NewUniform(c)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}

func statusLine(s *Session, v View, msg string) string {
	st := s.Style()
	fill := ""
	if st.Filled {
		fill = " filled"
	}
	line := fmt.Sprintf("%s %s w%.0f%s  %.0f%%  shapes %d", s.Tool(), st.Color, st.Thickness, fill, v.Scale*100, s.Count())
	if s.CanUndo() {
		line += "  ^Z undo"
	}
	if s.CanRedo() {
		line += "  ^Y redo"
	}
	if msg != "" {
		line = msg + "  |  " + line
	}
	return line
}
