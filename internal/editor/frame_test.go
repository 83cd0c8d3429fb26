package editor

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/key"

	"github.com/example/inkshot/internal/shape"
	"github.com/example/inkshot/internal/theme"
)

func blueImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+2] = 0xFF
		img.Pix[i+3] = 0xFF
	}
	return img
}

func testFrame(width, height int, shapes []shape.Shape) (*image.RGBA, View) {
	img := blueImage(10, 10)
	area := canvasArea(width, height)
	v := FitView(10, 10, area.Dx(), area.Dy()).Translate(shape.Pt(float64(area.Min.X), float64(area.Min.Y)))
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	paintFrame(dst, frame{
		theme:  theme.Default(),
		img:    img,
		view:   v,
		shapes: shapes,
		tool:   shape.Rectangle,
		style:  shape.DefaultStyle(),
		status: "ready",
	})
	return dst, v
}

func TestPaintFrameShowsImage(t *testing.T) {
	dst, v := testFrame(240, 120, nil)
	r := v.Rect(10, 10)
	require.False(t, r.Empty())

	mid := image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, dst.RGBAAt(mid.X, mid.Y))

	area := canvasArea(240, 120)
	if r.Min.X > area.Min.X {
		assert.Equal(t, theme.Default().Background, dst.RGBAAt(area.Min.X, mid.Y))
	}
	assert.Equal(t, theme.Default().ToolbarBackground, dst.RGBAAt(239, 119))
}

func TestPaintFrameDrawsShapesInViewSpace(t *testing.T) {
	st := shape.Style{Color: shape.RGBA(255, 0, 0, 255), Thickness: 1, Filled: true}
	rect := shape.New(shape.Rectangle, shape.Pt(0, 0), st)
	rect.Update(shape.Pt(5, 10))

	dst, v := testFrame(240, 120, []shape.Shape{rect})
	left := v.ToScreen(shape.Pt(2, 5))
	right := v.ToScreen(shape.Pt(8, 5))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, dst.RGBAAt(int(left.X), int(left.Y)))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, dst.RGBAAt(int(right.X), int(right.Y)))
}

func TestToolbarHitTesting(t *testing.T) {
	for i, b := range toolButtons {
		k, ok := toolAt(image.Pt(2, i*buttonHeight+1))
		require.True(t, ok)
		assert.Equal(t, b.kind, k)
	}
	_, ok := toolAt(image.Pt(toolbarWidth+1, 1))
	assert.False(t, ok)

	r := swatchRect(3)
	idx, ok := swatchAt(r.Min.Add(image.Pt(1, 1)))
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestBindings(t *testing.T) {
	tests := []struct {
		name string
		ev   key.Event
		want binding
	}{
		{"line", key.Event{Rune: 'l', Direction: key.DirPress}, binding{action: actionTool, tool: shape.Line}},
		{"upper arrow", key.Event{Rune: 'A', Direction: key.DirPress}, binding{action: actionTool, tool: shape.Arrow}},
		{"release ignored", key.Event{Rune: 'l', Direction: key.DirRelease}, binding{}},
		{"undo", key.Event{Code: key.CodeZ, Modifiers: key.ModControl, Direction: key.DirPress}, binding{action: actionUndo}},
		{"redo shift", key.Event{Code: key.CodeZ, Modifiers: key.ModControl | key.ModShift, Direction: key.DirPress}, binding{action: actionRedo}},
		{"undo control rune", key.Event{Rune: 0x1a, Code: key.CodeZ, Modifiers: key.ModControl, Direction: key.DirPress}, binding{action: actionUndo}},
		{"redo y", key.Event{Rune: 'y', Modifiers: key.ModControl, Direction: key.DirPress}, binding{action: actionRedo}},
		{"save", key.Event{Rune: 's', Code: key.CodeS, Modifiers: key.ModControl, Direction: key.DirPress}, binding{action: actionSave}},
		{"copy", key.Event{Code: key.CodeC, Modifiers: key.ModControl, Direction: key.DirPress}, binding{action: actionCopy}},
		{"ctrl other", key.Event{Rune: 'l', Modifiers: key.ModControl, Direction: key.DirPress}, binding{}},
		{"clear", key.Event{Rune: -1, Code: key.CodeDeleteForward, Direction: key.DirPress}, binding{action: actionClear}},
		{"fill", key.Event{Rune: -1, Code: key.CodeTab, Direction: key.DirPress}, binding{action: actionFill}},
		{"cancel", key.Event{Rune: -1, Code: key.CodeEscape, Direction: key.DirPress}, binding{action: actionCancel}},
		{"color", key.Event{Rune: '3', Direction: key.DirPress}, binding{action: actionColor, color: 2}},
		{"zoom in", key.Event{Rune: '+', Direction: key.DirPress}, binding{action: actionZoomIn}},
		{"zoom out", key.Event{Rune: '-', Direction: key.DirPress}, binding{action: actionZoomOut}},
		{"fit", key.Event{Rune: '0', Direction: key.DirPress}, binding{action: actionFit}},
		{"thicker", key.Event{Rune: ']', Direction: key.DirPress}, binding{action: actionThicker}},
		{"quit", key.Event{Rune: 'q', Direction: key.DirPress}, binding{action: actionQuit}},
		{"unbound", key.Event{Rune: 'z', Direction: key.DirPress}, binding{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bindingFor(tc.ev))
		})
	}
}

func TestToolKeysCoverEveryKind(t *testing.T) {
	assert.Len(t, toolKeys, len(shape.Kinds()))
	assert.Equal(t, shape.Freeform, toolKeys['f'])
	assert.Equal(t, shape.Rectangle, toolKeys['r'])
}

func TestStatusLine(t *testing.T) {
	s := NewSession(shape.Arrow, shape.DefaultStyle())
	line := statusLine(s, View{Scale: 0.5}, "saved")
	assert.Contains(t, line, "saved")
	assert.Contains(t, line, "arrow")
	assert.Contains(t, line, "50%")
	assert.NotContains(t, line, "undo")

	s.Begin(shape.Pt(0, 0))
	s.End(shape.Pt(4, 4))
	s.Undo()
	line = statusLine(s, View{Scale: 1}, "")
	assert.Contains(t, line, "shapes 0")
	assert.Contains(t, line, "^Y redo")
	assert.NotContains(t, line, "^Z undo")
}
