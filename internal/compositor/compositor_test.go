package compositor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/inkshot/internal/format"
	"github.com/example/inkshot/internal/pixbuf"
	"github.com/example/inkshot/internal/raster"
	"github.com/example/inkshot/internal/shape"
)

var red = shape.RGBA(255, 0, 0, 255)

func whiteImage(t *testing.T, w, h int) *pixbuf.Image {
	t.Helper()
	img, err := pixbuf.New(w, h, format.PNG)
	require.NoError(t, err)
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	return img
}

func TestFlattenFilledRectangle(t *testing.T) {
	src := whiteImage(t, 4, 4)
	rect := shape.New(shape.Rectangle, shape.Pt(0, 0), shape.Style{Color: red, Thickness: 1, Filled: true})
	rect.Update(shape.Pt(2, 2))

	out, err := New(nil, nil).Flatten(src, []shape.Shape{rect})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Width)
	assert.Equal(t, 4, out.Height)
	assert.Equal(t, format.RGBA, out.Origin)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			px := out.Pix[(y*4+x)*4:][:4]
			if x < 2 && y < 2 {
				assert.Equal(t, []byte{255, 0, 0, 255}, px, "pixel %d,%d", x, y)
			} else {
				assert.Equal(t, []byte{255, 255, 255, 255}, px, "pixel %d,%d", x, y)
			}
		}
	}
	assert.Equal(t, whiteImage(t, 4, 4).Pix, src.Pix, "source must be left untouched")
}

func TestFlattenIsIdempotent(t *testing.T) {
	src := whiteImage(t, 16, 12)
	style := shape.Style{Color: shape.RGBA(0, 0, 255, 200), Thickness: 2}
	var shapes []shape.Shape
	for _, k := range shape.Kinds() {
		s := shape.New(k, shape.Pt(2, 3), style)
		s.Update(shape.Pt(9, 7))
		s.Update(shape.Pt(13, 9))
		shapes = append(shapes, s)
	}
	c := New(raster.NewTarget, nil)
	a, err := c.Flatten(src, shapes)
	require.NoError(t, err)
	b, err := c.Flatten(src, shapes)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a.Pix, b.Pix))
	assert.NotSame(t, &a.Pix[0], &b.Pix[0])
	assert.NotSame(t, &src.Pix[0], &a.Pix[0])
}

func TestFlattenLaterShapesWin(t *testing.T) {
	src := whiteImage(t, 4, 4)
	blue := shape.RGBA(0, 0, 255, 255)
	first := shape.New(shape.Rectangle, shape.Pt(0, 0), shape.Style{Color: red, Filled: true})
	first.Update(shape.Pt(4, 4))
	second := shape.New(shape.Rectangle, shape.Pt(0, 0), shape.Style{Color: blue, Filled: true})
	second.Update(shape.Pt(1, 1))

	out, err := New(nil, nil).Flatten(src, []shape.Shape{first, second})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 255, 255}, out.Pix[:4])
	assert.Equal(t, []byte{255, 0, 0, 255}, out.Pix[4:8])
}

func TestFlattenNoShapesCopiesSource(t *testing.T) {
	src := whiteImage(t, 3, 2)
	src.Pix[0] = 7
	out, err := New(nil, nil).Flatten(src, nil)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, out.Pix)
}

// bottomUp wraps a real target and reports its rows reversed, as a
// framebuffer readback would.
type bottomUp struct {
	raster.Target
	h int
	w int
}

func (b bottomUp) ReadPixels() ([]byte, pixbuf.Orientation, error) {
	pix, _, err := b.Target.ReadPixels()
	if err != nil {
		return nil, 0, err
	}
	pixbuf.FlipRows(pix, b.w, b.h)
	return pix, pixbuf.BottomUp, nil
}

func TestFlattenCorrectsBottomUpReadback(t *testing.T) {
	factory := func(w, h int) (raster.Target, error) {
		tgt, err := raster.NewTarget(w, h)
		if err != nil {
			return nil, err
		}
		return bottomUp{Target: tgt, w: w, h: h}, nil
	}
	src := whiteImage(t, 2, 3)
	line := shape.New(shape.Line, shape.Pt(0, 0), shape.Style{Color: red, Thickness: 1})
	line.Update(shape.Pt(1, 0))

	out, err := New(factory, nil).Flatten(src, []shape.Shape{line})
	require.NoError(t, err)
	assert.Equal(t, []byte{255, 0, 0, 255, 255, 0, 0, 255}, out.Pix[:8], "top row holds the line")
	assert.Equal(t, []byte{255, 255, 255, 255}, out.Pix[len(out.Pix)-4:])
}

type shortRead struct{ raster.Target }

func (shortRead) ReadPixels() ([]byte, pixbuf.Orientation, error) {
	return make([]byte, 3), pixbuf.TopDown, nil
}

func TestFlattenRejectsShortReadback(t *testing.T) {
	factory := func(w, h int) (raster.Target, error) {
		tgt, err := raster.NewTarget(w, h)
		return shortRead{tgt}, err
	}
	_, err := New(factory, nil).Flatten(whiteImage(t, 2, 2), nil)
	require.ErrorIs(t, err, raster.ErrSurface)
}

func TestFlattenRejectsInvalidSource(t *testing.T) {
	_, err := New(nil, nil).Flatten(&pixbuf.Image{Width: 2, Height: 2, Layout: format.RGBA}, nil)
	require.ErrorIs(t, err, pixbuf.ErrInvalid)
}

func TestSmoothFlattenKeepsUntouchedPixels(t *testing.T) {
	src, err := pixbuf.New(2, 1, format.PNG)
	require.NoError(t, err)
	copy(src.Pix, []byte{10, 20, 30, 128, 200, 100, 50, 7})

	out, err := New(raster.NewSmoothTarget, nil).Flatten(src, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 20, 30, 128, 200, 100, 50, 7}, out.Pix)
}

func TestSmoothFlattenFilledRectangle(t *testing.T) {
	src := whiteImage(t, 6, 6)
	src.Pix[len(src.Pix)-1] = 9 // translucent corner, far from the shape
	rect := shape.New(shape.Rectangle, shape.Pt(0, 0), shape.Style{Color: red, Thickness: 1, Filled: true})
	rect.Update(shape.Pt(2, 2))

	c := New(raster.NewSmoothTarget, nil)
	out, err := c.Flatten(src, []shape.Shape{rect})
	require.NoError(t, err)
	for _, p := range []int{0, 1, 6, 7} {
		px := out.Pix[p*4:][:4]
		assert.InDelta(t, 255, int(px[0]), 2, "pixel %d", p)
		assert.InDelta(t, 0, int(px[1]), 2, "pixel %d", p)
		assert.InDelta(t, 255, int(px[3]), 2, "pixel %d", p)
	}
	for y := 4; y < 6; y++ {
		for x := 0; x < 6; x++ {
			i := (y*6 + x) * 4
			assert.Equal(t, src.Pix[i:i+4], out.Pix[i:i+4], "pixel %d,%d", x, y)
		}
	}

	again, err := c.Flatten(src, []shape.Shape{rect})
	require.NoError(t, err)
	assert.True(t, bytes.Equal(out.Pix, again.Pix))
}
