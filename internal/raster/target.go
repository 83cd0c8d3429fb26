package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/example/inkshot/internal/pixbuf"
	"github.com/example/inkshot/internal/shape"
)

// ErrSurface reports that a drawing surface could not be created or used.
var ErrSurface = errors.New("drawing surface unavailable")

// Target is an offscreen surface the compositor flattens into.
type Target interface {
	shape.Surface
	// Blit copies img over the whole surface.
	Blit(img *pixbuf.Image) error
	// ReadPixels returns a fresh, tightly packed RGBA copy of the surface and
	// the row order it is stored in.
	ReadPixels() ([]byte, pixbuf.Orientation, error)
	Close() error
}

// Factory creates a Target of the given size.
type Factory func(width, height int) (Target, error)

// Factories lists the named renderers selectable from configuration.
var Factories = map[string]Factory{
	"raster": NewTarget,
	"smooth": NewSmoothTarget,
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	if f, ok := Factories[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown renderer %q", name)
}

type canvasTarget struct {
	*Canvas
	img *image.NRGBA
}

// NewTarget returns a pixel-exact Target backed by a straight-alpha buffer.
func NewTarget(width, height int) (Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrSurface, width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	return &canvasTarget{Canvas: NewCanvas(img), img: img}, nil
}

func (t *canvasTarget) Blit(src *pixbuf.Image) error {
	if t.img == nil {
		return fmt.Errorf("%w: closed", ErrSurface)
	}
	if src.Width != t.img.Rect.Dx() || src.Height != t.img.Rect.Dy() {
		return fmt.Errorf("%w: blit %dx%d onto %dx%d", ErrSurface, src.Width, src.Height, t.img.Rect.Dx(), t.img.Rect.Dy())
	}
	draw.Draw(t.img, t.img.Rect, src.View(), image.Point{}, draw.Src)
	return nil
}

func (t *canvasTarget) ReadPixels() ([]byte, pixbuf.Orientation, error) {
	if t.img == nil {
		return nil, pixbuf.TopDown, fmt.Errorf("%w: closed", ErrSurface)
	}
	return append([]byte(nil), t.img.Pix...), pixbuf.TopDown, nil
}

func (t *canvasTarget) Close() error {
	t.img = nil
	return nil
}
