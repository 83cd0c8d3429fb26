// Package pixbuf holds the canonical in-memory image shared by the decoders,
// the compositor and the encoders.
package pixbuf

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/example/inkshot/internal/format"
)

// BytesPerPixel is the stride of one canonical pixel.
const BytesPerPixel = 4

// Orientation describes the row order of a pixel buffer.
type Orientation int

const (
	// TopDown stores the first row at the top of the image. Canonical images
	// are always TopDown.
	TopDown Orientation = iota
	// BottomUp stores the first row at the bottom, as framebuffer readbacks do.
	BottomUp
)

// ErrInvalid is returned by Validate for malformed images.
var ErrInvalid = errors.New("invalid image")

// Image is a tightly packed, non-premultiplied RGBA raster, row-major and
// top-to-bottom. It is never mutated in place once handed to another stage.
type Image struct {
	Pix    []byte
	Width  int
	Height int
	// Layout is the pixel layout tag. Canonical images are format.RGBA.
	Layout format.Format
	// Origin records provenance: the decoded-from format, or format.RGBA for
	// rasters produced by flattening.
	Origin format.Format
}

// New allocates a zeroed (transparent) image.
func New(width, height int, origin format.Format) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalid, width, height)
	}
	return &Image{
		Pix:    make([]byte, width*height*BytesPerPixel),
		Width:  width,
		Height: height,
		Layout: format.RGBA,
		Origin: origin,
	}, nil
}

// Wrap takes ownership of pix as a canonical image after checking its size.
func Wrap(pix []byte, width, height int, origin format.Format) (*Image, error) {
	img := &Image{Pix: pix, Width: width, Height: height, Layout: format.RGBA, Origin: origin}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	return img, nil
}

// FromImage converts any decoded image into a freshly allocated canonical
// image. Sources without alpha are expanded to four channels.
func FromImage(src image.Image, origin format.Format) (*Image, error) {
	b := src.Bounds()
	img, err := New(b.Dx(), b.Dy(), origin)
	if err != nil {
		return nil, err
	}
	if n, ok := src.(*image.NRGBA); ok && n.Stride == b.Dx()*BytesPerPixel {
		copy(img.Pix, n.Pix[n.PixOffset(b.Min.X, b.Min.Y):])
		return img, nil
	}
	draw.Draw(img.View(), img.View().Bounds(), src, b.Min, draw.Src)
	return img, nil
}

// Validate checks the structural invariants of the image.
func (m *Image) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil image", ErrInvalid)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalid, m.Width, m.Height)
	}
	if want := m.Width * m.Height * BytesPerPixel; m.Len() != want {
		return fmt.Errorf("%w: buffer holds %d bytes, want %d", ErrInvalid, m.Len(), want)
	}
	if m.Layout != format.RGBA {
		return fmt.Errorf("%w: layout %s", ErrInvalid, m.Layout)
	}
	return nil
}

// Len returns the buffer length in bytes.
func (m *Image) Len() int { return len(m.Pix) }

// View returns an *image.NRGBA sharing the pixel buffer. It is a borrow: callers
// must not write through it unless they own the image.
func (m *Image) View() *image.NRGBA {
	return &image.NRGBA{
		Pix:    m.Pix,
		Stride: m.Width * BytesPerPixel,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}

// Opaque reports whether every pixel has alpha 255.
func (m *Image) Opaque() bool {
	for i := 3; i < len(m.Pix); i += BytesPerPixel {
		if m.Pix[i] != 0xFF {
			return false
		}
	}
	return true
}

// Release drops the pixel buffer. The image is invalid afterwards.
func (m *Image) Release() {
	if m == nil {
		return
	}
	m.Pix = nil
	m.Width, m.Height = 0, 0
}

// FlipRows reverses the row order of a tightly packed RGBA buffer in place.
func FlipRows(pix []byte, width, height int) {
	stride := width * BytesPerPixel
	tmp := make([]byte, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
