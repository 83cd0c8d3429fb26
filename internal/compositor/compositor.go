// Package compositor flattens annotation shapes into a canonical image.
package compositor

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/inkshot/internal/format"
	"github.com/example/inkshot/internal/pixbuf"
	"github.com/example/inkshot/internal/raster"
	"github.com/example/inkshot/internal/shape"
)

// Compositor renders shapes over an image using targets from a factory.
type Compositor struct {
	factory raster.Factory
	log     *logrus.Entry
}

// New returns a Compositor. A nil factory selects raster.NewTarget.
func New(factory raster.Factory, log *logrus.Entry) *Compositor {
	if factory == nil {
		factory = raster.NewTarget
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Compositor{factory: factory, log: log.WithField("component", "compositor")}
}

// Flatten draws shapes over src in order at scale 1 with no offset and returns
// the result as a new image tagged RGBA. src is only read.
func (c *Compositor) Flatten(src *pixbuf.Image, shapes []shape.Shape) (*pixbuf.Image, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}
	tgt, err := c.factory(src.Width, src.Height)
	if err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}
	defer func() {
		if err := tgt.Close(); err != nil {
			c.log.WithError(err).Warn("failed to release drawing surface")
		}
	}()

	if err := tgt.Blit(src); err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}
	for _, s := range shapes {
		s.Draw(tgt, shape.Point{}, 1)
	}
	pix, orient, err := tgt.ReadPixels()
	if err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}
	if want := src.Width * src.Height * pixbuf.BytesPerPixel; len(pix) != want {
		return nil, fmt.Errorf("flatten: %w: readback returned %d bytes, want %d", raster.ErrSurface, len(pix), want)
	}
	if &pix[0] == &src.Pix[0] {
		pix = append([]byte(nil), pix...)
	}
	if orient == pixbuf.BottomUp {
		pixbuf.FlipRows(pix, src.Width, src.Height)
	}
	out, err := pixbuf.Wrap(pix, src.Width, src.Height, format.RGBA)
	if err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}
	c.log.WithField("shapes", len(shapes)).Debugf("flattened %dx%d image", out.Width, out.Height)
	return out, nil
}
