package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"

	"github.com/example/inkshot/internal/pixbuf"
	"github.com/example/inkshot/internal/shape"
)

// smoothTarget renders through gg's anti-aliasing rasterizer. Output is not
// pixel-exact at shape edges. gg only ever sees the shapes: they are drawn
// onto a transparent overlay that ReadPixels composites over the straight
// alpha base, so pixels no shape touches come back unchanged.
type smoothTarget struct {
	base *image.NRGBA
	dc   *gg.Context
	w, h int
	err  error
}

// NewSmoothTarget returns an anti-aliased Target.
func NewSmoothTarget(width, height int) (Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrSurface, width, height)
	}
	s := &smoothTarget{base: image.NewNRGBA(image.Rect(0, 0, width, height)), w: width, h: height}
	s.reset(gg.NewContext(width, height))
	return s, nil
}

func (s *smoothTarget) reset(dc *gg.Context) {
	if s.dc != nil {
		s.keep(s.dc.Close())
	}
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	s.dc = dc
}

// keep records the first drawing error; the Surface methods cannot return one.
func (s *smoothTarget) keep(err error) {
	if err != nil && s.err == nil {
		s.err = fmt.Errorf("%w: %v", ErrSurface, err)
	}
}

func (s *smoothTarget) stroke(thickness float64, c shape.Color) {
	s.dc.SetColor(c.NRGBA())
	s.dc.SetLineWidth(max(thickness, 1))
	s.keep(s.dc.Stroke())
}

func (s *smoothTarget) fill(c shape.Color) {
	s.dc.SetColor(c.NRGBA())
	s.keep(s.dc.Fill())
}

func (s *smoothTarget) Line(a, b shape.Point, thickness float64, c shape.Color) {
	s.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	s.stroke(thickness, c)
}

func (s *smoothTarget) Circle(center shape.Point, radius, thickness float64, c shape.Color) {
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.stroke(thickness, c)
}

func (s *smoothTarget) FilledCircle(center shape.Point, radius float64, c shape.Color) {
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.fill(c)
}

func (s *smoothTarget) Rect(min, max shape.Point, thickness float64, c shape.Color) {
	s.dc.DrawRectangle(min.X, min.Y, max.X-min.X, max.Y-min.Y)
	s.stroke(thickness, c)
}

func (s *smoothTarget) FilledRect(min, max shape.Point, c shape.Color) {
	s.dc.DrawRectangle(min.X, min.Y, max.X-min.X, max.Y-min.Y)
	s.fill(c)
}

func (s *smoothTarget) FilledTriangle(a, b, p shape.Point, c shape.Color) {
	s.dc.MoveTo(a.X, a.Y)
	s.dc.LineTo(b.X, b.Y)
	s.dc.LineTo(p.X, p.Y)
	s.dc.ClosePath()
	s.fill(c)
}

func (s *smoothTarget) Blit(src *pixbuf.Image) error {
	if s.dc == nil {
		return fmt.Errorf("%w: closed", ErrSurface)
	}
	if src.Width != s.w || src.Height != s.h {
		return fmt.Errorf("%w: blit %dx%d onto %dx%d", ErrSurface, src.Width, src.Height, s.w, s.h)
	}
	draw.Draw(s.base, s.base.Rect, src.View(), image.Point{}, draw.Src)
	s.err = nil
	s.reset(gg.NewContext(s.w, s.h))
	return nil
}

func (s *smoothTarget) ReadPixels() ([]byte, pixbuf.Orientation, error) {
	if s.dc == nil {
		return nil, pixbuf.TopDown, fmt.Errorf("%w: closed", ErrSurface)
	}
	if s.err != nil {
		return nil, pixbuf.TopDown, s.err
	}
	if err := s.dc.FlushGPU(); err != nil {
		return nil, pixbuf.TopDown, fmt.Errorf("%w: flush: %v", ErrSurface, err)
	}
	out := &image.NRGBA{
		Pix:    append([]byte(nil), s.base.Pix...),
		Stride: s.base.Stride,
		Rect:   s.base.Rect,
	}
	over(out, s.dc.Image())
	return out.Pix, pixbuf.TopDown, nil
}

// over composites src onto dst. Pixels where src is fully transparent are
// skipped, so dst keeps its exact straight alpha values there.
func over(dst *image.NRGBA, src image.Image) {
	r := dst.Rect.Intersect(src.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sr, sg, sb, sa := src.At(x, y).RGBA()
			if sa == 0 {
				continue
			}
			if sa == 0xffff {
				dst.Set(x, y, color.RGBA64{R: uint16(sr), G: uint16(sg), B: uint16(sb), A: 0xffff})
				continue
			}
			dr, dg, db, da := dst.NRGBAAt(x, y).RGBA()
			k := 0xffff - sa
			dst.Set(x, y, color.RGBA64{
				R: uint16(sr + dr*k/0xffff),
				G: uint16(sg + dg*k/0xffff),
				B: uint16(sb + db*k/0xffff),
				A: uint16(sa + da*k/0xffff),
			})
		}
	}
}

func (s *smoothTarget) Close() error {
	if s.dc == nil {
		return nil
	}
	err := s.dc.Close()
	s.dc = nil
	s.base = nil
	return err
}
