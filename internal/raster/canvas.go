// Package raster provides drawing surfaces that shapes render into.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/example/inkshot/internal/shape"
)

// Canvas draws hard-edged primitives onto any draw.Image. Each primitive is
// rasterized into a coverage mask first and composited once, so translucent
// colors never darken where a brush overlaps itself.
type Canvas struct {
	dst  draw.Image
	mask *image.Alpha
	vec  *vector.Rasterizer
}

// NewCanvas wraps dst. Drawing outside dst's bounds is clipped.
func NewCanvas(dst draw.Image) *Canvas {
	return &Canvas{dst: dst, mask: image.NewAlpha(dst.Bounds())}
}

// Bounds returns the drawable area.
func (c *Canvas) Bounds() image.Rectangle { return c.dst.Bounds() }

// begin clears the mask inside r and returns r clipped to the canvas.
func (c *Canvas) begin(r image.Rectangle) image.Rectangle {
	r = r.Intersect(c.mask.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		clear(c.mask.Pix[c.mask.PixOffset(r.Min.X, y):c.mask.PixOffset(r.Max.X, y)])
	}
	return r
}

func (c *Canvas) commit(r image.Rectangle, col shape.Color) {
	if r.Empty() {
		return
	}
	draw.DrawMask(c.dst, r, image.NewUniform(col.NRGBA()), image.Point{}, c.mask, r.Min, draw.Over)
}

func around(x0, y0, x1, y1, pad int) image.Rectangle {
	return image.Rect(x0, y0, x1, y1).Inset(-pad - 1)
}

func (c *Canvas) Line(a, b shape.Point, thickness float64, col shape.Color) {
	t := pixels(thickness)
	x0, y0, x1, y1 := round(a.X), round(a.Y), round(b.X), round(b.Y)
	r := c.begin(around(x0, y0, x1, y1, t/2))
	if r.Empty() {
		return
	}
	line(c.mask, x0, y0, x1, y1, t)
	c.commit(r, col)
}

func (c *Canvas) Circle(center shape.Point, radius, thickness float64, col shape.Color) {
	t := pixels(thickness)
	cx, cy, rr := round(center.X), round(center.Y), round(radius)
	r := c.begin(around(cx, cy, cx, cy, rr+t))
	if r.Empty() {
		return
	}
	circle(c.mask, cx, cy, rr, t)
	c.commit(r, col)
}

func (c *Canvas) FilledCircle(center shape.Point, radius float64, col shape.Color) {
	cx, cy, rr := round(center.X), round(center.Y), round(radius)
	r := c.begin(around(cx, cy, cx, cy, rr))
	if r.Empty() {
		return
	}
	disc(c.mask, cx, cy, rr)
	c.commit(r, col)
}

// Rect strokes the rectangle whose pixel span is [min, max).
func (c *Canvas) Rect(min, max shape.Point, thickness float64, col shape.Color) {
	t := pixels(thickness)
	rect := image.Rect(round(min.X), round(min.Y), round(max.X), round(max.Y))
	r := c.begin(rect.Inset(-t/2 - 1))
	if r.Empty() {
		return
	}
	outline(c.mask, rect, t)
	c.commit(r, col)
}

// FilledRect covers exactly the pixels in [min, max).
func (c *Canvas) FilledRect(min, max shape.Point, col shape.Color) {
	rect := image.Rect(round(min.X), round(min.Y), round(max.X), round(max.Y))
	r := c.begin(rect)
	if r.Empty() {
		return
	}
	fill(c.mask, r)
	c.commit(r, col)
}

// FilledTriangle uses the vector rasterizer, so its edges are anti-aliased.
func (c *Canvas) FilledTriangle(a, b, p shape.Point, col shape.Color) {
	bbox := image.Rect(
		int(math.Floor(min3(a.X, b.X, p.X))), int(math.Floor(min3(a.Y, b.Y, p.Y))),
		int(math.Ceil(max3(a.X, b.X, p.X)))+1, int(math.Ceil(max3(a.Y, b.Y, p.Y)))+1,
	)
	r := c.begin(bbox)
	if r.Empty() {
		return
	}
	// The rasterizer's origin maps to r.Min.
	w, h := r.Dx(), r.Dy()
	if c.vec == nil {
		c.vec = vector.NewRasterizer(w, h)
	} else {
		c.vec.Reset(w, h)
	}
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	c.vec.MoveTo(float32(a.X-ox), float32(a.Y-oy))
	c.vec.LineTo(float32(b.X-ox), float32(b.Y-oy))
	c.vec.LineTo(float32(p.X-ox), float32(p.Y-oy))
	c.vec.ClosePath()
	c.vec.Draw(c.mask, r, image.Opaque, image.Point{})
	c.commit(r, col)
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
