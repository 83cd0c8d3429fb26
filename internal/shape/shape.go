// Package shape models vector annotations and their undo history.
//
// Shapes live in model space (image pixels). Draw projects them into a
// surface with screen = offset + model*scale, scaling thickness by the same
// factor.
package shape

import "math"

// Point is a position in model or screen space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point    { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point    { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(k float64) Point  { return Point{p.X * k, p.Y * k} }
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

func project(p, off Point, s float64) Point { return off.Add(p.Mul(s)) }

// Surface is the drawing target shapes render into. Coordinates are screen
// space; thickness and radius are already scaled.
type Surface interface {
	Line(a, b Point, thickness float64, c Color)
	Circle(center Point, radius, thickness float64, c Color)
	FilledCircle(center Point, radius float64, c Color)
	Rect(min, max Point, thickness float64, c Color)
	FilledRect(min, max Point, c Color)
	FilledTriangle(a, b, p Point, c Color)
}

// Shape is one annotation. Update moves the shape toward a new pointer
// position while it is being drawn.
type Shape interface {
	Kind() Kind
	Draw(s Surface, offset Point, scale float64)
	Update(p Point)
}

// New starts the shape for tool k at p.
func New(k Kind, p Point, st Style) Shape {
	switch k {
	case Circle:
		return &CircleShape{Center: p, Style: st}
	case Rectangle:
		return &RectShape{Start: p, End: p, Style: st}
	case Freeform:
		return &FreeformShape{Points: []Point{p}, Style: st}
	case Arrow:
		return &ArrowShape{Start: p, End: p, Style: st}
	default:
		return &LineShape{Start: p, End: p, Style: st}
	}
}

type LineShape struct {
	Start, End Point
	Style      Style
}

func (*LineShape) Kind() Kind { return Line }

func (l *LineShape) Draw(s Surface, off Point, scale float64) {
	s.Line(project(l.Start, off, scale), project(l.End, off, scale), l.Style.Thickness*scale, l.Style.Color)
}

func (l *LineShape) Update(p Point) { l.End = p }

type CircleShape struct {
	Center Point
	Radius float64
	Style  Style
}

func (*CircleShape) Kind() Kind { return Circle }

func (c *CircleShape) Draw(s Surface, off Point, scale float64) {
	center := project(c.Center, off, scale)
	if c.Style.Filled {
		s.FilledCircle(center, c.Radius*scale, c.Style.Color)
		return
	}
	s.Circle(center, c.Radius*scale, c.Style.Thickness*scale, c.Style.Color)
}

// Update sets the radius to the distance from the center to p.
func (c *CircleShape) Update(p Point) { c.Radius = c.Center.Dist(p) }

// RectShape spans two opposite corners in any order.
type RectShape struct {
	Start, End Point
	Style      Style
}

func (*RectShape) Kind() Kind { return Rectangle }

// Bounds returns the corners ordered so that min <= max on both axes.
func (r *RectShape) Bounds() (min, max Point) {
	return Point{math.Min(r.Start.X, r.End.X), math.Min(r.Start.Y, r.End.Y)},
		Point{math.Max(r.Start.X, r.End.X), math.Max(r.Start.Y, r.End.Y)}
}

func (r *RectShape) Draw(s Surface, off Point, scale float64) {
	lo, hi := r.Bounds()
	lo, hi = project(lo, off, scale), project(hi, off, scale)
	if r.Style.Filled {
		s.FilledRect(lo, hi, r.Style.Color)
		return
	}
	s.Rect(lo, hi, r.Style.Thickness*scale, r.Style.Color)
}

func (r *RectShape) Update(p Point) { r.End = p }

// FreeformShape is an append-only polyline.
type FreeformShape struct {
	Points []Point
	Style  Style
}

func (*FreeformShape) Kind() Kind { return Freeform }

// Draw renders each segment plus a dot on every vertex so joints stay round.
func (f *FreeformShape) Draw(s Surface, off Point, scale float64) {
	t := f.Style.Thickness * scale
	for i, p := range f.Points {
		sp := project(p, off, scale)
		if i > 0 {
			s.Line(project(f.Points[i-1], off, scale), sp, t, f.Style.Color)
		}
		s.FilledCircle(sp, t/2, f.Style.Color)
	}
}

// Update appends p unless it repeats the last point.
func (f *FreeformShape) Update(p Point) {
	if n := len(f.Points); n > 0 && f.Points[n-1] == p {
		return
	}
	f.Points = append(f.Points, p)
}

// Arrow head proportions relative to the stroke thickness.
const (
	ArrowHeadLength = 4.0
	ArrowHeadWidth  = 3.0
)

type ArrowShape struct {
	Start, End Point
	Style      Style
}

func (*ArrowShape) Kind() Kind { return Arrow }

// Draw renders the shaft and a filled head at End. The head is skipped when
// Start == End since it has no direction.
func (a *ArrowShape) Draw(s Surface, off Point, scale float64) {
	from, to := project(a.Start, off, scale), project(a.End, off, scale)
	t := a.Style.Thickness * scale
	d := to.Sub(from)
	n := math.Hypot(d.X, d.Y)
	if n == 0 {
		s.Line(from, to, t, a.Style.Color)
		return
	}
	u := d.Mul(1 / n)
	headLen := math.Min(ArrowHeadLength*t, n)
	half := ArrowHeadWidth * t / 2
	base := to.Sub(u.Mul(headLen))
	normal := Point{-u.Y, u.X}
	s.Line(from, base, t, a.Style.Color)
	s.FilledTriangle(to, base.Add(normal.Mul(half)), base.Sub(normal.Mul(half)), a.Style.Color)
}

func (a *ArrowShape) Update(p Point) { a.End = p }
