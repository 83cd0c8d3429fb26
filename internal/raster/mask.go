package raster

import (
	"image"
	"image/color"
	"math"
)

var on = color.Alpha{A: 0xFF}

// brush stamps a square of side thick centered on (x, y).
func brush(m *image.Alpha, x, y, thick int) {
	r := thick / 2
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			m.SetAlpha(x+dx, y+dy, on)
		}
	}
}

// line is Bresenham with the square brush at every step.
func line(m *image.Alpha, x0, y0, x1, y1, thick int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		brush(m, x0, y0, thick)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// ring is the midpoint circle of radius r.
func ring(m *image.Alpha, cx, cy, r int) {
	x, y := r, 0
	err := 1 - r
	for x >= y {
		for _, p := range [8][2]int{{x, y}, {y, x}, {-y, x}, {-x, y}, {-x, -y}, {-y, -x}, {y, -x}, {x, -y}} {
			m.SetAlpha(cx+p[0], cy+p[1], on)
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2 * (y - x + 1)
		}
	}
}

// circle draws thick concentric rings centered on radius r, plus a disc
// fill between them so wide strokes have no gaps.
func circle(m *image.Alpha, cx, cy, r, thick int) {
	if thick <= 1 {
		ring(m, cx, cy, r)
		return
	}
	inner := r - thick/2
	outer := inner + thick - 1
	if inner < 0 {
		inner = 0
	}
	for dy := -outer; dy <= outer; dy++ {
		for dx := -outer; dx <= outer; dx++ {
			d := dx*dx + dy*dy
			if d <= outer*outer+outer && d >= inner*inner-inner {
				m.SetAlpha(cx+dx, cy+dy, on)
			}
		}
	}
}

func disc(m *image.Alpha, cx, cy, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				m.SetAlpha(cx+dx, cy+dy, on)
			}
		}
	}
}

// outline strokes the edges of rect, whose Max is exclusive.
func outline(m *image.Alpha, rect image.Rectangle, thick int) {
	x0, y0 := rect.Min.X, rect.Min.Y
	x1, y1 := rect.Max.X-1, rect.Max.Y-1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	line(m, x0, y0, x1, y0, thick)
	line(m, x1, y0, x1, y1, thick)
	line(m, x1, y1, x0, y1, thick)
	line(m, x0, y1, x0, y0, thick)
}

func fill(m *image.Alpha, rect image.Rectangle) {
	rect = rect.Intersect(m.Rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		row := m.Pix[m.PixOffset(rect.Min.X, y):m.PixOffset(rect.Max.X, y)]
		for i := range row {
			row[i] = 0xFF
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func round(v float64) int { return int(math.Round(v)) }

// pixels converts a scaled stroke width to a brush size of at least one pixel.
func pixels(thickness float64) int {
	if t := round(thickness); t > 1 {
		return t
	}
	return 1
}
