package editor

import (
	"image"
	"math"

	"github.com/example/inkshot/internal/shape"
)

const (
	minScale = 0.05
	maxScale = 32
)

// View maps model (image pixel) coordinates to screen coordinates:
// screen = Offset + model*Scale.
type View struct {
	Offset shape.Point
	Scale  float64
}

// FitView scales an image to fit the area and centers it.
func FitView(imgW, imgH, areaW, areaH int) View {
	if imgW <= 0 || imgH <= 0 || areaW <= 0 || areaH <= 0 {
		return View{Scale: 1}
	}
	s := math.Min(float64(areaW)/float64(imgW), float64(areaH)/float64(imgH))
	return View{
		Offset: shape.Pt((float64(areaW)-float64(imgW)*s)/2, (float64(areaH)-float64(imgH)*s)/2),
		Scale:  s,
	}
}

// ToModel inverts the view transform.
func (v View) ToModel(p shape.Point) shape.Point {
	if v.Scale == 0 {
		return p.Sub(v.Offset)
	}
	return p.Sub(v.Offset).Mul(1 / v.Scale)
}

// ToScreen applies the view transform.
func (v View) ToScreen(p shape.Point) shape.Point {
	return v.Offset.Add(p.Mul(v.Scale))
}

// Translate moves the view by d screen pixels.
func (v View) Translate(d shape.Point) View {
	v.Offset = v.Offset.Add(d)
	return v
}

// Zoom multiplies the scale by f, keeping the model point under anchor fixed.
func (v View) Zoom(f float64, anchor shape.Point) View {
	s := math.Max(minScale, math.Min(maxScale, v.Scale*f))
	m := v.ToModel(anchor)
	return View{Offset: anchor.Sub(m.Mul(s)), Scale: s}
}

// Rect returns the screen rectangle covered by a w×h image.
func (v View) Rect(w, h int) image.Rectangle {
	min := v.ToScreen(shape.Pt(0, 0))
	max := v.ToScreen(shape.Pt(float64(w), float64(h)))
	return image.Rect(int(math.Round(min.X)), int(math.Round(min.Y)), int(math.Round(max.X)), int(math.Round(max.Y)))
}
