package editor

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/inkshot/internal/shape"
)

func TestFitView(t *testing.T) {
	tests := []struct {
		name       string
		imgW, imgH int
		areaW      int
		areaH      int
		want       View
	}{
		{"wide area", 100, 100, 400, 200, View{Offset: shape.Pt(100, 0), Scale: 2}},
		{"tall area", 200, 100, 100, 400, View{Offset: shape.Pt(0, 175), Scale: 0.5}},
		{"exact", 64, 48, 64, 48, View{Scale: 1}},
		{"empty image", 0, 10, 100, 100, View{Scale: 1}},
		{"empty area", 10, 10, 0, 0, View{Scale: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FitView(tc.imgW, tc.imgH, tc.areaW, tc.areaH)
			assert.InDelta(t, tc.want.Scale, got.Scale, 1e-9)
			assert.InDelta(t, tc.want.Offset.X, got.Offset.X, 1e-9)
			assert.InDelta(t, tc.want.Offset.Y, got.Offset.Y, 1e-9)
		})
	}
}

func TestViewRoundTrip(t *testing.T) {
	v := View{Offset: shape.Pt(30, -12), Scale: 0.75}
	for _, p := range []shape.Point{{X: 0, Y: 0}, {X: 10, Y: 20}, {X: -3.5, Y: 99}} {
		back := v.ToModel(v.ToScreen(p))
		assert.InDelta(t, p.X, back.X, 1e-9)
		assert.InDelta(t, p.Y, back.Y, 1e-9)
	}
}

func TestViewZoomKeepsAnchor(t *testing.T) {
	v := View{Offset: shape.Pt(10, 20), Scale: 1}
	anchor := shape.Pt(110, 70)
	before := v.ToModel(anchor)

	z := v.Zoom(2, anchor)
	assert.InDelta(t, 2, z.Scale, 1e-9)
	after := z.ToModel(anchor)
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)
}

func TestViewZoomClamps(t *testing.T) {
	v := View{Scale: 1}
	assert.Equal(t, float64(maxScale), v.Zoom(1000, shape.Point{}).Scale)
	assert.Equal(t, float64(minScale), v.Zoom(0.0001, shape.Point{}).Scale)
}

func TestViewRect(t *testing.T) {
	v := View{Offset: shape.Pt(5, 5), Scale: 2}
	assert.Equal(t, image.Rect(5, 5, 25, 15), v.Rect(10, 5))
	assert.Equal(t, image.Rect(8, 9, 18, 13), v.Translate(shape.Pt(3, 4)).Rect(5, 2))
}
