package pixbuf

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/inkshot/internal/format"
)

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(0, 4, format.RGBA)
	require.ErrorIs(t, err, ErrInvalid)
	_, err = New(4, -1, format.RGBA)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestWrapChecksLength(t *testing.T) {
	_, err := Wrap(make([]byte, 15), 2, 2, format.PNG)
	require.ErrorIs(t, err, ErrInvalid)

	img, err := Wrap(make([]byte, 16), 2, 2, format.PNG)
	require.NoError(t, err)
	assert.Equal(t, format.RGBA, img.Layout)
	assert.Equal(t, format.PNG, img.Origin)
	assert.Equal(t, 16, img.Len())
}

func TestFromImageExpandsToRGBA(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(0, 0, color.Gray{Y: 10})
	gray.SetGray(1, 0, color.Gray{Y: 200})

	img, err := FromImage(gray, format.PNG)
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 10, 10, 255, 200, 200, 200, 255}, img.Pix)
}

func TestFromImageCopiesNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.Pix = []byte{1, 2, 3, 4}
	img, err := FromImage(src, format.RGBA)
	require.NoError(t, err)
	src.Pix[0] = 99
	assert.Equal(t, []byte{1, 2, 3, 4}, img.Pix, "canonical image must not alias its source")
}

func TestFromImageHandlesOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.SetNRGBA(5, 5, color.NRGBA{1, 2, 3, 255})
	src.SetNRGBA(6, 5, color.NRGBA{4, 5, 6, 255})
	img, err := FromImage(src, format.RGBA)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Width)
	assert.Equal(t, []byte{1, 2, 3, 255, 4, 5, 6, 255}, img.Pix)
}

func TestFlipRows(t *testing.T) {
	pix := []byte{
		1, 1, 1, 1,
		2, 2, 2, 2,
		3, 3, 3, 3,
	}
	FlipRows(pix, 1, 3)
	assert.Equal(t, []byte{3, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1}, pix)
}

func TestOpaqueAndRelease(t *testing.T) {
	img, err := New(1, 2, format.RGBA)
	require.NoError(t, err)
	assert.False(t, img.Opaque())
	img.Pix[3], img.Pix[7] = 255, 255
	assert.True(t, img.Opaque())

	img.Release()
	require.ErrorIs(t, img.Validate(), ErrInvalid)
}
