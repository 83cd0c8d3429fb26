package codec

import (
	"bytes"
	"image"
	"image/png"

	"github.com/sirupsen/logrus"

	"github.com/example/inkshot/internal/format"
	"github.com/example/inkshot/internal/pixbuf"
)

type pngBackend struct {
	log *logrus.Entry
}

func (pngBackend) Format() format.Format { return format.PNG }

func (b pngBackend) Decode(data []byte) (*pixbuf.Image, error) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		b.log.WithError(err).Error("failed to decode PNG stream")
		return nil, backendError(format.PNG, "decode", err)
	}
	return pixbuf.FromImage(src, format.PNG)
}

// Encode writes RGBA truecolor when any pixel is translucent, and RGB
// otherwise, which keeps opaque screenshots small.
func (b pngBackend) Encode(img *pixbuf.Image) ([]byte, error) {
	var src image.Image = img.View()
	if img.Opaque() {
		src = opaqueRGBA(img)
	}
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&buf, src); err != nil {
		b.log.WithError(err).Error("failed to encode PNG stream")
		return nil, backendError(format.PNG, "encode", err)
	}
	return buf.Bytes(), nil
}

// opaqueRGBA shares img's pixels as an *image.RGBA. Only valid when every
// alpha is 255, where premultiplied and straight alpha coincide; the encoder
// then emits an RGB color type.
func opaqueRGBA(img *pixbuf.Image) *image.RGBA {
	v := img.View()
	return &image.RGBA{Pix: v.Pix, Stride: v.Stride, Rect: v.Rect}
}
