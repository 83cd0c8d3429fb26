package codec

import (
	"bytes"
	"image"

	"github.com/gen2brain/jpegli"
	"github.com/sirupsen/logrus"

	"github.com/example/inkshot/internal/format"
	"github.com/example/inkshot/internal/pixbuf"
)

// JPEGQuality is fixed; it is not exposed as an option.
const JPEGQuality = 50

// JPEGSubsampling is the chroma layout of every encoded JPEG.
const JPEGSubsampling = image.YCbCrSubsampleRatio444

type jpegBackend struct {
	log *logrus.Entry
}

func (jpegBackend) Format() format.Format { return format.JPEG }

func (b jpegBackend) Decode(data []byte) (*pixbuf.Image, error) {
	src, err := jpegli.Decode(bytes.NewReader(data))
	if err != nil {
		b.log.WithError(err).Error("failed to decode JPEG stream")
		return nil, backendError(format.JPEG, "decode", err)
	}
	return pixbuf.FromImage(src, format.JPEG)
}

// Encode discards alpha: color channels are kept as stored and every pixel is
// written opaque.
func (b jpegBackend) Encode(img *pixbuf.Image) ([]byte, error) {
	rgb := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	copy(rgb.Pix, img.Pix)
	for i := 3; i < len(rgb.Pix); i += pixbuf.BytesPerPixel {
		rgb.Pix[i] = 0xFF
	}
	var buf bytes.Buffer
	opts := &jpegli.EncodingOptions{
		Quality:           JPEGQuality,
		ChromaSubsampling: JPEGSubsampling,
	}
	if err := jpegli.Encode(&buf, rgb, opts); err != nil {
		b.log.WithError(err).Error("failed to encode JPEG stream")
		return nil, backendError(format.JPEG, "encode", err)
	}
	return buf.Bytes(), nil
}
