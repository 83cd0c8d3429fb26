package codec

import (
	"fmt"

	"github.com/h2non/filetype"
	"github.com/sirupsen/logrus"

	"github.com/example/inkshot/internal/format"
	"github.com/example/inkshot/internal/pixbuf"
)

// DecodeImage sniffs the format of data by its magic bytes and decodes it with
// the matching backend. The result is always a canonical RGBA image.
func (r *Registry) DecodeImage(data []byte) (*pixbuf.Image, error) {
	log := r.log.WithField("component", "decoder")
	f := format.Match(data)
	if f == format.Invalid {
		head := data[:min(len(data), format.MaxSignatureLen())]
		entry := log.WithFields(logrus.Fields{"size": len(data), "head": fmt.Sprintf("% x", head)})
		if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
			entry = entry.WithField("detected", kind.MIME.Value)
		}
		entry.Error("image format not recognized")
		return nil, ErrUnrecognized
	}
	if !r.CheckFormatSupport(f) {
		log.Errorf("format %s is not supported", f)
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, f)
	}
	img, err := r.backends[f].Decode(data)
	if err != nil {
		return nil, err
	}
	if err := img.Validate(); err != nil {
		img.Release()
		return nil, backendError(f, "decode", err)
	}
	img.Layout = format.RGBA
	img.Origin = f
	log.WithField("format", f.String()).Infof("decoded image of size %dx%d", img.Width, img.Height)
	return img, nil
}

// EncodeImage encodes img into target. img is borrowed and left untouched.
func (r *Registry) EncodeImage(img *pixbuf.Image, target format.Format) ([]byte, error) {
	log := r.log.WithField("component", "encoder")
	if !r.CheckFormatSupport(target) {
		log.Errorf("format %s is not supported", target)
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, target)
	}
	if err := img.Validate(); err != nil {
		log.WithError(err).Error("refusing to encode")
		return nil, err
	}
	log.WithField("format", target.String()).Infof("encoding image of size %dx%d", img.Width, img.Height)
	return r.backends[target].Encode(img)
}
