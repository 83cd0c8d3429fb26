//go:build !nojxl

package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/kpfaulkner/jxl-go/core"
	"github.com/sirupsen/logrus"

	"github.com/example/inkshot/internal/format"
	"github.com/example/inkshot/internal/pixbuf"
)

func init() {
	compiled[format.JXL] = func(l *logrus.Entry) Backend { return jxlBackend{log: l} }
}

var errJXLEncode = errors.New("JPEG-XL encoding is not implemented")

type jxlBackend struct {
	log *logrus.Entry
}

func (jxlBackend) Format() format.Format { return format.JXL }

func (b jxlBackend) Decode(data []byte) (img *pixbuf.Image, err error) {
	defer func() {
		// jxl-go panics on some truncated bitstreams.
		if r := recover(); r != nil {
			err = backendError(format.JXL, "decode", fmt.Errorf("decoder panic: %v", r))
			b.log.WithError(err).Error("failed to decode JPEG-XL stream")
			img = nil
		}
	}()
	dec := core.NewJXLDecoder(bytes.NewReader(data), nil)
	jimg, err := dec.Decode()
	if err != nil {
		b.log.WithError(err).Error("failed to decode JPEG-XL stream")
		return nil, backendError(format.JXL, "decode", err)
	}
	src, err := jimg.ToImage()
	if err != nil {
		b.log.WithError(err).Error("failed to convert JPEG-XL frame")
		return nil, backendError(format.JXL, "decode", err)
	}
	return pixbuf.FromImage(src, format.JXL)
}

func (b jxlBackend) Encode(*pixbuf.Image) ([]byte, error) {
	b.log.Error(errJXLEncode.Error())
	return nil, backendError(format.JXL, "encode", errJXLEncode)
}
