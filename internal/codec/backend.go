// Package codec converts between wire-format image bytes and canonical images.
//
// Each format is served by a Backend. Backends are stateless: every call
// allocates its own decoder or encoder, so concurrent calls never share a
// context object.
package codec

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/inkshot/internal/format"
	"github.com/example/inkshot/internal/pixbuf"
)

var (
	// ErrUnrecognized means the input matched no known signature.
	ErrUnrecognized = errors.New("image format not recognized")
	// ErrUnsupported means the format is known but its backend is absent or disabled.
	ErrUnsupported = errors.New("format not supported")
	// ErrBackend wraps a failure reported by a backend's decoder or encoder.
	ErrBackend = errors.New("codec backend failure")
)

// Backend decodes and encodes a single format.
type Backend interface {
	Format() format.Format
	// Decode expects data already matched to Format. The returned image is
	// freshly allocated and owned by the caller.
	Decode(data []byte) (*pixbuf.Image, error)
	// Encode reads img without retaining it and returns freshly allocated bytes.
	Encode(img *pixbuf.Image) ([]byte, error)
}

// unavailable stands in for a backend that was compiled out or disabled.
type unavailable struct {
	f   format.Format
	log *logrus.Entry
}

func (u unavailable) Format() format.Format { return u.f }

func (u unavailable) Decode([]byte) (*pixbuf.Image, error) {
	u.log.Errorf("cannot decode %s: backend not available", u.f)
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, u.f)
}

func (u unavailable) Encode(*pixbuf.Image) ([]byte, error) {
	u.log.Errorf("cannot encode %s: backend not available", u.f)
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, u.f)
}

func backendError(f format.Format, op string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrBackend, f, op, err)
}
