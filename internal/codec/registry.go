package codec

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/example/inkshot/internal/format"
)

// Features selects which backends a registry enables. A disabled backend
// behaves exactly like one that was not compiled in.
type Features struct {
	PNG  bool
	JPEG bool
	JXL  bool
}

// AllFeatures enables every backend.
func AllFeatures() Features {
	return Features{PNG: true, JPEG: true, JXL: true}
}

func (f Features) enabled(ft format.Format) bool {
	switch ft {
	case format.PNG:
		return f.PNG
	case format.JPEG:
		return f.JPEG
	case format.JXL:
		return f.JXL
	}
	return false
}

// compiled maps each format to the constructor of its linked-in backend.
// Optional backends add themselves from init functions behind build tags.
var compiled = map[format.Format]func(*logrus.Entry) Backend{
	format.PNG:  func(l *logrus.Entry) Backend { return pngBackend{log: l} },
	format.JPEG: func(l *logrus.Entry) Backend { return jpegBackend{log: l} },
}

// Compiled lists the formats whose backends are linked into this binary.
func Compiled() []format.Format {
	out := make([]format.Format, 0, len(compiled))
	for f := range compiled {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Registry owns the active backends and dispatches decode and encode calls.
type Registry struct {
	backends map[format.Format]Backend
	log      *logrus.Entry
}

// NewRegistry enables the compiled-in backends selected by features.
func NewRegistry(features Features, log *logrus.Entry) *Registry {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	r := &Registry{backends: map[format.Format]Backend{}, log: log}
	for _, f := range format.Encodable() {
		bl := log.WithField("component", f.String())
		ctor, ok := compiled[f]
		switch {
		case !ok:
			log.Debugf("%s backend not compiled in", f)
			r.backends[f] = unavailable{f: f, log: bl}
		case !features.enabled(f):
			log.Debugf("%s backend disabled by configuration", f)
			r.backends[f] = unavailable{f: f, log: bl}
		default:
			r.backends[f] = ctor(bl)
		}
	}
	return r
}

// CheckFormatSupport reports whether f has a live backend.
func (r *Registry) CheckFormatSupport(f format.Format) bool {
	b, ok := r.backends[f]
	if !ok {
		return false
	}
	_, off := b.(unavailable)
	return !off
}

// Supported lists the formats with a live backend in signature order.
func (r *Registry) Supported() []format.Format {
	var out []format.Format
	for _, f := range format.Encodable() {
		if r.CheckFormatSupport(f) {
			out = append(out, f)
		}
	}
	return out
}

// Backend returns the backend registered for f, live or not.
func (r *Registry) Backend(f format.Format) (Backend, bool) {
	b, ok := r.backends[f]
	return b, ok
}
