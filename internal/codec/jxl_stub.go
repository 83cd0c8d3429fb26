//go:build nojxl

package codec

// Built with -tags nojxl: no JPEG-XL backend registers itself, so the
// registry installs an unavailable stand-in for format.JXL.
