// Package format identifies raster image formats by their magic bytes.
package format

import (
	"bytes"
	"fmt"
	"strings"
)

// Format identifies an image wire format.
type Format int

const (
	// Invalid is returned when data or a name matches no known format.
	Invalid Format = iota
	PNG
	JPEG
	JXL
	// RGBA is the raw, tightly packed 4 bytes/pixel layout of canonical images.
	// It has no signature and no codec backend.
	RGBA
)

// OctetStream is the MIME type reported for formats without a registered type.
const OctetStream = "application/octet-stream; charset=binary"

type entry struct {
	format Format
	name   string
	mime   string
	magic  []byte
}

// signatures is scanned in order; the first prefix match wins.
var signatures = []entry{
	{PNG, "PNG", "image/png", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	{JPEG, "JPEG", "image/jpeg", []byte{0xFF, 0xD8, 0xFF}},
	{JXL, "JXL", "image/jxl", []byte{0xFF, 0x0A}},
}

var aliases = map[string]Format{
	"png":     PNG,
	"jpg":     JPEG,
	"jpeg":    JPEG,
	"jxl":     JXL,
	"jpegxl":  JXL,
	"jpeg-xl": JXL,
	"rgba":    RGBA,
	"raw":     RGBA,
}

// Match returns the first format whose signature prefixes data, or Invalid.
// It never inspects more than the longest signature's worth of bytes.
func Match(data []byte) Format {
	for _, e := range signatures {
		if len(e.magic) > len(data) {
			continue
		}
		if bytes.Equal(data[:len(e.magic)], e.magic) {
			return e.format
		}
	}
	return Invalid
}

// FromString maps a case-insensitive format name or alias to a Format.
func FromString(name string) Format {
	if f, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f
	}
	return Invalid
}

// String returns the canonical upper-case name of f.
func (f Format) String() string {
	switch f {
	case Invalid:
		return "INVALID"
	case RGBA:
		return "RGBA"
	}
	for _, e := range signatures {
		if e.format == f {
			return e.name
		}
	}
	return "?????"
}

// MIME returns the media type of f, or OctetStream for formats without one.
func (f Format) MIME() string {
	for _, e := range signatures {
		if e.format == f {
			return e.mime
		}
	}
	return OctetStream
}

// Extension returns the usual file extension for f including the dot.
func (f Format) Extension() string {
	switch f {
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case JXL:
		return ".jxl"
	case RGBA:
		return ".rgba"
	default:
		return ""
	}
}

// Encodable lists the formats that have a signature and may own a codec backend.
func Encodable() []Format {
	out := make([]Format, 0, len(signatures))
	for _, e := range signatures {
		out = append(out, e.format)
	}
	return out
}

// MaxSignatureLen is the number of leading bytes Match may inspect.
func MaxSignatureLen() int {
	n := 0
	for _, e := range signatures {
		if len(e.magic) > n {
			n = len(e.magic)
		}
	}
	return n
}

// CheckSignatures reports signature pairs where one is a prefix of the other.
// Match is first-match-wins, so any such pair makes detection order dependent.
func CheckSignatures() error {
	return checkSignatures(signatures)
}

func checkSignatures(table []entry) error {
	var conflicts []string
	for i, a := range table {
		for _, b := range table[i+1:] {
			if bytes.HasPrefix(a.magic, b.magic) || bytes.HasPrefix(b.magic, a.magic) {
				conflicts = append(conflicts, fmt.Sprintf("%s/%s", a.name, b.name))
			}
		}
	}
	if len(conflicts) > 0 {
		return fmt.Errorf("ambiguous format signatures: %s", strings.Join(conflicts, ", "))
	}
	return nil
}
