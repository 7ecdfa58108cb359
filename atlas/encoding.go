package atlas

import (
	"errors"
	"fmt"
)

var ErrUnknownEncoding = errors.New("unknown atlas encoding")

// Encoding selects how glyph pixels are stored in the atlas image.
type Encoding int

const (
	// one bit per pixel, ink = 1
	Binary1Bit Encoding = iota
	// 8 bit gray, ink = 255
	Binary8Bit
	// luminance is 1 over every populated cell, alpha carries the ink
	LuminanceAlpha
)

var encodingNames = map[Encoding]string{
	Binary1Bit:     "binary-1bit",
	Binary8Bit:     "binary-8bit",
	LuminanceAlpha: "luminance-alpha",
}

// EncodingNames lists the names accepted by ParseEncoding.
var EncodingNames = []string{"binary-1bit", "binary-8bit", "luminance-alpha"}

func ParseEncoding(name string) (Encoding, error) {
	for enc, n := range encodingNames {
		if n == name {
			return enc, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// WidthFlags reports whether index lines carry the ",0|1" full width column.
func (e Encoding) WidthFlags() bool {
	return e == LuminanceAlpha
}

func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
