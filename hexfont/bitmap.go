package hexfont

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// Bitmap is a 16x16 glyph cell, one uint16 per row. Column 0 is the most
// significant bit.
type Bitmap [GLYPH_ROWS]uint16

// halfWidthShift centers an 8 pixel row in columns 4..11.
const halfWidthShift = 4

// Bitmap unpacks the glyph's hex string into a 16x16 cell. Half width rows
// are centered with 4 blank columns on each side.
func (g Glyph) Bitmap() (Bitmap, error) {
	var b Bitmap
	raw, err := hex.DecodeString(g.Hex)
	if err != nil {
		return b, fmt.Errorf("%w: %v", ErrBadBitmap, err)
	}

	switch len(raw) {
	case FULL_WIDTH_HEX / 2:
		for y := range b {
			b[y] = uint16(raw[2*y])<<8 | uint16(raw[2*y+1])
		}
	case HALF_WIDTH_HEX / 2:
		for y := range b {
			b[y] = uint16(raw[y]) << halfWidthShift
		}
	default:
		return b, fmt.Errorf("%w: got %d", ErrBitmapLength, len(g.Hex))
	}
	return b, nil
}

// At reports whether the pixel at column x, row y is set.
func (b Bitmap) At(x, y int) bool {
	return b[y]>>(15-x)&1 == 1
}

// Pack converts the cell back to unifont hex. Half width packing keeps
// columns 4..11 only.
func (b Bitmap) Pack(fullWidth bool) (string, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, row := range b {
		var err error
		if fullWidth {
			err = w.WriteBits(uint64(row), 16)
		} else {
			err = w.WriteBits(uint64(row>>halfWidthShift)&0xff, 8)
		}
		if err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf.Bytes())), nil
}

// String draws the cell with one character per pixel, handy in test failures.
func (b Bitmap) String() string {
	var sb strings.Builder
	for y := range b {
		for x := 0; x < 16; x++ {
			if b.At(x, y) {
				sb.WriteString("█")
			} else {
				sb.WriteString(".")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
