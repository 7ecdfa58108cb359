package hexfont

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	GLYPH_ROWS     = 16
	FULL_WIDTH_HEX = 64 // 16 rows * 4 hex digits
	HALF_WIDTH_HEX = 32 // 16 rows * 2 hex digits
	LINE_SEPARATOR = ":"
)

const (
	codepointBase = 16
	codepointBits = 32
)

var (
	ErrMissingSeparator   = errors.New("missing ':' separator")
	ErrBadCodepoint       = errors.New("invalid codepoint")
	ErrBadBitmap          = errors.New("bitmap is not hexadecimal")
	ErrBitmapLength       = errors.New("bitmap must be 32 or 64 hex digits")
	ErrDuplicateCodepoint = errors.New("duplicate codepoint")
)

// Glyph is one line of a unifont .hex file.
type Glyph struct {
	Codepoint rune
	Hex       string
	FullWidth bool // 64 hex digits (16x16), otherwise 32 (8x16)
}

// ParseLine parses "<hexCodepoint>:<hexBitmap>". Surrounding whitespace is
// ignored.
func ParseLine(line string) (Glyph, error) {
	line = strings.TrimSpace(line)
	code, value, found := cut(line, LINE_SEPARATOR)
	if !found {
		return Glyph{}, ErrMissingSeparator
	}

	n, err := strconv.ParseUint(code, codepointBase, codepointBits)
	if err != nil {
		return Glyph{}, fmt.Errorf("%w: %q", ErrBadCodepoint, code)
	}
	if n > unicode.MaxRune {
		return Glyph{}, fmt.Errorf("%w: %q is past U+10FFFF", ErrBadCodepoint, code)
	}

	if len(value) != FULL_WIDTH_HEX && len(value) != HALF_WIDTH_HEX {
		return Glyph{}, fmt.Errorf("%w: got %d", ErrBitmapLength, len(value))
	}
	if _, err := hex.DecodeString(value); err != nil {
		return Glyph{}, fmt.Errorf("%w: %v", ErrBadBitmap, err)
	}

	return Glyph{
		Codepoint: rune(n),
		Hex:       value,
		FullWidth: len(value) == FULL_WIDTH_HEX,
	}, nil
}

// String formats the glyph back into its .hex line form.
func (g Glyph) String() string {
	return fmt.Sprintf("%04X%s%s", g.Codepoint, LINE_SEPARATOR, g.Hex)
}

// strings.Cut is go1.18
func cut(s, sep string) (before, after string, found bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}
