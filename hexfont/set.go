package hexfont

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/bits-and-blooms/bitset"
)

// ParseError identifies the input line that stopped a Load.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Stats counts what Load saw. Lines excludes blank lines.
type Stats struct {
	Lines    int
	Accepted int
	Rejected int
}

// GlyphSet holds the accepted glyphs keyed by codepoint. It is not modified
// after Load returns.
type GlyphSet struct {
	glyphs     map[rune]Glyph
	codepoints []rune // ascending
	Stats      Stats
}

// Load reads a .hex font and keeps every glyph include accepts. Any malformed
// or duplicated line fails the whole load.
func Load(r io.Reader, include func(r rune) (bool, error)) (*GlyphSet, error) {
	set := &GlyphSet{glyphs: make(map[rune]Glyph)}
	seen := bitset.New(unicode.MaxRune + 1)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		set.Stats.Lines++

		g, err := ParseLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNum, Text: line, Err: err}
		}
		if seen.Test(uint(g.Codepoint)) {
			return nil, &ParseError{Line: lineNum, Text: line, Err: ErrDuplicateCodepoint}
		}
		seen.Set(uint(g.Codepoint))

		ok, err := include(g.Codepoint)
		if err != nil {
			return nil, &ParseError{Line: lineNum, Text: line, Err: err}
		}
		if !ok {
			set.Stats.Rejected++
			continue
		}
		set.glyphs[g.Codepoint] = g
		set.codepoints = append(set.codepoints, g.Codepoint)
		set.Stats.Accepted++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Slice(set.codepoints, func(i, j int) bool {
		return set.codepoints[i] < set.codepoints[j]
	})
	return set, nil
}

// NewGlyphSet builds a set from already parsed glyphs, later duplicates are
// rejected the same way Load rejects them.
func NewGlyphSet(glyphs ...Glyph) (*GlyphSet, error) {
	set := &GlyphSet{glyphs: make(map[rune]Glyph, len(glyphs))}
	for _, g := range glyphs {
		if _, ok := set.glyphs[g.Codepoint]; ok {
			return nil, fmt.Errorf("%w: %U", ErrDuplicateCodepoint, g.Codepoint)
		}
		set.glyphs[g.Codepoint] = g
		set.codepoints = append(set.codepoints, g.Codepoint)
	}
	sort.Slice(set.codepoints, func(i, j int) bool {
		return set.codepoints[i] < set.codepoints[j]
	})
	set.Stats = Stats{Lines: len(glyphs), Accepted: len(glyphs)}
	return set, nil
}

func (s *GlyphSet) Len() int {
	return len(s.codepoints)
}

// Codepoints returns the accepted codepoints in ascending order.
func (s *GlyphSet) Codepoints() []rune {
	out := make([]rune, len(s.codepoints))
	copy(out, s.codepoints)
	return out
}

func (s *GlyphSet) Glyph(r rune) (Glyph, bool) {
	g, ok := s.glyphs[r]
	return g, ok
}
