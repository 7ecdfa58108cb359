package atlas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unifontatlas/hexfont"
)

const (
	halfA     = "0041:0000000018242442427E424242420000"
	halfB     = "0042:000000007C4242427C424242427C0000"
	fullKanji = "4E00:0000000000000000000000000000FFFE00000000000000000000000000000000"
)

func testSet(t *testing.T, lines ...string) *hexfont.GlyphSet {
	t.Helper()
	var glyphs []hexfont.Glyph
	for _, line := range lines {
		g, err := hexfont.ParseLine(line)
		require.NoError(t, err)
		glyphs = append(glyphs, g)
	}
	set, err := hexfont.NewGlyphSet(glyphs...)
	require.NoError(t, err)
	return set
}

func TestGridWidth(t *testing.T) {
	cases := map[int]int{
		0:     16,
		1:     16,
		2:     16,
		256:   16,
		257:   32,
		300:   32,
		1024:  32,
		1025:  64,
		65536: 256,
		65537: 512,
	}
	for n, expected := range cases {
		assert.Equal(t, expected, GridWidth(n), "n = %d", n)
	}
}

func TestGridWidthIsSmallestPowerOfTwo(t *testing.T) {
	for n := 0; n < 20000; n += 7 {
		w := GridWidth(n)
		assert.GreaterOrEqual(t, w, MIN_GRID_WIDTH)
		assert.Zero(t, w&(w-1), "%d is not a power of two", w)
		assert.GreaterOrEqual(t, w*w, n)
		if w > MIN_GRID_WIDTH {
			assert.Less(t, (w/2)*(w/2), n, "n = %d fits in a smaller grid", n)
		}
	}
}

func TestPlanTwoGlyphs(t *testing.T) {
	set := testSet(t, halfB, halfA)
	l := Plan(set)

	assert.Equal(t, 16, l.Width)
	assert.Equal(t, 256, l.PixelSize())
	assert.Equal(t, []rune{'A', 'B'}, l.Codepoints)
	assert.Equal(t, Slot{0, 0}, l.Slot(0))
	assert.Equal(t, Slot{1, 0}, l.Slot(1))
}

func TestPlanOrderAndBijection(t *testing.T) {
	var lines []string
	for r := rune(0x3000); r < 0x3000+300; r++ {
		g := hexfont.Glyph{Codepoint: r, Hex: strings.Repeat("0", hexfont.HALF_WIDTH_HEX)}
		lines = append(lines, g.String())
	}
	set := testSet(t, lines...)
	l := Plan(set)
	assert.Equal(t, 32, l.Width)

	seen := make(map[Slot]rune)
	for i, r := range l.Codepoints {
		if i > 0 {
			assert.Less(t, l.Codepoints[i-1], r)
		}
		slot := l.Slot(i)
		assert.Less(t, slot.X, l.Width)
		assert.Less(t, slot.Y, l.Width)
		_, dup := seen[slot]
		assert.False(t, dup, "slot %v used twice", slot)
		seen[slot] = r

		idx, ok := l.Index(r)
		assert.True(t, ok)
		assert.Equal(t, i, idx)
	}

	_, ok := l.Index(0x2FFF)
	assert.False(t, ok)
}

func TestPlanSummary(t *testing.T) {
	l := Plan(testSet(t, halfA, halfB, fullKanji))
	s := l.Summary()

	assert.Equal(t, 3, s.Glyphs)
	assert.Equal(t, 1, s.FullWidth)
	assert.Equal(t, 2, s.HalfWidth)
	assert.Equal(t, "U+0041", s.First)
	assert.Equal(t, "U+4E00", s.Last)
}

func TestEncodingNames(t *testing.T) {
	for _, name := range EncodingNames {
		enc, err := ParseEncoding(name)
		require.NoError(t, err)
		assert.Equal(t, name, enc.String())
	}

	_, err := ParseEncoding("rgba")
	assert.ErrorIs(t, err, ErrUnknownEncoding)

	assert.True(t, LuminanceAlpha.WidthFlags())
	assert.False(t, Binary1Bit.WidthFlags())
	assert.False(t, Binary8Bit.WidthFlags())
}
