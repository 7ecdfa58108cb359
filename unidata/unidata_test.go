package unidata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneralCategory(t *testing.T) {
	cases := []struct {
		r        rune
		category string
	}{
		{'A', "Lu"},
		{'a', "Ll"},
		{'0', "Nd"},
		{' ', "Zs"},
		{0x0007, "Cc"},
		{0x0378, "Cn"}, // hole in the Greek block
		{0x4e00, "Lo"},
		{0x2500, "So"},
		{0xe000, "Co"},
		{0xd800, "Cs"},
	}
	for _, c := range cases {
		category, err := GeneralCategory(c.r)
		require.NoError(t, err)
		assert.Equal(t, c.category, category, "%U", c.r)
	}
}

func TestOutOfRange(t *testing.T) {
	_, err := GeneralCategory(0x110000)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = IsExtendedPictographic(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = BlockName(0x7fffffff)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = ExcludeUnassigned(0x110000)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestIsExtendedPictographic(t *testing.T) {
	for _, r := range []rune{0x00a9, 0x00ae, 0x2614, 0x2b50, 0x1f600, 0x1f680, 0x1fc00} {
		ok, err := IsExtendedPictographic(r)
		require.NoError(t, err)
		assert.True(t, ok, "%U", r)
	}
	for _, r := range []rune{'A', 0x00aa, 0x2500, 0x2606, 0x4e00, 0x1f1e6} {
		ok, err := IsExtendedPictographic(r)
		require.NoError(t, err)
		assert.False(t, ok, "%U", r)
	}
}

func TestBlockName(t *testing.T) {
	cases := map[rune]string{
		'A':     "Basic Latin",
		0x00e9:  "Latin-1 Supplement",
		0x2500:  "Box Drawing",
		0x257f:  "Box Drawing",
		0x2580:  "Block Elements",
		0xffff:  "Specials",
		0x1f600: "Emoticons",
		0x10000: NO_BLOCK,
	}
	for r, name := range cases {
		got, err := BlockName(r)
		require.NoError(t, err)
		assert.Equal(t, name, got, "%U", r)
	}
}

func TestBlocksSorted(t *testing.T) {
	for i := 1; i < len(blocks); i++ {
		assert.Less(t, blocks[i-1].Hi, blocks[i].Lo, blocks[i].Name)
		assert.LessOrEqual(t, blocks[i].Lo, blocks[i].Hi, blocks[i].Name)
	}
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		name     string
		r        rune
		expected bool
	}{
		{EXCLUDE_UNASSIGNED, 'A', true},
		{EXCLUDE_UNASSIGNED, 0x4e00, true},
		{EXCLUDE_UNASSIGNED, 0x0378, false},
		{EXCLUDE_UNASSIGNED, 0xe000, false},

		{PICTOGRAPHIC_PLUS_ASCII, 0x0000, true},
		{PICTOGRAPHIC_PLUS_ASCII, 0x007f, true},
		{PICTOGRAPHIC_PLUS_ASCII, 0x0080, false},
		{PICTOGRAPHIC_PLUS_ASCII, 0x2603, true},
		{PICTOGRAPHIC_PLUS_ASCII, 0x2550, false},

		{PICTOGRAPHIC_PLUS_DRAWING, 'z', true},
		{PICTOGRAPHIC_PLUS_DRAWING, 0x2603, true},
		{PICTOGRAPHIC_PLUS_DRAWING, 0x2550, true},
		{PICTOGRAPHIC_PLUS_DRAWING, 0x2588, false},
		{PICTOGRAPHIC_PLUS_DRAWING, 0x00e9, false},
	}
	for _, c := range cases {
		include, err := PredicateByName(c.name)
		require.NoError(t, err)
		ok, err := include(c.r)
		require.NoError(t, err)
		assert.Equal(t, c.expected, ok, "%s %U", c.name, c.r)
	}
}

func TestPredicateByNameUnknown(t *testing.T) {
	_, err := PredicateByName("everything")
	assert.ErrorIs(t, err, ErrUnknownPredicate)
}
