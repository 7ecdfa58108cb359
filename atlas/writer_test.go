package atlas

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	IHDR_BIT_DEPTH  = 24
	IHDR_COLOR_TYPE = 25
)

func TestWriteIndex(t *testing.T) {
	l := Plan(testSet(t, fullKanji, halfB, halfA))

	var plain bytes.Buffer
	require.NoError(t, WriteIndex(&plain, l, false))
	assert.Equal(t, "65\n66\n19968\n", plain.String())

	var flagged bytes.Buffer
	require.NoError(t, WriteIndex(&flagged, l, true))
	assert.Equal(t, "65,0\n66,0\n19968,1\n", flagged.String())
}

func TestWriteIndexEmpty(t *testing.T) {
	l := Plan(testSet(t))
	var buf bytes.Buffer
	require.NoError(t, WriteIndex(&buf, l, true))
	assert.Empty(t, buf.Bytes())
}

func TestReadIndex(t *testing.T) {
	idx, err := ReadIndex(strings.NewReader("65,0\n\n19968,1\n"))
	require.NoError(t, err)
	assert.True(t, idx.WidthFlags)
	assert.Equal(t, []IndexRecord{{'A', false}, {0x4E00, true}}, idx.Records)

	slot, ok := idx.Slot(0x4E00)
	assert.True(t, ok)
	assert.Equal(t, 1, slot)
	_, ok = idx.Slot('B')
	assert.False(t, ok)

	idx, err = ReadIndex(strings.NewReader("65\n66\n"))
	require.NoError(t, err)
	assert.False(t, idx.WidthFlags)
	assert.True(t, idx.Records[0].FullWidth)
}

func TestReadIndexErrors(t *testing.T) {
	for _, input := range []string{
		"A\n",
		"65,2\n",
		"65,0,1\n",
		"-1\n",
		"65\n65\n",
	} {
		_, err := ReadIndex(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrBadIndex, "input %q", input)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	l := Plan(testSet(t, halfA, halfB, fullKanji))
	var buf bytes.Buffer
	require.NoError(t, WriteIndex(&buf, l, true))

	idx, err := ReadIndex(&buf)
	require.NoError(t, err)
	require.Equal(t, l.Len(), idx.Len())
	for i, rec := range idx.Records {
		assert.Equal(t, l.Codepoints[i], rec.Codepoint)
		assert.Equal(t, l.FullWidth[i], rec.FullWidth)
	}
}

func TestWriteImageHeader(t *testing.T) {
	cases := []struct {
		enc       Encoding
		depth     byte
		colorType byte
	}{
		{Binary1Bit, 1, 3},
		{Binary8Bit, 8, 0},
		{LuminanceAlpha, 2, 3},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		require.NoError(t, WriteImage(&buf, testSheet(t, c.enc)))
		data := buf.Bytes()
		require.Greater(t, len(data), IHDR_COLOR_TYPE)
		assert.Equal(t, "IHDR", string(data[12:16]))
		assert.Equal(t, c.depth, data[IHDR_BIT_DEPTH], c.enc.String())
		assert.Equal(t, c.colorType, data[IHDR_COLOR_TYPE], c.enc.String())
	}
}

func decodeSheet(t *testing.T, s *Sheet) image.Image {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteImage(&buf, s))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, s.SheetWidth, s.SheetHeight), img.Bounds())
	return img
}

func TestWriteImageDecodes(t *testing.T) {
	for _, enc := range []Encoding{Binary1Bit, Binary8Bit} {
		s := testSheet(t, enc)
		img := decodeSheet(t, s)
		for y := 0; y < 2*CELL_SIZE; y++ {
			for x := 0; x < 4*CELL_SIZE; x++ {
				gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
				if s.Ink(x, y) {
					assert.Equal(t, uint8(0xff), gray.Y)
				} else {
					assert.Equal(t, uint8(0), gray.Y)
				}
			}
		}
	}

	s := testSheet(t, LuminanceAlpha)
	img := decodeSheet(t, s)
	for y := 0; y < 2*CELL_SIZE; y++ {
		for x := 0; x < 4*CELL_SIZE; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if s.Ink(x, y) {
				assert.Equal(t, uint8(0xff), c.A)
			} else {
				assert.Equal(t, uint8(0), c.A)
			}
		}
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "chars.png")
	indexPath := filepath.Join(dir, "chars.txt")

	out, err := Generate(strings.NewReader(halfA+"\n"+fullKanji+"\n"), Config{
		Predicate: "unassigned-exclude",
		Encoding:  LuminanceAlpha,
	})
	require.NoError(t, err)
	require.NoError(t, out.WriteFiles(imagePath, indexPath))

	index, err := os.ReadFile(indexPath)
	require.NoError(t, err)
	assert.Equal(t, "65,0\n19968,1\n", string(index))

	f, err := os.Open(imagePath)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Width)
	assert.Equal(t, 256, cfg.Height)
}

func TestWriteFilesWithoutIndex(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "chars.png")

	out, err := Generate(strings.NewReader(halfA), Config{Predicate: "unassigned-exclude"})
	require.NoError(t, err)
	require.NoError(t, out.WriteFiles(imagePath, ""))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
