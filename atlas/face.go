package atlas

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var ErrBadAtlas = errors.New("atlas image does not match its index")

// Face reads glyphs back out of a finished atlas. It implements font.Face so
// it can be used with font.Drawer.
type Face struct {
	index   *Index
	mask    *image.Alpha
	columns int

	// compact draws half width glyphs 8 pixels wide instead of in their
	// full 16 pixel cell
	compact bool
}

var _ font.Face = (*Face)(nil)

// NewFace pairs an atlas image with its index. The coverage mask is taken
// from pixels that are both opaque and bright, which covers all three
// encodings.
func NewFace(img image.Image, idx *Index, compact bool) (*Face, error) {
	b := img.Bounds()
	if b.Dx()%CELL_SIZE != 0 || b.Dy()%CELL_SIZE != 0 || b.Dx() == 0 {
		return nil, fmt.Errorf("%w: %dx%d is not a whole number of %d px cells", ErrBadAtlas, b.Dx(), b.Dy(), CELL_SIZE)
	}
	columns := b.Dx() / CELL_SIZE
	if capacity := columns * (b.Dy() / CELL_SIZE); idx.Len() > capacity {
		return nil, fmt.Errorf("%w: %d index records, %d cells", ErrBadAtlas, idx.Len(), capacity)
	}

	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if isInk(img.At(b.Min.X+x, b.Min.Y+y)) {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}

	return &Face{
		index:   idx,
		mask:    mask,
		columns: columns,
		compact: compact,
	}, nil
}

func isInk(c color.Color) bool {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A < 0x80 {
		return false
	}
	gray := (299*uint32(n.R) + 587*uint32(n.G) + 114*uint32(n.B)) / 1000
	return gray >= 0x80
}

// cell returns the mask rectangle a glyph is drawn from.
func (f *Face) cell(slot int) image.Rectangle {
	x := (slot % f.columns) * CELL_SIZE
	y := (slot / f.columns) * CELL_SIZE
	width := CELL_SIZE
	if f.compact && !f.index.Records[slot].FullWidth {
		x += HALF_WIDTH_OFFSET
		width = HALF_WIDTH
	}
	return image.Rect(x, y, x+width, y+CELL_SIZE)
}

func (f *Face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {

	slot, ok := f.index.Slot(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	src := f.cell(slot)
	x := dot.X.Round()
	y := dot.Y.Round() - ASCENT
	dr = image.Rect(x, y, x+src.Dx(), y+src.Dy())
	return dr, f.mask, src.Min, fixed.I(src.Dx()), true
}

func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	slot, ok := f.index.Slot(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	width := f.cell(slot).Dx()
	return fixed.R(0, -ASCENT, width, DESCENT), fixed.I(width), true
}

func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	slot, ok := f.index.Slot(r)
	if !ok {
		return 0, false
	}
	return fixed.I(f.cell(slot).Dx()), true
}

// Kern is always zero, the atlas is a monospace grid.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

func (f *Face) Metrics() font.Metrics {
	return font.Metrics{
		Height:  fixed.I(CELL_SIZE),
		Ascent:  fixed.I(ASCENT),
		Descent: fixed.I(DESCENT),
	}
}

func (f *Face) Close() error {
	return nil
}
