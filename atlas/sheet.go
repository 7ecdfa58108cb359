package atlas

import (
	"fmt"
	"image"
	"image/color"

	"unifontatlas/hexfont"
)

// per pixel state, independent of the output encoding
const (
	pixBackground uint8 = iota // outside every populated cell
	pixCell                    // inside a populated cell, no ink
	pixInk
)

var (
	black = color.Gray{Y: 0}
	white = color.Gray{Y: 0xff}

	// luminance-alpha as palette entries: background, cell, ink
	luminanceAlphaPalette = color.Palette{
		color.NRGBA{0, 0, 0, 0},
		color.NRGBA{0xff, 0xff, 0xff, 0},
		color.NRGBA{0xff, 0xff, 0xff, 0xff},
	}
	binaryPalette = color.Palette{black, white}
)

// Sheet is the rasterized atlas.
type Sheet struct {
	Encoding     Encoding
	CellWidth    int
	CellHeight   int
	NumOfColumns int
	NumOfRows    int
	SheetWidth   int
	SheetHeight  int

	pix []uint8 // SheetWidth*SheetHeight pixel states, row-major
}

// Rasterize draws every glyph of set into its layout slot.
func Rasterize(set *hexfont.GlyphSet, layout *Layout, enc Encoding) (*Sheet, error) {
	if _, ok := encodingNames[enc]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, int(enc))
	}

	size := layout.PixelSize()
	s := &Sheet{
		Encoding:     enc,
		CellWidth:    CELL_SIZE,
		CellHeight:   CELL_SIZE,
		NumOfColumns: layout.Width,
		NumOfRows:    layout.Width,
		SheetWidth:   size,
		SheetHeight:  size,
		pix:          make([]uint8, size*size),
	}

	for i, r := range layout.Codepoints {
		g, ok := set.Glyph(r)
		if !ok {
			return nil, fmt.Errorf("codepoint %s is in the layout but not in the glyph set", formatCodepoint(r))
		}
		bitmap, err := g.Bitmap()
		if err != nil {
			return nil, fmt.Errorf("glyph %s: %w", formatCodepoint(r), err)
		}
		s.drawCell(layout.Slot(i), bitmap)
	}
	return s, nil
}

func (s *Sheet) drawCell(slot Slot, bitmap hexfont.Bitmap) {
	originX := slot.X * s.CellWidth
	originY := slot.Y * s.CellHeight
	for cy := 0; cy < s.CellHeight; cy++ {
		row := (originY+cy)*s.SheetWidth + originX
		for cx := 0; cx < s.CellWidth; cx++ {
			state := pixCell
			if bitmap.At(cx, cy) {
				state = pixInk
			}
			s.pix[row+cx] = state
		}
	}
}

// Ink reports whether the pixel at x, y carries glyph ink.
func (s *Sheet) Ink(x, y int) bool {
	return s.pix[y*s.SheetWidth+x] == pixInk
}

// Populated reports whether x, y lies inside a cell that holds a glyph.
func (s *Sheet) Populated(x, y int) bool {
	return s.pix[y*s.SheetWidth+x] != pixBackground
}

// Image converts the sheet into an image in the sheet's encoding:
// a 2 color paletted image (1 bit), an 8 bit gray image, or a 3 color
// paletted image whose entries carry luminance and alpha.
func (s *Sheet) Image() image.Image {
	rect := image.Rect(0, 0, s.SheetWidth, s.SheetHeight)
	switch s.Encoding {
	case Binary8Bit:
		img := image.NewGray(rect)
		for i, state := range s.pix {
			if state == pixInk {
				img.Pix[i] = white.Y
			}
		}
		return img
	case LuminanceAlpha:
		img := image.NewPaletted(rect, luminanceAlphaPalette)
		copy(img.Pix, s.pix)
		return img
	default:
		img := image.NewPaletted(rect, binaryPalette)
		for i, state := range s.pix {
			if state == pixInk {
				img.Pix[i] = 1
			}
		}
		return img
	}
}
