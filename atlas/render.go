package atlas

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Renderer draws tinted text from an atlas face.
type Renderer struct {
	Face *Face
}

type placedGlyph struct {
	r    rune
	x, y int // top-left of the cell, relative to the text origin
}

// place lays text out line by line. With wrap > 0 a glyph that would cross
// wrap cells of width starts a new line. Runes missing from the atlas are
// skipped.
func (rd *Renderer) place(text string, wrap int) []placedGlyph {
	var out []placedGlyph
	offsetX, offsetY := 0, 0
	for _, r := range text {
		if r == '\n' {
			offsetX = 0
			offsetY += CELL_SIZE
			continue
		}
		advance, ok := rd.Face.GlyphAdvance(r)
		if !ok {
			continue
		}
		width := advance.Round()
		if wrap > 0 && offsetX > 0 && offsetX+width > wrap*CELL_SIZE {
			offsetX = 0
			offsetY += CELL_SIZE
		}
		out = append(out, placedGlyph{r: r, x: offsetX, y: offsetY})
		offsetX += width
	}
	return out
}

// Measure returns the pixel size text occupies when drawn with wrap.
func (rd *Renderer) Measure(text string, wrap int) image.Point {
	if wrap == 0 {
		return rd.measureLines(text)
	}
	var size image.Point
	for _, g := range rd.place(text, wrap) {
		advance, _ := rd.Face.GlyphAdvance(g.r)
		if right := g.x + advance.Round(); right > size.X {
			size.X = right
		}
		if bottom := g.y + CELL_SIZE; bottom > size.Y {
			size.Y = bottom
		}
	}
	return size
}

func (rd *Renderer) measureLines(text string) image.Point {
	var size image.Point
	start := 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != '\n' {
			continue
		}
		if w := font.MeasureString(rd.Face, text[start:i]).Ceil(); w > size.X {
			size.X = w
		}
		size.Y += CELL_SIZE
		start = i + 1
	}
	return size
}

// Draw paints text onto dst with its top-left corner at pt, using c for the
// ink. Only covered pixels are touched.
func (rd *Renderer) Draw(dst draw.Image, text string, pt image.Point, c color.Color, wrap int) {
	src := image.NewUniform(c)
	for _, g := range rd.place(text, wrap) {
		dot := fixed.P(pt.X+g.x, pt.Y+g.y+ASCENT)
		dr, mask, maskp, _, ok := rd.Face.Glyph(dot, g.r)
		if !ok {
			continue
		}
		draw.DrawMask(dst, dr, src, image.Point{}, mask, maskp, draw.Over)
	}
}
