package atlas

import (
	"sort"

	"unifontatlas/hexfont"
)

// Slot is a cell position in the atlas grid, in cells.
type Slot struct {
	X, Y int
}

// Layout assigns the i-th codepoint (ascending order) to slot i of a square
// grid Width cells wide. It is never changed after Plan.
type Layout struct {
	Width      int
	Codepoints []rune
	FullWidth  []bool
}

// GridWidth returns the smallest power of two, at least MIN_GRID_WIDTH, whose
// square holds n cells.
func GridWidth(n int) int {
	width := MIN_GRID_WIDTH
	for width*width < n {
		width *= 2
	}
	return width
}

// Plan lays out every glyph of set in ascending codepoint order.
func Plan(set *hexfont.GlyphSet) *Layout {
	codepoints := set.Codepoints()
	l := &Layout{
		Width:      GridWidth(len(codepoints)),
		Codepoints: codepoints,
		FullWidth:  make([]bool, len(codepoints)),
	}
	for i, r := range codepoints {
		g, _ := set.Glyph(r)
		l.FullWidth[i] = g.FullWidth
	}

	if Debug {
		pprint(l.Summary())
	}
	return l
}

func (l *Layout) Len() int {
	return len(l.Codepoints)
}

// Slot returns the grid cell for slot index i.
func (l *Layout) Slot(i int) Slot {
	return Slot{X: i % l.Width, Y: i / l.Width}
}

// Index returns the slot index of r.
func (l *Layout) Index(r rune) (int, bool) {
	i := sort.Search(len(l.Codepoints), func(i int) bool { return l.Codepoints[i] >= r })
	if i < len(l.Codepoints) && l.Codepoints[i] == r {
		return i, true
	}
	return 0, false
}

// PixelSize is the side of the atlas image in pixels.
func (l *Layout) PixelSize() int {
	return l.Width * CELL_SIZE
}

type LayoutSummary struct {
	Glyphs    int
	GridWidth int
	Pixels    int
	FullWidth int
	HalfWidth int
	First     string `json:",omitempty"`
	Last      string `json:",omitempty"`
}

// Summary is what gets dumped in debug mode.
func (l *Layout) Summary() LayoutSummary {
	s := LayoutSummary{
		Glyphs:    l.Len(),
		GridWidth: l.Width,
		Pixels:    l.PixelSize(),
	}
	for _, full := range l.FullWidth {
		if full {
			s.FullWidth++
		} else {
			s.HalfWidth++
		}
	}
	if l.Len() > 0 {
		s.First = formatCodepoint(l.Codepoints[0])
		s.Last = formatCodepoint(l.Codepoints[l.Len()-1])
	}
	return s
}
