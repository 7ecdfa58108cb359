package atlas

import (
	"fmt"
	"io"

	"unifontatlas/hexfont"
	"unifontatlas/unidata"
)

// Config is the build mode: which glyphs go in and how pixels are stored.
type Config struct {
	Predicate string // one of unidata.PredicateNames
	Encoding  Encoding
}

// Output is everything a build produces, held in memory until written.
type Output struct {
	Stats  hexfont.Stats
	Layout *Layout
	Sheet  *Sheet
}

// Generate runs the whole pipeline over a .hex font:
// load and filter, plan the layout, rasterize.
func Generate(r io.Reader, cfg Config) (*Output, error) {
	include, err := unidata.PredicateByName(cfg.Predicate)
	if err != nil {
		return nil, err
	}

	set, err := hexfont.Load(r, include)
	if err != nil {
		return nil, err
	}
	fmt.Printf("lines: %d accepted: %d rejected: %d\n", set.Stats.Lines, set.Stats.Accepted, set.Stats.Rejected)

	layout := Plan(set)
	fmt.Println("grid width:", layout.Width)

	sheet, err := Rasterize(set, layout, cfg.Encoding)
	if err != nil {
		return nil, err
	}

	return &Output{
		Stats:  set.Stats,
		Layout: layout,
		Sheet:  sheet,
	}, nil
}
