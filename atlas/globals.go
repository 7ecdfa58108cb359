package atlas

import (
	"encoding/json"
	"fmt"
)

var (
	Debug bool
)

const (
	// every glyph cell is CELL_SIZE x CELL_SIZE pixels
	CELL_SIZE = 16

	// smallest grid, in cells per side
	MIN_GRID_WIDTH = 16

	// vertical metrics used when the atlas is read back as a font face
	ASCENT  = 14
	DESCENT = CELL_SIZE - ASCENT

	// half width glyphs sit in columns 4..11 of their cell
	HALF_WIDTH_OFFSET = 4
	HALF_WIDTH        = CELL_SIZE / 2
)

func pprint(s interface{}) {
	jsonBytes, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%s\n", string(jsonBytes))
}
