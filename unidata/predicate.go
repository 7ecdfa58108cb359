package unidata

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPredicate = errors.New("unknown inclusion predicate")

// Predicate decides whether a codepoint goes into the atlas. An error means
// the codepoint could not be classified.
type Predicate func(r rune) (bool, error)

const (
	EXCLUDE_UNASSIGNED        = "unassigned-exclude"
	PICTOGRAPHIC_PLUS_DRAWING = "pictographic-plus-drawing"
	PICTOGRAPHIC_PLUS_ASCII   = "pictographic-plus-ascii"
)

// PredicateNames lists the names accepted by PredicateByName.
var PredicateNames = []string{
	EXCLUDE_UNASSIGNED,
	PICTOGRAPHIC_PLUS_DRAWING,
	PICTOGRAPHIC_PLUS_ASCII,
}

// ExcludeUnassigned accepts everything except unassigned (Cn) and private
// use (Co) codepoints.
func ExcludeUnassigned(r rune) (bool, error) {
	category, err := GeneralCategory(r)
	if err != nil {
		return false, err
	}
	return category != CATEGORY_UNASSIGNED && category != CATEGORY_PRIVATE_USE, nil
}

// PictographicPlusASCII accepts extended pictographic codepoints and ASCII.
func PictographicPlusASCII(r rune) (bool, error) {
	if err := checkRange(r); err != nil {
		return false, err
	}
	if r < 128 {
		return true, nil
	}
	return IsExtendedPictographic(r)
}

// PictographicPlusDrawing is PictographicPlusASCII plus every codepoint in a
// block whose name contains "drawing".
func PictographicPlusDrawing(r rune) (bool, error) {
	ok, err := PictographicPlusASCII(r)
	if err != nil || ok {
		return ok, err
	}
	name, err := BlockName(r)
	if err != nil {
		return false, err
	}
	return strings.Contains(strings.ToLower(name), "drawing"), nil
}

func PredicateByName(name string) (Predicate, error) {
	switch name {
	case EXCLUDE_UNASSIGNED:
		return ExcludeUnassigned, nil
	case PICTOGRAPHIC_PLUS_DRAWING:
		return PictographicPlusDrawing, nil
	case PICTOGRAPHIC_PLUS_ASCII:
		return PictographicPlusASCII, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
	}
}
