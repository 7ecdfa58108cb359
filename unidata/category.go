package unidata

import (
	"errors"
	"fmt"
	"sort"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// ErrOutOfRange is returned for values that are not Unicode scalar values.
var ErrOutOfRange = errors.New("codepoint outside the unicode range")

const (
	CATEGORY_UNASSIGNED  = "Cn"
	CATEGORY_PRIVATE_USE = "Co"
)

var (
	// two letter general categories in a stable lookup order
	categoryNames []string

	// union of every general category, i.e. every assigned codepoint
	assigned *unicode.RangeTable
)

func init() {
	tables := make([]*unicode.RangeTable, 0, len(unicode.Categories))
	for name, table := range unicode.Categories {
		// "LC" is the Lu|Ll|Lt union, not a category of its own
		if len(name) != 2 || name == "LC" {
			continue
		}
		categoryNames = append(categoryNames, name)
		tables = append(tables, table)
	}
	sort.Strings(categoryNames)
	assigned = rangetable.Merge(tables...)
}

func checkRange(r rune) error {
	if r < 0 || r > unicode.MaxRune {
		return fmt.Errorf("%w: %#x", ErrOutOfRange, r)
	}
	return nil
}

// GeneralCategory returns the two letter general category of r. Codepoints
// not covered by any category table are reported as "Cn".
func GeneralCategory(r rune) (string, error) {
	if err := checkRange(r); err != nil {
		return "", err
	}
	if !unicode.Is(assigned, r) {
		return CATEGORY_UNASSIGNED, nil
	}
	for _, name := range categoryNames {
		if unicode.Is(unicode.Categories[name], r) {
			return name, nil
		}
	}
	return CATEGORY_UNASSIGNED, nil
}

// IsAssigned reports whether r belongs to any general category other than Cn.
func IsAssigned(r rune) (bool, error) {
	if err := checkRange(r); err != nil {
		return false, err
	}
	return unicode.Is(assigned, r), nil
}

// Version is the Unicode version of the category tables in use.
func Version() string {
	return unicode.Version
}
