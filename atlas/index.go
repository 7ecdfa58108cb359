package atlas

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrBadIndex = errors.New("malformed index line")

// IndexRecord is one line of the sidecar index. The line number is the slot.
type IndexRecord struct {
	Codepoint rune
	FullWidth bool
}

// Index is the ordered slot -> codepoint list read back from an index file.
type Index struct {
	Records    []IndexRecord
	WidthFlags bool // lines carried the full width column

	slots map[rune]int
}

func formatCodepoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}

// WriteIndex writes one "<codepoint>" or "<codepoint>,<0|1>" line per slot,
// in slot order.
func WriteIndex(w io.Writer, layout *Layout, widthFlags bool) error {
	bw := bufio.NewWriter(w)
	for i, r := range layout.Codepoints {
		line := strconv.Itoa(int(r))
		if widthFlags {
			flag := "0"
			if layout.FullWidth[i] {
				flag = "1"
			}
			line += "," + flag
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadIndex parses an index file. Blank lines are ignored. Without a width
// column every record is reported as full width.
func ReadIndex(r io.Reader) (*Index, error) {
	idx := &Index{slots: make(map[rune]int)}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) > 2 {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadIndex, lineNum, line)
		}
		n, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadIndex, lineNum, line)
		}
		rec := IndexRecord{Codepoint: rune(n), FullWidth: true}
		if len(fields) == 2 {
			switch fields[1] {
			case "0":
				rec.FullWidth = false
			case "1":
			default:
				return nil, fmt.Errorf("%w: line %d %q", ErrBadIndex, lineNum, line)
			}
			idx.WidthFlags = true
		}

		if _, dup := idx.slots[rec.Codepoint]; dup {
			return nil, fmt.Errorf("%w: line %d repeats %s", ErrBadIndex, lineNum, formatCodepoint(rec.Codepoint))
		}
		idx.slots[rec.Codepoint] = len(idx.Records)
		idx.Records = append(idx.Records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return idx, nil
}

func (idx *Index) Len() int {
	return len(idx.Records)
}

// Slot returns the slot index holding r.
func (idx *Index) Slot(r rune) (int, bool) {
	i, ok := idx.slots[r]
	return i, ok
}
