package itinerary

import "strings"

type column struct {
	index int
	set   bool
}

// HeaderMap records which cell index holds each field of a table. The zero
// value maps nothing, so every lookup falls back to the positional default.
type HeaderMap struct {
	columns [fieldCount]column
}

func (h *HeaderMap) Set(f Field, idx int) {
	if f < 0 || f >= fieldCount {
		return
	}
	h.columns[f] = column{index: idx, set: true}
}

// Index returns the mapped column of f.
func (h HeaderMap) Index(f Field) (int, bool) {
	if f < 0 || f >= fieldCount {
		return 0, false
	}
	c := h.columns[f]
	return c.index, c.set
}

// Value returns the cell holding f, falling back to the fixed column for
// order, time, type, name and address, and to "" otherwise.
func (h HeaderMap) Value(cells []string, f Field) string {
	if idx, ok := h.Index(f); ok && idx < len(cells) {
		return cells[idx]
	}
	if idx, ok := fallbackColumns[f]; ok && idx < len(cells) {
		return cells[idx]
	}
	return ""
}

// SplitCells splits a pipe-delimited row into trimmed cells, dropping the
// segments outside the first and last pipe. Rows with fewer than three
// segments are malformed.
func SplitCells(line string) ([]string, bool) {
	segments := strings.Split(line, "|")
	if len(segments) < 3 {
		return nil, false
	}
	cells := segments[1 : len(segments)-1]
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells, true
}

// MapHeader builds the HeaderMap of a header row. Each cell maps to the
// first field whose synonyms it contains; when two cells map to the same
// field the later one wins.
func (p *Parser) MapHeader(cells []string) HeaderMap {
	var h HeaderMap
	for idx, cell := range cells {
		for _, syn := range p.synonyms {
			if containsAny(cell, syn.Substrings) {
				h.Set(syn.Field, idx)
				break
			}
		}
	}
	return h
}
