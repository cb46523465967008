package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const separator = "  "

// Layout pads rows according to the widest entry in each column and returns
// the display column at which each column starts, so callers can decorate
// individual cells.
func Layout(rows [][]string, alignments []Alignment) ([]string, []int) {
	if len(rows) == 0 {
		return nil, nil
	}
	colCount := len(rows[0])
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if c >= colCount {
				break
			}
			width := cellWidth(cell)
			if width > widths[c] {
				widths[c] = width
			}
		}
	}
	offsets := make([]int, colCount)
	pos := 0
	for c, w := range widths {
		if c > 0 {
			pos += len(separator)
		}
		offsets[c] = pos
		pos += w
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < colCount; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString(separator)
			}
			width := widths[c] - cellWidth(cell)
			if width < 0 {
				width = 0
			}
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, width)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				writeSpaces(&b, width)
			}
		}
		out[i] = b.String()
	}
	return out, offsets
}

// Width returns the display width of a formatted row set.
func Width(rows []string) int {
	w := 0
	for _, row := range rows {
		if n := cellWidth(row); n > w {
			w = n
		}
	}
	return w
}

func cellWidth(text string) int {
	return runewidth.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
