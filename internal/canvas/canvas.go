// Package canvas holds the character grid each screen paints into.
package canvas

import (
	"bytes"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Point is a grid coordinate.
type Point struct {
	Y int
	X int
}

// Canvas is a fixed-size grid of cells.
type Canvas struct {
	rows  int
	cols  int
	cells [][]Cell
}

// Generate returns a blank canvas. Negative dimensions collapse to zero.
func Generate(rows, cols int) *Canvas {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	cells := make([][]Cell, rows)
	for y := range cells {
		cells[y] = make([]Cell, cols)
	}
	return &Canvas{rows: rows, cols: cols, cells: cells}
}

func (c *Canvas) Rows() int { return c.rows }

func (c *Canvas) Cols() int { return c.cols }

// Contains reports whether (y, x) lies inside the grid.
func (c *Canvas) Contains(y, x int) bool {
	return y >= 0 && y < c.rows && x >= 0 && x < c.cols
}

// Cell returns the cell at (y, x).
func (c *Canvas) Cell(y, x int) (Cell, bool) {
	if !c.Contains(y, x) {
		return Cell{}, false
	}
	return c.cells[y][x], true
}

// SetCell writes a single cell. Writes outside the grid are dropped.
func (c *Canvas) SetCell(y, x int, cell Cell) bool {
	if !c.Contains(y, x) {
		return false
	}
	c.cells[y][x] = cell
	return true
}

// BlitText copies lines into the grid with the first rune of the first line
// at (yStart, xStart). Runes falling outside the grid are skipped. It returns
// the number of cells written.
func (c *Canvas) BlitText(lines []string, yStart, xStart int) int {
	written := 0
	for i, line := range lines {
		y := yStart + i
		if y < 0 {
			continue
		}
		if y >= c.rows {
			break
		}
		x := xStart
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if w == 2 {
				if c.Contains(y, x) && c.Contains(y, x+1) {
					c.cells[y][x] = Cell{Glyph: r}
					c.cells[y][x+1] = Cell{Cont: true}
					written += 2
				}
				x += 2
				continue
			}
			if c.SetCell(y, x, Cell{Glyph: r}) {
				written++
			}
			x++
		}
	}
	return written
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for y := range c.cells {
		row := c.cells[y]
		for x := range row {
			row[x] = Cell{}
		}
	}
}

// Blank reports whether every cell paints as empty space.
func (c *Canvas) Blank() bool {
	for _, row := range c.cells {
		for _, cell := range row {
			if !cell.IsBlank() {
				return false
			}
		}
	}
	return true
}

// Anchor centres lines inside the grid. The first line's display width sets
// the horizontal position. Content larger than the grid anchors at zero.
func (c *Canvas) Anchor(lines []string) Point {
	return Anchor(c.rows, c.cols, lines)
}

// Anchor centres lines inside a rows x cols area, clamping to zero.
func Anchor(rows, cols int, lines []string) Point {
	first := 0
	if len(lines) > 0 {
		first = runewidth.StringWidth(lines[0])
	}
	y := (rows - len(lines)) / 2
	x := (cols - first) / 2
	if y < 0 {
		y = 0
	}
	if x < 0 {
		x = 0
	}
	return Point{Y: y, X: x}
}

// Frame renders the grid to a byte slice. When clear is set the frame is
// prefixed with an erase-screen and cursor-home sequence.
func (c *Canvas) Frame(clear bool) []byte {
	var b bytes.Buffer
	b.Grow(c.rows * (c.cols + 1))
	if clear {
		b.WriteString(ansi.EraseEntireScreen)
		b.WriteString(ansi.CursorHomePosition)
	}
	for _, row := range c.cells {
		for _, cell := range row {
			switch {
			case cell.Tag != TagNone:
				b.WriteString(cell.Tag.prefix())
				b.WriteByte(' ')
			case cell.Cont:
			case cell.Glyph == 0:
				b.WriteByte(' ')
			default:
				b.WriteRune(cell.Glyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Paint writes one frame to w in a single call.
func (c *Canvas) Paint(w io.Writer, clear bool) error {
	_, err := w.Write(c.Frame(clear))
	return err
}

// Lines returns the plain text of every row with colour tags rendered as
// spaces. Intended for assertions and trace output.
func (c *Canvas) Lines() []string {
	out := make([]string, c.rows)
	buf := make([]rune, 0, c.cols)
	for y, row := range c.cells {
		buf = buf[:0]
		for _, cell := range row {
			switch {
			case cell.Cont:
			case cell.Tag != TagNone, cell.Glyph == 0:
				buf = append(buf, ' ')
			default:
				buf = append(buf, cell.Glyph)
			}
		}
		out[y] = string(buf)
	}
	return out
}
