package screen

import (
	"github.com/atomicstack/numcanvas/internal/canvas"
	"github.com/atomicstack/numcanvas/internal/content"
	"github.com/mattn/go-runewidth"
)

// TableScreen shows F1 and F2 sampled over a range, with each function's
// maximum tagged AccentA and minimum tagged AccentB.
type TableScreen struct {
	Base
	params content.TableParams
	report content.Report
}

func NewTable(params content.TableParams) *TableScreen {
	t := &TableScreen{params: params}
	t.Base = newBase(Table, Capabilities{CustomContent: true}, t.fillLines)
	t.draw = t.drawLines
	return t
}

// Report returns the computed table.
func (t *TableScreen) Report() content.Report { return t.report }

func (t *TableScreen) fillLines() []string {
	t.report = content.BuildTable(t.params)
	return t.report.Lines
}

func (t *TableScreen) drawLines(c *canvas.Canvas, lines []string, at canvas.Point) {
	c.BlitText(lines, at.Y, at.X)
	rep := t.report
	for i, row := range rep.Rows {
		y := at.Y + rep.DataLine(i)
		t.tagValue(c, y, at.X, content.ColF1, rep.F1, row.F1)
		t.tagValue(c, y, at.X, content.ColF2, rep.F2, row.F2)
	}
	for k, idx := range rep.Summary {
		tag := canvas.TagAccentA
		if k >= 2 {
			tag = canvas.TagAccentB
		}
		y := at.Y + idx
		c.SetCell(y, at.X, canvas.Tagged(tag))
		c.SetCell(y, at.X+runewidth.StringWidth(lines[idx])-1, canvas.Tagged(canvas.TagReset))
	}
}

func (t *TableScreen) tagValue(c *canvas.Canvas, y, x0, col int, ext content.Extremes, v float64) {
	isMax, isMin := ext.Of(v)
	if !isMax && !isMin {
		return
	}
	tag := canvas.TagAccentB
	if isMax {
		tag = canvas.TagAccentA
	}
	start := x0 + t.report.Columns[col]
	c.SetCell(y, start-1, canvas.Tagged(tag))
	c.SetCell(y, start+t.report.Widths[col], canvas.Tagged(canvas.TagReset))
}
