package content

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/atomicstack/numcanvas/internal/format/table"
)

// F1 is the first tabulated function, e^(2x)·∛x − sin x.
func F1(x float64) float64 {
	return math.Exp(2*x)*math.Cbrt(x) - math.Sin(x)
}

// F2 is the second tabulated function, 10 / (2 + x²).
func F2(x float64) float64 {
	return 10 / (2 + x*x)
}

// Row is one sampled point.
type Row struct {
	I  int
	X  float64
	F1 float64
	F2 float64
}

// Extremes holds the largest and smallest sampled value of a function.
type Extremes struct {
	Max float64
	Min float64
}

// Of reports whether v is the maximum, the minimum, or neither.
func (e Extremes) Of(v float64) (isMax, isMin bool) {
	return v == e.Max, v == e.Min
}

// Column indexes inside Report.Columns.
const (
	ColIndex = iota
	ColX
	ColF1
	ColF2
)

// Report is the formatted function table.
type Report struct {
	Rows  []Row
	F1    Extremes
	F2    Extremes
	Lines []string
	// HeaderLines and FooterLines count the fixed lines around the data rows.
	HeaderLines int
	FooterLines int
	// Columns holds the display column where each value column starts
	// inside a data line, and Widths its width.
	Columns [4]int
	Widths  [4]int
	// Summary indexes the max/min summary lines inside Lines.
	Summary []int
}

// Sample evaluates F1 and F2 at n evenly spaced points over [a, b].
func Sample(a, b float64, n int) []Row {
	if n < 1 {
		return nil
	}
	rows := make([]Row, n)
	dx := 0.0
	if n > 1 {
		dx = math.Abs(b-a) / float64(n-1)
	}
	for i := range rows {
		x := a + float64(i)*dx
		rows[i] = Row{I: i + 1, X: x, F1: F1(x), F2: F2(x)}
	}
	return rows
}

func extremes(rows []Row, pick func(Row) float64) Extremes {
	if len(rows) == 0 {
		return Extremes{Max: math.NaN(), Min: math.NaN()}
	}
	e := Extremes{Max: pick(rows[0]), Min: pick(rows[0])}
	for _, r := range rows[1:] {
		v := pick(r)
		if v > e.Max {
			e.Max = v
		}
		if v < e.Min {
			e.Min = v
		}
	}
	return e
}

// BuildTable samples the functions and lays them out as a bordered table
// followed by a max/min summary.
func BuildTable(p TableParams) Report {
	rows := Sample(p.A, p.B, p.N)
	rep := Report{
		Rows: rows,
		F1:   extremes(rows, func(r Row) float64 { return r.F1 }),
		F2:   extremes(rows, func(r Row) float64 { return r.F2 }),
	}

	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, []string{"i", "x[i]", "F1[i]", "F2[i]"})
	for _, r := range rows {
		cells = append(cells, []string{
			strconv.Itoa(r.I),
			FormatValue(r.X),
			FormatValue(r.F1),
			FormatValue(r.F2),
		})
	}
	align := []table.Alignment{table.AlignRight, table.AlignRight, table.AlignRight, table.AlignRight}
	body, offsets := table.Layout(cells, align)
	inner := table.Width(body)
	border := "+" + strings.Repeat("-", inner+2) + "+"
	wrap := func(s string) string {
		return "| " + s + strings.Repeat(" ", inner-len(s)) + " |"
	}

	lines := make([]string, 0, len(body)+8)
	lines = append(lines, border, wrap(body[0]), border)
	for _, b := range body[1:] {
		lines = append(lines, wrap(b))
	}
	lines = append(lines, border)
	rep.HeaderLines = 3
	rep.FooterLines = 1

	lines = append(lines, "")
	summary := []string{
		fmt.Sprintf(" Max F1: %s ", FormatValue(rep.F1.Max)),
		fmt.Sprintf(" Max F2: %s ", FormatValue(rep.F2.Max)),
		fmt.Sprintf(" Min F1: %s ", FormatValue(rep.F1.Min)),
		fmt.Sprintf(" Min F2: %s ", FormatValue(rep.F2.Min)),
	}
	for _, s := range summary {
		rep.Summary = append(rep.Summary, len(lines))
		lines = append(lines, s)
	}
	rep.Lines = lines

	for c := range rep.Columns {
		rep.Columns[c] = offsets[c] + 2
	}
	for c := range rep.Widths {
		end := inner
		if c+1 < len(offsets) {
			end = offsets[c+1] - 2
		}
		rep.Widths[c] = end - offsets[c]
	}
	return rep
}

// DataLine returns the index inside Lines of the i-th data row.
func (r Report) DataLine(i int) int {
	return r.HeaderLines + i
}

// FormatValue prints a number with six decimals, or NaN.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
