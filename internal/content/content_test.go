package content

import (
	"math"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestBisectionFindsRoot(t *testing.T) {
	root := Bisection(Cubic, -2, 2, 1e-6)
	if math.Abs(Cubic(root)) > 1e-4 {
		t.Fatalf("expected residual near zero, got f(%f)=%f", root, Cubic(root))
	}
	if math.Abs(root-(-0.596072)) > 1e-4 {
		t.Fatalf("expected root near -0.596072, got %f", root)
	}
}

func TestBisectionWithoutSignChangeIsNaN(t *testing.T) {
	if v := Bisection(Cubic, 0, 4, 0.001); !math.IsNaN(v) {
		t.Fatalf("expected NaN for bracket without a root, got %f", v)
	}
}

func TestBisectionSwapsReversedBounds(t *testing.T) {
	a := Bisection(Cubic, 2, -2, 1e-6)
	b := Bisection(Cubic, -2, 2, 1e-6)
	if a != b {
		t.Fatalf("expected reversed bounds to give %f, got %f", b, a)
	}
}

func TestQuadratureAgreesWithClosedForm(t *testing.T) {
	// Antiderivative of cos(x)e^x is e^x(sin x + cos x)/2.
	anti := func(x float64) float64 { return math.Exp(x) * (math.Sin(x) + math.Cos(x)) / 2 }
	want := anti(5) - anti(1)
	cases := []struct {
		name string
		got  float64
		tol  float64
	}{
		{"trapezoid", Trapezoid(Integrand, 1, 5, 10000), 1e-4},
		{"gauss", Gauss(Integrand, 1, 5, 16), 1e-5},
		{"rectangle", Rectangle(Integrand, 1, 5, 0.001), 0.2},
		{"monte carlo", MonteCarlo(Integrand, 1, 5, 200000, 7), 1.0},
	}
	for _, tc := range cases {
		if math.Abs(tc.got-want) > tc.tol {
			t.Fatalf("%s: expected %f within %g, got %f", tc.name, want, tc.tol, tc.got)
		}
	}
}

func TestMonteCarloIsReproducible(t *testing.T) {
	a := MonteCarlo(Integrand, 1, 5, 1000, 42)
	b := MonteCarlo(Integrand, 1, 5, 1000, 42)
	if a != b {
		t.Fatalf("expected identical estimates for the same seed, got %f and %f", a, b)
	}
}

func TestDegenerateInputsYieldNaN(t *testing.T) {
	if !math.IsNaN(Trapezoid(Integrand, 1, 5, 0)) {
		t.Fatalf("expected NaN for zero trapezoids")
	}
	if !math.IsNaN(Gauss(Integrand, 1, 5, 0)) {
		t.Fatalf("expected NaN for zero gauss parts")
	}
	if !math.IsNaN(MonteCarlo(Integrand, 1, 5, 0, 1)) {
		t.Fatalf("expected NaN for zero samples")
	}
}

func TestBuildTableMatchesIndependentExtremes(t *testing.T) {
	rep := BuildTable(TableParams{A: 2, B: 4, N: 12})
	if len(rep.Rows) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(rep.Rows))
	}
	wantLines := rep.HeaderLines + 12 + rep.FooterLines + 1 + len(rep.Summary)
	if len(rep.Lines) != wantLines {
		t.Fatalf("expected %d lines, got %d", wantLines, len(rep.Lines))
	}

	max1, min1 := math.Inf(-1), math.Inf(1)
	max2, min2 := math.Inf(-1), math.Inf(1)
	for i := 0; i < 12; i++ {
		x := 2 + float64(i)*2/11
		f1 := math.Exp(2*x)*math.Cbrt(x) - math.Sin(x)
		f2 := 10 / (2 + x*x)
		max1, min1 = math.Max(max1, f1), math.Min(min1, f1)
		max2, min2 = math.Max(max2, f2), math.Min(min2, f2)
	}
	check := func(name string, got, want float64) {
		if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
			t.Fatalf("%s: expected %f, got %f", name, want, got)
		}
	}
	check("max F1", rep.F1.Max, max1)
	check("min F1", rep.F1.Min, min1)
	check("max F2", rep.F2.Max, max2)
	check("min F2", rep.F2.Min, min2)

	if !strings.Contains(rep.Lines[rep.Summary[0]], FormatValue(rep.F1.Max)) {
		t.Fatalf("expected summary to print max F1, got %q", rep.Lines[rep.Summary[0]])
	}
	width := runewidth.StringWidth(rep.Lines[0])
	for i := 0; i < rep.HeaderLines+12+rep.FooterLines; i++ {
		if w := runewidth.StringWidth(rep.Lines[i]); w != width {
			t.Fatalf("line %d: expected width %d, got %d (%q)", i, width, w, rep.Lines[i])
		}
	}
}

func TestBuildTableColumnsPointAtValues(t *testing.T) {
	rep := BuildTable(TableParams{A: 2, B: 4, N: 12})
	for i, row := range rep.Rows {
		line := rep.Lines[rep.DataLine(i)]
		cell := strings.TrimSpace(line[rep.Columns[ColF2] : rep.Columns[ColF2]+rep.Widths[ColF2]])
		if cell != FormatValue(row.F2) {
			t.Fatalf("row %d: expected F2 cell %q, got %q", i, FormatValue(row.F2), cell)
		}
		if line[rep.Columns[ColF1]-1] != ' ' || line[rep.Columns[ColF1]+rep.Widths[ColF1]] != ' ' {
			t.Fatalf("row %d: expected spaces around F1 cell in %q", i, line)
		}
	}
}

func TestBoxLinesShareWidth(t *testing.T) {
	lines := Equation{Eps: 0.001}.Lines(-2, 2)
	width := runewidth.StringWidth(lines[0])
	for i, l := range lines {
		if runewidth.StringWidth(l) != width {
			t.Fatalf("line %d: expected width %d, got %d", i, width, runewidth.StringWidth(l))
		}
	}
	if !strings.Contains(strings.Join(lines, "\n"), "[-2, 2]") {
		t.Fatalf("expected bounds in title, got %v", lines)
	}
}

func TestEquationOutsideBracketPrintsNaN(t *testing.T) {
	lines := Equation{Eps: 0.001}.Lines(0, 4)
	if !strings.Contains(strings.Join(lines, "\n"), "NaN") {
		t.Fatalf("expected NaN sentinel in output, got %v", lines)
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	p := Params{}.Normalize()
	if p != DefaultParams() {
		t.Fatalf("expected defaults, got %+v", p)
	}
	custom := Params{Table: TableParams{A: 1, B: 3, N: 5}}.Normalize()
	if custom.Table.N != 5 || custom.Table.A != 1 {
		t.Fatalf("expected custom table params preserved, got %+v", custom.Table)
	}
}
