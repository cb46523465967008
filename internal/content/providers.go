package content

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Provider produces the result lines for a pair of bounds.
type Provider interface {
	// Title names the demonstration for prompts.
	Title() string
	// Lines computes the results over [a, b].
	Lines(a, b float64) []string
}

// Cubic is the equation solved by the Equation screen, x³ + 3x + 2.
func Cubic(x float64) float64 {
	return x*x*x + 3*x + 2
}

// Integrand is the function integrated by the Integrals screen, cos(x)·eˣ.
func Integrand(x float64) float64 {
	return math.Cos(x) * math.Exp(x)
}

// Equation reports the bisection root of Cubic.
type Equation struct {
	Eps float64
}

func (Equation) Title() string { return "Equation x^3 + 3x + 2 = 0" }

func (e Equation) Lines(a, b float64) []string {
	root := Bisection(Cubic, a, b, e.Eps)
	return Box([]string{
		fmt.Sprintf("%s on the segment [%s, %s]", e.Title(), FormatBound(a), FormatBound(b)),
	}, [][2]string{
		{"Bisection method:", FormatValue(root)},
		{"Residual f(x):", FormatValue(Cubic(root))},
	})
}

// Integrals reports several quadrature estimates of Integrand.
type Integrals struct {
	Params IntegralsParams
}

func (Integrals) Title() string { return "cos(x) * e^x" }

func (in Integrals) Lines(a, b float64) []string {
	p := in.Params
	return Box([]string{
		fmt.Sprintf("%s on the segment [%s, %s]:", in.Title(), FormatBound(a), FormatBound(b)),
	}, [][2]string{
		{"Rectangle method:", FormatValue(Rectangle(Integrand, a, b, p.RectStep))},
		{"Trapeze method:", FormatValue(Trapezoid(Integrand, a, b, p.Trapezoids))},
		{"Gauss method:", FormatValue(Gauss(Integrand, a, b, p.GaussParts))},
		{"Monte Carlo method:", FormatValue(MonteCarlo(Integrand, a, b, p.Samples, p.Seed))},
	})
}

// Box frames a title block and label/value rows with dashed rules. Every
// line has the same display width.
func Box(title []string, rows [][2]string) []string {
	labelW, valueW, titleW := 0, 0, 0
	for _, t := range title {
		titleW = max(titleW, runewidth.StringWidth(t))
	}
	for _, r := range rows {
		labelW = max(labelW, runewidth.StringWidth(r[0]))
		valueW = max(valueW, runewidth.StringWidth(r[1]))
	}
	inner := max(titleW, labelW+2+valueW)
	rule := strings.Repeat("-", inner+4)
	line := func(s string) string {
		return "| " + runewidth.FillRight(s, inner) + " |"
	}
	out := []string{rule}
	for _, t := range title {
		out = append(out, line(t))
	}
	out = append(out, rule)
	for _, r := range rows {
		gap := inner - runewidth.StringWidth(r[0]) - runewidth.StringWidth(r[1])
		out = append(out, line(r[0]+strings.Repeat(" ", gap)+r[1]), rule)
	}
	return out
}

// FormatBound prints a bound without trailing zeros.
func FormatBound(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
