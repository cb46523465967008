package content

// Params holds the tunable inputs of every demonstration. Zero values are
// replaced by defaults through Normalize.
type Params struct {
	Table     TableParams     `yaml:"table"`
	Equation  EquationParams  `yaml:"equation"`
	Integrals IntegralsParams `yaml:"integrals"`
}

type TableParams struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	N int     `yaml:"n"`
}

type EquationParams struct {
	A   float64 `yaml:"a"`
	B   float64 `yaml:"b"`
	Eps float64 `yaml:"eps"`
	// Step is the bound increment applied per UP/DOWN press.
	Step float64 `yaml:"step"`
}

type IntegralsParams struct {
	A          float64 `yaml:"a"`
	B          float64 `yaml:"b"`
	Trapezoids int     `yaml:"trapezoids"`
	RectStep   float64 `yaml:"rect_step"`
	GaussParts int     `yaml:"gauss_parts"`
	Samples    int     `yaml:"samples"`
	Seed       uint64  `yaml:"seed"`
	Step       float64 `yaml:"step"`
}

// DefaultParams returns the stock demonstration inputs.
func DefaultParams() Params {
	return Params{
		Table: TableParams{A: 2, B: 4, N: 12},
		Equation: EquationParams{
			A:    -2,
			B:    2,
			Eps:  0.001,
			Step: 1,
		},
		Integrals: IntegralsParams{
			A:          1,
			B:          5,
			Trapezoids: 10000,
			RectStep:   0.001,
			GaussParts: 16,
			Samples:    100000,
			Seed:       1,
			Step:       1,
		},
	}
}

// Normalize fills zero or invalid fields from DefaultParams.
func (p Params) Normalize() Params {
	d := DefaultParams()
	if p.Table.N < 2 {
		p.Table.N = d.Table.N
	}
	if p.Table.A == 0 && p.Table.B == 0 {
		p.Table.A, p.Table.B = d.Table.A, d.Table.B
	}
	if p.Equation.A == 0 && p.Equation.B == 0 {
		p.Equation.A, p.Equation.B = d.Equation.A, d.Equation.B
	}
	if p.Equation.Eps <= 0 {
		p.Equation.Eps = d.Equation.Eps
	}
	if p.Equation.Step <= 0 {
		p.Equation.Step = d.Equation.Step
	}
	in := &p.Integrals
	if in.A == 0 && in.B == 0 {
		in.A, in.B = d.Integrals.A, d.Integrals.B
	}
	if in.Trapezoids <= 0 {
		in.Trapezoids = d.Integrals.Trapezoids
	}
	if in.RectStep <= 0 {
		in.RectStep = d.Integrals.RectStep
	}
	if in.GaussParts <= 0 {
		in.GaussParts = d.Integrals.GaussParts
	}
	if in.Samples <= 0 {
		in.Samples = d.Integrals.Samples
	}
	if in.Seed == 0 {
		in.Seed = d.Integrals.Seed
	}
	if in.Step <= 0 {
		in.Step = d.Integrals.Step
	}
	return p
}
