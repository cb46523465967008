package screen

import (
	"fmt"
	"time"

	"github.com/atomicstack/numcanvas/internal/content"
	"github.com/atomicstack/numcanvas/internal/input"
	"github.com/atomicstack/numcanvas/internal/logging/events"
)

// Stage is the progress of a bounds prompt.
type Stage int

const (
	AwaitingBoundA Stage = iota
	AwaitingBoundB
	Ready
)

func (s Stage) String() string {
	switch s {
	case AwaitingBoundA:
		return "bound-a"
	case AwaitingBoundB:
		return "bound-b"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// PromptScreen asks for a segment [a, b] with UP/DOWN/ENTER and then shows
// the provider's results. Once Ready, later activations keep the results.
type PromptScreen struct {
	Base
	provider content.Provider
	step     float64
	stage    Stage
	a, b     float64
}

// NewPrompt builds a bounds prompt for id. a and b are the initial bounds
// and step the increment per UP/DOWN press.
func NewPrompt(id ID, provider content.Provider, a, b, step float64) *PromptScreen {
	if step <= 0 {
		step = 1
	}
	p := &PromptScreen{provider: provider, step: step, a: a, b: b}
	p.Base = newBase(id, Capabilities{}, p.fillLines)
	return p
}

// NewEquation builds the root finding screen.
func NewEquation(params content.EquationParams) *PromptScreen {
	return NewPrompt(Equation, content.Equation{Eps: params.Eps}, params.A, params.B, params.Step)
}

// NewIntegrals builds the numeric integration screen.
func NewIntegrals(params content.IntegralsParams) *PromptScreen {
	return NewPrompt(Integrals, content.Integrals{Params: params}, params.A, params.B, params.Step)
}

// Stage returns the current prompt stage.
func (p *PromptScreen) Stage() Stage { return p.stage }

// Bounds returns the segment entered so far.
func (p *PromptScreen) Bounds() (a, b float64) { return p.a, p.b }

func (p *PromptScreen) fillLines() []string {
	if p.stage == Ready {
		return p.provider.Lines(p.a, p.b)
	}
	label, value := "A", p.a
	if p.stage == AwaitingBoundB {
		label, value = "B", p.b
	}
	rows := [][2]string{
		{"Bound A:", content.FormatBound(p.a)},
		{"Bound B:", content.FormatBound(p.b)},
	}
	if p.stage == AwaitingBoundA {
		rows = rows[:1]
	}
	return content.Box([]string{
		p.provider.Title(),
		fmt.Sprintf("Enter bound %s: %s", label, content.FormatBound(value)),
		fmt.Sprintf("UP/DOWN +/-%s, ENTER to confirm", content.FormatBound(p.step)),
	}, rows)
}

// Activate restarts an unfinished prompt from the first bound.
func (p *PromptScreen) Activate(time.Time) {
	if p.stage == Ready {
		return
	}
	p.stage = AwaitingBoundA
	if p.canvas != nil {
		p.rebuild()
	}
}

func (p *PromptScreen) Render(ev input.KeyEvent, _ time.Time) Result {
	if p.stage == Ready {
		return Result{Next: p.id}
	}
	bound := &p.a
	if p.stage == AwaitingBoundB {
		bound = &p.b
	}
	switch ev {
	case input.KeyUp:
		*bound += p.step
	case input.KeyDown:
		*bound -= p.step
	case input.KeyEnter:
		events.Prompt.Bound(p.id.String(), p.stage.String(), *bound)
		p.stage++
	default:
		return Result{Next: p.id}
	}
	p.rebuild()
	return Result{Next: p.id, Redraw: true}
}
