package screen

import (
	"io"
	"time"

	"github.com/atomicstack/numcanvas/internal/canvas"
	"github.com/atomicstack/numcanvas/internal/input"
	"github.com/atomicstack/numcanvas/internal/logging/events"
)

// Capabilities describe how the controller treats a screen.
type Capabilities struct {
	// CustomContent screens paint through their draw hook instead of the
	// verbatim blit of their content lines.
	CustomContent bool
	// HandlesOwnEscape screens receive ESC instead of returning to the menu.
	HandlesOwnEscape bool
	// PerFrameRedraw screens are ticked every loop iteration.
	PerFrameRedraw bool
}

// Result is the outcome of one Render call.
type Result struct {
	Next   ID
	Redraw bool
}

// Screen is one UI mode.
type Screen interface {
	ID() ID
	Capabilities() Capabilities
	// Configure builds the canvas for a rows x cols terminal.
	Configure(rows, cols int)
	// Activate is called each time the screen becomes current.
	Activate(now time.Time)
	// Render consumes one key event.
	Render(ev input.KeyEvent, now time.Time) Result
	// Tick advances per-frame state and reports whether a redraw is due.
	Tick(now time.Time) bool
	// Update paints the canvas to w.
	Update(w io.Writer) error
	Canvas() *canvas.Canvas
	// Release drops the canvas.
	Release()
}

// Base implements the shared pipeline. Concrete screens embed it and set
// the fill and draw hooks.
type Base struct {
	id   ID
	caps Capabilities

	rows   int
	cols   int
	canvas *canvas.Canvas
	lines  []string
	anchor canvas.Point

	fill func() []string
	draw func(c *canvas.Canvas, lines []string, at canvas.Point)
}

func newBase(id ID, caps Capabilities, fill func() []string) Base {
	return Base{id: id, caps: caps, fill: fill}
}

func (b *Base) ID() ID { return b.id }

func (b *Base) Capabilities() Capabilities { return b.caps }

func (b *Base) Canvas() *canvas.Canvas { return b.canvas }

// Lines returns the content lines produced by the last fill.
func (b *Base) Lines() []string { return b.lines }

// Anchor returns the top-left position of the content lines.
func (b *Base) Anchor() canvas.Point { return b.anchor }

// Configure records the terminal size and runs the construct pipeline.
func (b *Base) Configure(rows, cols int) {
	b.rows, b.cols = rows, cols
	b.rebuild()
}

// rebuild regenerates the canvas and repaints content from scratch.
func (b *Base) rebuild() {
	b.canvas = canvas.Generate(b.rows, b.cols)
	b.lines = nil
	if b.fill != nil {
		b.lines = b.fill()
	}
	b.anchor = b.canvas.Anchor(b.lines)
	if b.caps.CustomContent && b.draw != nil {
		b.draw(b.canvas, b.lines, b.anchor)
	} else {
		b.canvas.BlitText(b.lines, b.anchor.Y, b.anchor.X)
	}
	events.UI.Configure(b.id.String(), b.rows, b.cols, len(b.lines))
}

func (b *Base) Activate(time.Time) {}

// Render keeps the screen current and ignores the key.
func (b *Base) Render(input.KeyEvent, time.Time) Result {
	return Result{Next: b.id}
}

func (b *Base) Tick(time.Time) bool { return false }

// Update paints the whole canvas, preceded by a clear-screen sequence.
func (b *Base) Update(w io.Writer) error {
	if b.canvas == nil {
		return nil
	}
	return b.canvas.Paint(w, true)
}

func (b *Base) Release() {
	b.canvas = nil
	b.lines = nil
}
