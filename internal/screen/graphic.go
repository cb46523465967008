package screen

import (
	"io"
	"math"
	"time"

	"github.com/atomicstack/numcanvas/internal/canvas"
	"github.com/atomicstack/numcanvas/internal/input"
	"github.com/atomicstack/numcanvas/internal/logging/events"
)

// Zoom limits for the plot. Zoom divides the horizontal scale, so a
// smaller value shows fewer periods.
const (
	DefaultZoom = 4
	MinZoom     = 2
	MaxZoom     = 10
)

const (
	sinGlyph = '*'
	cosGlyph = 'o'
)

// GraphicScreen plots sin x and cos x around centred axes.
type GraphicScreen struct {
	Base
	zoom          int
	dirty         bool
	regenerations int
}

func NewGraphic() *GraphicScreen {
	g := &GraphicScreen{zoom: DefaultZoom}
	g.Base = newBase(Graphic, Capabilities{CustomContent: true}, nil)
	g.draw = g.plot
	return g
}

// Zoom returns the current zoom divisor.
func (g *GraphicScreen) Zoom() int { return g.zoom }

// Regenerations counts canvases rebuilt by zoom changes.
func (g *GraphicScreen) Regenerations() int { return g.regenerations }

// Render zooms in on UP and out on DOWN. A press at a limit is a no-op and
// does not request a redraw.
func (g *GraphicScreen) Render(ev input.KeyEvent, _ time.Time) Result {
	next := g.zoom
	switch ev {
	case input.KeyUp:
		next--
	case input.KeyDown:
		next++
	}
	next = min(max(next, MinZoom), MaxZoom)
	if next == g.zoom {
		return Result{Next: Graphic}
	}
	g.zoom = next
	g.dirty = true
	events.Graphic.Zoom(g.zoom)
	return Result{Next: Graphic, Redraw: true}
}

// Update rebuilds the canvas when the zoom changed since the last paint.
func (g *GraphicScreen) Update(w io.Writer) error {
	// The plot depends only on zoom and size, so an unchanged zoom reuses
	// the canvas built for it.
	if g.dirty && g.canvas != nil {
		g.rebuild()
		g.regenerations++
		g.dirty = false
	}
	return g.Base.Update(w)
}

func (g *GraphicScreen) plot(c *canvas.Canvas, _ []string, _ canvas.Point) {
	rows, cols := c.Rows(), c.Cols()
	if rows == 0 || cols == 0 {
		return
	}
	cy, cx := rows/2, cols/2
	for x := 0; x < cols; x++ {
		c.SetCell(cy, x, canvas.Glyph('-'))
	}
	for y := 0; y < rows; y++ {
		c.SetCell(y, cx, canvas.Glyph('|'))
	}
	c.SetCell(cy, cx, canvas.Glyph('+'))

	xScale := float64(cols) / (float64(g.zoom) * math.Pi)
	yScale := float64(rows-1) / 2
	for col := 0; col < cols; col++ {
		x := float64(col-cx) / xScale
		plotPoint(c, cy, col, yScale, math.Cos(x), cosGlyph)
		plotPoint(c, cy, col, yScale, math.Sin(x), sinGlyph)
	}
}

func plotPoint(c *canvas.Canvas, cy, col int, yScale, v float64, glyph rune) {
	y := cy - int(math.Round(v*yScale))
	c.SetCell(y, col, canvas.Glyph(glyph))
}
