package screen

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/numcanvas/internal/canvas"
	"github.com/atomicstack/numcanvas/internal/input"
	"github.com/atomicstack/numcanvas/internal/logging/events"
	"github.com/mattn/go-runewidth"
)

const (
	menuItemCount = 7
	menuCursor    = '*'
	menuTitle     = "Menu"
)

var menuLabels = [menuItemCount]string{
	"Table",
	"Graphics",
	"Equation",
	"Integrals",
	"Animation",
	"Author",
	"Exit",
}

// MenuScreen is the vertical selection list. Item k opens ID(k).
type MenuScreen struct {
	Base
	selection int
	hint      string
}

// NewMenu builds the menu. hint, when non-empty, is shown below the items.
func NewMenu(hint string) *MenuScreen {
	m := &MenuScreen{selection: 1, hint: hint}
	m.Base = newBase(Menu, Capabilities{CustomContent: true, HandlesOwnEscape: true}, m.fillLines)
	m.draw = m.drawLines
	return m
}

func (m *MenuScreen) fillLines() []string {
	items := make([]string, 0, menuItemCount+3)
	width := 0
	for i, label := range menuLabels {
		item := fmt.Sprintf("%d.  %s", i+1, label)
		width = max(width, runewidth.StringWidth(item))
		items = append(items, item)
	}
	for i := range items {
		items[i] = runewidth.FillRight(items[i], width)
	}
	if m.hint != "" {
		width = max(width, runewidth.StringWidth(m.hint))
	}
	pad := (width - runewidth.StringWidth(menuTitle)) / 2
	title := runewidth.FillRight(strings.Repeat(" ", pad)+menuTitle, width)
	lines := append([]string{title}, items...)
	if m.hint != "" {
		lines = append(lines, "", m.hint)
	}
	return lines
}

func (m *MenuScreen) drawLines(c *canvas.Canvas, lines []string, at canvas.Point) {
	c.BlitText(lines, at.Y, at.X)
	c.SetCell(m.cursorAt(m.selection), at.X-2, canvas.Glyph(menuCursor))
}

func (m *MenuScreen) cursorAt(selection int) int {
	return m.anchor.Y + selection
}

// Selection returns the highlighted item, 1..7.
func (m *MenuScreen) Selection() int { return m.selection }

// Render moves the selection on UP/DOWN and opens the selected screen on
// ENTER. ESC is ignored.
func (m *MenuScreen) Render(ev input.KeyEvent, _ time.Time) Result {
	switch ev {
	case input.KeyUp:
		m.move(-1)
		return Result{Next: Menu, Redraw: true}
	case input.KeyDown:
		m.move(1)
		return Result{Next: Menu, Redraw: true}
	case input.KeyEnter:
		return Result{Next: ID(m.selection)}
	}
	return Result{Next: Menu}
}

func (m *MenuScreen) move(delta int) {
	prev := m.selection
	m.selection = (m.selection-1+delta+menuItemCount)%menuItemCount + 1
	if c := m.canvas; c != nil {
		x := m.anchor.X - 2
		c.SetCell(m.cursorAt(prev), x, canvas.Cell{})
		c.SetCell(m.cursorAt(m.selection), x, canvas.Glyph(menuCursor))
	}
	events.UI.MenuCursor(m.selection)
}
