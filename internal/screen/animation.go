package screen

import (
	"io"
	"time"

	"github.com/atomicstack/numcanvas/internal/canvas"
	"github.com/mattn/go-runewidth"
)

// DefaultFrameInterval is the marquee step period.
const DefaultFrameInterval = 150 * time.Millisecond

// DefaultSprite is the marquee picture.
var DefaultSprite = []string{
	`      ____      `,
	`  ___/    \___  `,
	` /  o      o  \ `,
	`(______________)`,
	`   O        O   `,
}

// AnimationScreen scrolls a sprite left to right across the canvas.
type AnimationScreen struct {
	Base
	sprite   []string
	width    int
	interval time.Duration
	offset   int
	last     time.Time
	started  bool
}

func NewAnimation(sprite []string, interval time.Duration) *AnimationScreen {
	if len(sprite) == 0 {
		sprite = DefaultSprite
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	a := &AnimationScreen{sprite: append([]string(nil), sprite...), interval: interval}
	for _, line := range a.sprite {
		a.width = max(a.width, runewidth.StringWidth(line))
	}
	a.offset = -a.width
	a.Base = newBase(Animation, Capabilities{CustomContent: true, PerFrameRedraw: true}, nil)
	a.draw = a.drawSprite
	return a
}

// Offset returns the sprite's current left column.
func (a *AnimationScreen) Offset() int { return a.offset }

// Activate restarts the frame timer.
func (a *AnimationScreen) Activate(now time.Time) {
	a.last = now
	a.started = true
}

// Tick advances the sprite by one column per elapsed frame interval.
func (a *AnimationScreen) Tick(now time.Time) bool {
	if !a.started {
		a.Activate(now)
		return false
	}
	if now.Sub(a.last) < a.interval {
		return false
	}
	a.last = now
	a.advance()
	return true
}

func (a *AnimationScreen) advance() {
	a.offset++
	if a.offset > a.cols-1 {
		a.offset = -a.width
	}
}

// Update clears the canvas, redraws the sprite at the current offset and
// paints it.
func (a *AnimationScreen) Update(w io.Writer) error {
	if a.canvas == nil {
		return nil
	}
	a.canvas.Clear()
	a.drawSprite(a.canvas, nil, canvas.Point{})
	return a.Base.Update(w)
}

func (a *AnimationScreen) drawSprite(c *canvas.Canvas, _ []string, _ canvas.Point) {
	top := (c.Rows() - len(a.sprite)) / 2
	for i, line := range a.sprite {
		x := a.offset
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if r != ' ' {
				c.SetCell(top+i, x, canvas.Glyph(r))
			}
			x += max(w, 1)
		}
	}
}
