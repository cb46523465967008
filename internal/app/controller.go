package app

import (
	"context"
	"fmt"
	"time"

	"github.com/atomicstack/numcanvas/internal/input"
	"github.com/atomicstack/numcanvas/internal/logging"
	"github.com/atomicstack/numcanvas/internal/logging/events"
	"github.com/atomicstack/numcanvas/internal/screen"
	"github.com/atomicstack/numcanvas/internal/terminal"
)

// DefaultIdle is the pause between loop iterations.
const DefaultIdle = 5 * time.Millisecond

// Controller owns the screens and switches between them in response to
// debounced key events.
type Controller struct {
	gw      terminal.Gateway
	screens screen.Set
	current screen.ID
	start   screen.ID

	debounce  time.Duration
	keys      *input.KeyMap
	debouncer *input.Debouncer
	now       func() time.Time
	sleep     func(time.Duration)
	idle      time.Duration
	reserve   int

	started bool
	frames  int
}

// Option customises a Controller.
type Option func(*Controller)

// WithClock replaces time.Now for both the controller and its debouncer.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithSleep replaces time.Sleep between loop iterations.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Controller) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

func WithIdle(d time.Duration) Option {
	return func(c *Controller) { c.idle = d }
}

func WithDebounce(d time.Duration) Option {
	return func(c *Controller) { c.debounce = d }
}

func WithKeyMap(keys input.KeyMap) Option {
	return func(c *Controller) { c.keys = &keys }
}

// WithReserveRows keeps n terminal rows free below the canvas.
func WithReserveRows(n int) Option {
	return func(c *Controller) {
		if n >= 0 {
			c.reserve = n
		}
	}
}

// WithStart selects the first screen shown.
func WithStart(id screen.ID) Option {
	return func(c *Controller) {
		if id.Valid() {
			c.start = id
		}
	}
}

// NewController wires screens to gw. The debouncer reads keys from gw.
func NewController(gw terminal.Gateway, screens screen.Set, opts ...Option) *Controller {
	c := &Controller{
		gw:       gw,
		screens:  screens,
		start:    screen.Menu,
		debounce: input.DefaultInterval,
		now:      time.Now,
		sleep:    time.Sleep,
		idle:     DefaultIdle,
		reserve:  1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.idle > c.debounce && c.debounce > 0 {
		c.idle = c.debounce
	}
	dopts := []input.Option{input.WithClock(c.now)}
	if c.keys != nil {
		dopts = append(dopts, input.WithKeyMap(*c.keys))
	}
	c.debouncer = input.NewDebouncer(gw, c.debounce, dopts...)
	c.current = c.start
	return c
}

// Current returns the screen being shown.
func (c *Controller) Current() screen.ID { return c.current }

// Frames returns the number of frames painted so far.
func (c *Controller) Frames() int { return c.frames }

// Screen returns the screen registered for id.
func (c *Controller) Screen(id screen.ID) screen.Screen { return c.screens.Get(id) }

// Dispatch resolves the next screen for ev without changing the controller.
// ESC returns to the menu unless the current screen handles it.
func (c *Controller) Dispatch(current screen.ID, ev input.KeyEvent, now time.Time) (screen.ID, bool) {
	sc := c.screens.Get(current)
	if sc == nil {
		return current, false
	}
	if ev == input.KeyNone {
		return current, false
	}
	if ev == input.KeyEsc && !sc.Capabilities().HandlesOwnEscape {
		return screen.Menu, false
	}
	res := sc.Render(ev, now)
	if res.Next != screen.Exit && !res.Next.Valid() {
		return current, res.Redraw
	}
	return res.Next, res.Redraw
}

// Start sizes every screen from the terminal and paints the first one.
func (c *Controller) Start() error {
	rows, cols, err := c.gw.Size()
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}
	c.screens.Configure(max(rows-c.reserve, 0), cols)
	c.current = c.start
	c.started = true
	c.screens.Get(c.current).Activate(c.now())
	return c.paint()
}

// Step runs one loop iteration. It reports done once Exit is selected.
func (c *Controller) Step() (bool, error) {
	if !c.started {
		if err := c.Start(); err != nil {
			return false, err
		}
	}
	ev, err := c.debouncer.Next()
	if err != nil {
		return false, fmt.Errorf("read key: %w", err)
	}
	now := c.now()
	next, redraw := c.Dispatch(c.current, ev, now)
	if next == screen.Exit {
		return true, nil
	}
	if next != c.current {
		events.UI.ScreenSwitch(c.current.String(), next.String())
		c.current = next
		c.screens.Get(next).Activate(now)
		redraw = true
	}
	sc := c.screens.Get(c.current)
	if sc.Capabilities().PerFrameRedraw && sc.Tick(now) {
		redraw = true
	}
	if !redraw {
		return false, nil
	}
	return false, c.paint()
}

func (c *Controller) paint() error {
	if err := c.screens.Get(c.current).Update(c.gw); err != nil {
		return fmt.Errorf("paint %s: %w", c.current, err)
	}
	c.frames++
	return nil
}

// Close releases every canvas.
func (c *Controller) Close() {
	c.screens.Release()
	events.App.Exit(c.frames)
}

// Run puts the terminal in raw mode and loops until Exit is selected or ctx
// is cancelled. The terminal is restored on every return path, panics
// included.
func (c *Controller) Run(ctx context.Context) (err error) {
	if err := c.gw.EnterRaw(); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			_ = c.gw.Restore()
			panic(r)
		}
	}()
	defer func() {
		if rerr := c.gw.Restore(); rerr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", rerr)
		}
	}()
	defer c.Close()

	if err := c.Start(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		done, err := c.Step()
		if err != nil {
			logging.Error(err)
			return err
		}
		if done {
			return nil
		}
		c.sleep(c.idle)
	}
}
