package input

import (
	"time"

	"github.com/atomicstack/numcanvas/internal/logging/events"
)

// DefaultInterval is the minimum gap between two accepted key events.
const DefaultInterval = 250 * time.Millisecond

// KeySource yields at most one pending raw key without blocking.
type KeySource interface {
	PollKey() (string, bool, error)
}

// Debouncer suppresses key events that arrive within interval of the last
// accepted one.
type Debouncer struct {
	src      KeySource
	keys     KeyMap
	interval time.Duration
	now      func() time.Time

	last     time.Time
	accepted bool
}

// Option customises a Debouncer.
type Option func(*Debouncer)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(d *Debouncer) {
		if now != nil {
			d.now = now
		}
	}
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(d *Debouncer) {
		d.keys = keys
	}
}

// NewDebouncer wraps src. A non-positive interval disables suppression.
func NewDebouncer(src KeySource, interval time.Duration, opts ...Option) *Debouncer {
	if interval < 0 {
		interval = 0
	}
	d := &Debouncer{
		src:      src,
		keys:     DefaultKeyMap(),
		interval: interval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Interval returns the configured suppression window.
func (d *Debouncer) Interval() time.Duration {
	return d.interval
}

// Next returns the next logical key event. Inside the suppression window it
// returns KeyNone without touching the source.
func (d *Debouncer) Next() (KeyEvent, error) {
	now := d.now()
	if d.accepted && now.Sub(d.last) < d.interval {
		return KeyNone, nil
	}
	if d.src == nil {
		return KeyNone, nil
	}
	name, ok, err := d.src.PollKey()
	if err != nil {
		return KeyNone, err
	}
	if !ok {
		return KeyNone, nil
	}
	ev := d.keys.Lookup(name)
	if ev == KeyNone {
		return KeyNone, nil
	}
	d.last = now
	d.accepted = true
	events.Input.Accepted(name, ev.String())
	return ev, nil
}
