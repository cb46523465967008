package testutil

import (
	"bytes"
	"sync"
)

// Gateway is an in-memory terminal. Like the real gateways, PollKey returns
// the most recently pressed key and drops older ones; everything written is
// captured as frames.
type Gateway struct {
	mu       sync.Mutex
	rows     int
	cols     int
	keys     []string
	polls    int
	frames   [][]byte
	raw      bool
	restored int
	sizeErr  error
	rawErr   error
}

// NewGateway returns a fake terminal of the given size.
func NewGateway(rows, cols int) *Gateway {
	return &Gateway{rows: rows, cols: cols}
}

// FailSize makes Size return err.
func (g *Gateway) FailSize(err error) { g.sizeErr = err }

// FailRaw makes EnterRaw return err.
func (g *Gateway) FailRaw(err error) { g.rawErr = err }

// Press queues raw key names.
func (g *Gateway) Press(keys ...string) {
	g.mu.Lock()
	g.keys = append(g.keys, keys...)
	g.mu.Unlock()
}

func (g *Gateway) Size() (int, int, error) {
	if g.sizeErr != nil {
		return 0, 0, g.sizeErr
	}
	return g.rows, g.cols, nil
}

func (g *Gateway) EnterRaw() error {
	if g.rawErr != nil {
		return g.rawErr
	}
	g.raw = true
	return nil
}

func (g *Gateway) Restore() error {
	g.raw = false
	g.restored++
	return nil
}

func (g *Gateway) PollKey() (string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.polls++
	if len(g.keys) == 0 {
		return "", false, nil
	}
	k := g.keys[len(g.keys)-1]
	g.keys = g.keys[:0]
	return k, true, nil
}

func (g *Gateway) Write(p []byte) (int, error) {
	g.mu.Lock()
	g.frames = append(g.frames, bytes.Clone(p))
	g.mu.Unlock()
	return len(p), nil
}

// Polls reports how many times PollKey was called.
func (g *Gateway) Polls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.polls
}

// Pending reports queued keys not yet polled.
func (g *Gateway) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.keys)
}

// Frames returns the number of writes captured.
func (g *Gateway) Frames() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.frames)
}

// LastFrame returns the most recent write.
func (g *Gateway) LastFrame() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.frames) == 0 {
		return ""
	}
	return string(g.frames[len(g.frames)-1])
}

// Raw reports whether the fake is in raw mode.
func (g *Gateway) Raw() bool { return g.raw }

// Restored reports how many times Restore was called.
func (g *Gateway) Restored() int { return g.restored }
