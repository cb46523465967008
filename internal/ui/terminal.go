package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// Terminal is the gateway seen by the controller when Bubble Tea owns the
// real terminal. Keys arrive from tea.KeyMsg and frames are kept for View.
type Terminal struct {
	mu     sync.Mutex
	rows   int
	cols   int
	keys   []string
	frame  string
	frames int
}

// NewTerminal returns a gateway reporting a rows x cols terminal.
func NewTerminal(rows, cols int) *Terminal {
	return &Terminal{rows: rows, cols: cols}
}

func (t *Terminal) Size() (int, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rows, t.cols, nil
}

func (t *Terminal) EnterRaw() error { return nil }

func (t *Terminal) Restore() error { return nil }

// Queue records a key name reported by Bubble Tea.
func (t *Terminal) Queue(key string) {
	t.mu.Lock()
	t.keys = append(t.keys, key)
	t.mu.Unlock()
}

// PollKey returns the most recently queued key and drops older ones.
func (t *Terminal) PollKey() (string, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.keys) == 0 {
		return "", false, nil
	}
	k := t.keys[len(t.keys)-1]
	t.keys = t.keys[:0]
	return k, true, nil
}

// Write keeps the frame without the clear-screen prefix; Bubble Tea does its
// own screen management.
func (t *Terminal) Write(p []byte) (int, error) {
	s := string(p)
	s = strings.TrimPrefix(s, ansi.EraseEntireScreen+ansi.CursorHomePosition)
	s = strings.TrimSuffix(s, "\n")
	t.mu.Lock()
	t.frame = s
	t.frames++
	t.mu.Unlock()
	return len(p), nil
}

// Frame returns the last painted frame.
func (t *Terminal) Frame() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frame
}

// Frames counts painted frames.
func (t *Terminal) Frames() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frames
}
