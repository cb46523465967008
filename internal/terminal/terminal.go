// Package terminal owns the process terminal: its size, raw input mode and
// non-blocking key reads.
package terminal

import (
	"errors"
	"io"
)

// ErrNotTerminal is returned when stdin or stdout is not attached to a tty.
var ErrNotTerminal = errors.New("not a terminal")

// Gateway is the boundary between the screen loop and the real terminal.
type Gateway interface {
	io.Writer
	// Size reports the terminal dimensions in rows and columns.
	Size() (rows, cols int, err error)
	// EnterRaw switches input to raw, no-echo mode.
	EnterRaw() error
	// Restore undoes EnterRaw. It is safe to call more than once.
	Restore() error
	// PollKey returns a pending key name without blocking.
	PollKey() (key string, ok bool, err error)
}
