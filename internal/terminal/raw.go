package terminal

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// Raw drives the process tty directly.
type Raw struct {
	in  *os.File
	out *os.File

	mu     sync.Mutex
	state  *term.State
	reader *keyReader
}

// NewRaw binds the gateway to stdin and stdout.
func NewRaw() *Raw {
	return &Raw{in: os.Stdin, out: os.Stdout}
}

// Size queries the output terminal, falling back to stdin.
func (r *Raw) Size() (int, int, error) {
	for _, f := range []*os.File{r.out, r.in} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		cols, rows, err := term.GetSize(fd)
		if err != nil {
			return 0, 0, fmt.Errorf("query terminal size: %w", err)
		}
		return rows, cols, nil
	}
	return 0, 0, ErrNotTerminal
}

// EnterRaw puts stdin in raw mode and hides the cursor. Callers own the
// matching Restore, including on termination signals.
func (r *Raw) EnterRaw() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != nil {
		return nil
	}
	fd := int(r.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("enter raw mode: stdin: %w", ErrNotTerminal)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	r.state = state
	r.reader = newKeyReader(r.in)
	_, _ = r.out.WriteString(ansi.HideCursor)
	return nil
}

// Restore returns the terminal to the state captured by EnterRaw.
func (r *Raw) Restore() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.restoreLocked()
}

func (r *Raw) restoreLocked() error {
	if r.state == nil {
		return nil
	}
	if r.reader != nil {
		r.reader.close()
		r.reader = nil
	}
	_, _ = r.out.WriteString(ansi.ResetStyle + ansi.ShowCursor)
	err := term.Restore(int(r.in.Fd()), r.state)
	r.state = nil
	if err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// PollKey returns the most recent pending key. Older keys read in the same
// batch are discarded so a held key does not replay once input is accepted
// again.
func (r *Raw) PollKey() (string, bool, error) {
	r.mu.Lock()
	reader := r.reader
	r.mu.Unlock()
	if reader == nil {
		return "", false, nil
	}
	data, err := reader.poll()
	if err != nil {
		return "", false, fmt.Errorf("read key: %w", err)
	}
	if len(data) == 0 {
		return "", false, nil
	}
	keys := DecodeKeys(data)
	if len(keys) == 0 {
		return "", false, nil
	}
	return keys[len(keys)-1], true, nil
}

// Write sends output to the terminal, translating bare newlines while raw
// mode has output post-processing disabled.
func (r *Raw) Write(p []byte) (int, error) {
	r.mu.Lock()
	raw := r.state != nil
	r.mu.Unlock()
	if !raw {
		return r.out.Write(p)
	}
	translated := bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))
	if _, err := r.out.Write(translated); err != nil {
		return 0, err
	}
	return len(p), nil
}
