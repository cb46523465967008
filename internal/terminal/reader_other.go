//go:build !unix

package terminal

import (
	"io"
	"os"
)

// keyReader feeds a channel from a background read loop so poll never blocks.
type keyReader struct {
	ch   chan []byte
	errs chan error
	done chan struct{}
}

func newKeyReader(f *os.File) *keyReader {
	k := &keyReader{
		ch:   make(chan []byte, 64),
		errs: make(chan error, 1),
		done: make(chan struct{}),
	}
	go k.loop(f)
	return k
}

func (k *keyReader) loop(r io.Reader) {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			select {
			case k.ch <- chunk:
			case <-k.done:
				return
			}
		}
		if err != nil {
			select {
			case k.errs <- err:
			default:
			}
			return
		}
	}
}

func (k *keyReader) poll() ([]byte, error) {
	var out []byte
	for {
		select {
		case chunk := <-k.ch:
			out = append(out, chunk...)
		case err := <-k.errs:
			return out, err
		default:
			return out, nil
		}
	}
}

func (k *keyReader) close() {
	select {
	case <-k.done:
	default:
		close(k.done)
	}
}
