//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// keyReader drains whatever input is queued on the tty without blocking.
type keyReader struct {
	fd  int
	buf []byte
}

func newKeyReader(f *os.File) *keyReader {
	return &keyReader{fd: int(f.Fd()), buf: make([]byte, 256)}
}

func (k *keyReader) poll() ([]byte, error) {
	var out []byte
	for {
		fds := []unix.PollFd{{Fd: int32(k.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, 0)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return out, err
		}
		if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
			return out, nil
		}
		rn, err := unix.Read(k.fd, k.buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return out, err
		}
		if rn == 0 {
			return out, nil
		}
		out = append(out, k.buf[:rn]...)
	}
}

func (k *keyReader) close() {}
