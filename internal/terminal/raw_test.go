package terminal

import (
	"errors"
	"io"
	"os"
	"testing"

	"golang.org/x/term"
)

func pipeRaw(t *testing.T) (*Raw, *os.File) {
	t.Helper()
	inR, inW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() {
		inR.Close()
		inW.Close()
		outR.Close()
		outW.Close()
	})
	return &Raw{in: inR, out: outW}, outR
}

func TestRawRejectsNonTerminal(t *testing.T) {
	r, _ := pipeRaw(t)
	if _, _, err := r.Size(); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal from Size, got %v", err)
	}
	if err := r.EnterRaw(); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal from EnterRaw, got %v", err)
	}
	if err := r.Restore(); err != nil {
		t.Fatalf("expected restore without raw mode to be a no-op, got %v", err)
	}
	if k, ok, err := r.PollKey(); ok || err != nil || k != "" {
		t.Fatalf("expected no key outside raw mode, got %q %v %v", k, ok, err)
	}
}

func TestRawWriteTranslatesNewlinesWhileRaw(t *testing.T) {
	r, out := pipeRaw(t)
	r.state = &term.State{}
	n, err := r.Write([]byte("a\nb\n"))
	if err != nil || n != 4 {
		t.Fatalf("expected 4 bytes written, got %d (%v)", n, err)
	}
	r.state = nil
	if _, err := r.Write([]byte("c\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	r.out.Close()
	data, err := io.ReadAll(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "a\r\nb\r\nc\n" {
		t.Fatalf("expected translated output, got %q", data)
	}
}
