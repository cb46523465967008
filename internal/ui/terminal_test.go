package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func windowSize(width int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: width, Height: 24}
}

func TestTerminalPollKeyReturnsLatest(t *testing.T) {
	term := NewTerminal(24, 80)
	if _, ok, _ := term.PollKey(); ok {
		t.Fatalf("expected no key on an empty queue")
	}
	term.Queue("up")
	term.Queue("enter")
	k, ok, err := term.PollKey()
	if err != nil || !ok || k != "enter" {
		t.Fatalf("expected enter, got %q %v %v", k, ok, err)
	}
	if _, ok, _ := term.PollKey(); ok {
		t.Fatalf("expected older keys dropped")
	}
	rows, cols, err := term.Size()
	if err != nil || rows != 24 || cols != 80 {
		t.Fatalf("expected 24x80, got %dx%d (%v)", rows, cols, err)
	}
	if term.EnterRaw() != nil || term.Restore() != nil {
		t.Fatalf("expected raw mode to be a no-op")
	}
}

func TestHarnessKeyNames(t *testing.T) {
	for _, name := range []string{"up", "down", "enter", "esc", "k", "j"} {
		if got := keyMsg(name).String(); got != name {
			t.Fatalf("expected %q, got %q", name, got)
		}
	}
}
