package app

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/numcanvas/internal/screen"
	"github.com/atomicstack/numcanvas/internal/testutil"
	"github.com/atomicstack/numcanvas/internal/ui"
)

func TestTeaHostDrivesController(t *testing.T) {
	clock := testutil.NewClock()
	cfg := DefaultConfig()
	cfg.ShowHint = false
	term := ui.NewTerminal(25, 80)
	ctrl := NewController(term, Screens(cfg), append(controllerOptions(cfg), WithClock(clock.Now))...)
	h := ui.NewHarness(ui.NewModel(term, ctrl, 0, "up/down move"))

	h.Tick(1)
	if !strings.Contains(h.View(), "1.  Table") {
		t.Fatalf("expected menu in view, got %q", h.View())
	}
	if !strings.Contains(h.View(), "up/down move") {
		t.Fatalf("expected hint under the canvas")
	}

	h.Key("down")
	h.Tick(1)
	clock.Advance(300 * time.Millisecond)
	h.Key("enter")
	h.Tick(1)
	if ctrl.Current() != screen.Graphic {
		t.Fatalf("expected graphic, got %s", ctrl.Current())
	}

	clock.Advance(300 * time.Millisecond)
	h.Key("esc")
	h.Tick(1)
	clock.Advance(300 * time.Millisecond)
	h.Key("up")
	h.Tick(1)
	clock.Advance(300 * time.Millisecond)
	h.Key("up")
	h.Tick(1)
	clock.Advance(300 * time.Millisecond)
	h.Key("enter")
	h.Tick(1)
	if !h.Model().Done() || h.Model().Err() != nil {
		t.Fatalf("expected clean exit, done=%v err=%v", h.Model().Done(), h.Model().Err())
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Debounce != 250*time.Millisecond || cfg.FrameInterval != 150*time.Millisecond {
		t.Fatalf("unexpected timing defaults: %+v", cfg)
	}
	if cfg.ReserveRows != 1 || cfg.Start != screen.Menu || cfg.Driver != DriverRaw {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestRunRejectsUnknownDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Driver = "nope"
	if err := Run(cfg); err == nil || !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected unknown driver error, got %v", err)
	}
}
