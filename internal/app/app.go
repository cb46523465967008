package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atomicstack/numcanvas/internal/content"
	"github.com/atomicstack/numcanvas/internal/input"
	"github.com/atomicstack/numcanvas/internal/screen"
	"github.com/atomicstack/numcanvas/internal/terminal"
	"github.com/atomicstack/numcanvas/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Drivers select who owns the terminal.
const (
	DriverRaw = "raw"
	DriverTea = "tea"
)

// Config describes user-provided application options.
type Config struct {
	Debounce      time.Duration
	FrameInterval time.Duration
	Idle          time.Duration
	ReserveRows   int
	Start         screen.ID
	Driver        string
	ShowHint      bool
	Content       content.Params
}

// DefaultConfig returns the stock runtime options.
func DefaultConfig() Config {
	return Config{
		Debounce:      input.DefaultInterval,
		FrameInterval: screen.DefaultFrameInterval,
		Idle:          DefaultIdle,
		ReserveRows:   1,
		Start:         screen.Menu,
		Driver:        DriverRaw,
		ShowHint:      true,
		Content:       content.DefaultParams(),
	}
}

// Screens builds the screen set for cfg.
func Screens(cfg Config) screen.Set {
	hint := ""
	if cfg.ShowHint {
		hint = input.DefaultKeyMap().HelpLine()
	}
	return screen.NewSet(screen.Options{
		Params:        cfg.Content,
		FrameInterval: cfg.FrameInterval,
		MenuHint:      hint,
	})
}

func controllerOptions(cfg Config) []Option {
	return []Option{
		WithDebounce(cfg.Debounce),
		WithIdle(cfg.Idle),
		WithReserveRows(cfg.ReserveRows),
		WithStart(cfg.Start),
	}
}

// shutdownSignals stop the raw loop so its deferred cleanup restores the
// terminal and flushes logs before the process exits.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}

// Run bootstraps the controller on the selected driver.
func Run(cfg Config) error {
	ctx, stop := signalContext(context.Background())
	defer stop()

	switch cfg.Driver {
	case DriverTea:
		return runTea(cfg)
	case DriverRaw, "":
		gw := terminal.NewRaw()
		ctrl := NewController(gw, Screens(cfg), controllerOptions(cfg)...)
		return ctrl.Run(ctx)
	default:
		return fmt.Errorf("unknown driver %q", cfg.Driver)
	}
}

func runTea(cfg Config) error {
	rows, cols, err := terminal.NewRaw().Size()
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}
	// The hint moves from the menu to the reserved row under the canvas.
	hint := ""
	if cfg.ShowHint {
		hint = input.DefaultKeyMap().HelpLine()
		cfg.ShowHint = false
	}
	term := ui.NewTerminal(rows, cols)
	ctrl := NewController(term, Screens(cfg), controllerOptions(cfg)...)
	defer ctrl.Close()

	model := ui.NewModel(term, ctrl, cfg.Idle, hint)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	if m, ok := final.(*ui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
