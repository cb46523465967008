package ui

import (
	"time"

	"github.com/atomicstack/numcanvas/internal/logging"
	"github.com/atomicstack/numcanvas/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
)

// DefaultTick is the interval between controller steps.
const DefaultTick = 5 * time.Millisecond

var styles = theme.Default()

// Stepper is the controller surface the model drives.
type Stepper interface {
	Start() error
	Step() (done bool, err error)
}

type tickMsg time.Time

// Model implements the Bubble Tea model around a Stepper.
type Model struct {
	term    *Terminal
	ctrl    Stepper
	tick    time.Duration
	hint    string
	width   int
	started bool
	done    bool
	err     error
}

// NewModel builds a model stepping ctrl every tick. hint is shown under the
// canvas when non-empty.
func NewModel(term *Terminal, ctrl Stepper, tick time.Duration, hint string) *Model {
	if tick <= 0 {
		tick = DefaultTick
	}
	return &Model{term: term, ctrl: ctrl, tick: tick, hint: hint}
}

func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
		m.term.Queue(msg.String())
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		return m, m.step()
	}
	return m, nil
}

func (m *Model) step() tea.Cmd {
	if m.done {
		return nil
	}
	if !m.started {
		m.started = true
		if err := m.ctrl.Start(); err != nil {
			return m.fail(err)
		}
	}
	done, err := m.ctrl.Step()
	if err != nil {
		return m.fail(err)
	}
	if done {
		m.done = true
		return tea.Quit
	}
	return m.tickCmd()
}

func (m *Model) fail(err error) tea.Cmd {
	logging.Error(err)
	m.err = err
	m.done = true
	return tea.Quit
}

// Done reports whether the model has asked the program to quit.
func (m *Model) Done() bool { return m.done }

// Err returns the error that stopped the model, if any.
func (m *Model) Err() error { return m.err }

func (m *Model) View() string {
	if m.done {
		return ""
	}
	view := m.term.Frame()
	if m.hint == "" {
		return view
	}
	hint := m.hint
	if m.width > 0 {
		hint = truncate.StringWithTail(hint, uint(m.width), "…")
	}
	return view + "\n" + styles.Hint.Render(hint)
}
