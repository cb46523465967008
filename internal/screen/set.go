package screen

import (
	"time"

	"github.com/atomicstack/numcanvas/internal/content"
)

// Options tune the screens built by NewSet.
type Options struct {
	Params        content.Params
	FrameInterval time.Duration
	MenuHint      string
	Sprite        []string
	Credits       []string
}

// Set holds one screen per displayable ID.
type Set [Count]Screen

// NewSet builds every screen. Screens are not configured yet.
func NewSet(opts Options) Set {
	params := opts.Params.Normalize()
	return Set{
		Menu:      NewMenu(opts.MenuHint),
		Table:     NewTable(params.Table),
		Graphic:   NewGraphic(),
		Equation:  NewEquation(params.Equation),
		Integrals: NewIntegrals(params.Integrals),
		Animation: NewAnimation(opts.Sprite, opts.FrameInterval),
		Author:    NewAuthor(opts.Credits),
	}
}

// Get returns the screen for id, or nil when id is not displayable.
func (s *Set) Get(id ID) Screen {
	if !id.Valid() {
		return nil
	}
	return s[id]
}

// Configure sizes every screen.
func (s *Set) Configure(rows, cols int) {
	for _, sc := range s {
		if sc != nil {
			sc.Configure(rows, cols)
		}
	}
}

// Release drops every canvas.
func (s *Set) Release() {
	for _, sc := range s {
		if sc != nil {
			sc.Release()
		}
	}
}
