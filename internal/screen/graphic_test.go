package screen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/atomicstack/numcanvas/internal/input"
	"github.com/atomicstack/numcanvas/internal/testutil"
)

func TestGraphicZoomLimits(t *testing.T) {
	now := testutil.NewClock().Now()
	g := NewGraphic()
	g.Configure(21, 40)
	var buf bytes.Buffer

	press := func(ev input.KeyEvent, wantZoom int, wantRedraw bool) {
		t.Helper()
		res := g.Render(ev, now)
		if res.Redraw != wantRedraw {
			t.Fatalf("%s: expected redraw %v, got %v", ev, wantRedraw, res.Redraw)
		}
		if g.Zoom() != wantZoom {
			t.Fatalf("%s: expected zoom %d, got %d", ev, wantZoom, g.Zoom())
		}
		if res.Redraw {
			if err := g.Update(&buf); err != nil {
				t.Fatalf("update: %v", err)
			}
		}
	}

	if g.Zoom() != DefaultZoom {
		t.Fatalf("expected default zoom %d, got %d", DefaultZoom, g.Zoom())
	}
	press(input.KeyUp, 3, true)
	press(input.KeyUp, 2, true)
	press(input.KeyUp, 2, false)
	if g.Regenerations() != 2 {
		t.Fatalf("expected 2 regenerations at floor, got %d", g.Regenerations())
	}
	for z := 3; z <= MaxZoom; z++ {
		press(input.KeyDown, z, true)
	}
	press(input.KeyDown, MaxZoom, false)
	if g.Regenerations() != 2+MaxZoom-MinZoom {
		t.Fatalf("expected %d regenerations, got %d", 2+MaxZoom-MinZoom, g.Regenerations())
	}
}

func TestGraphicUpdateWithoutChangeKeepsCanvas(t *testing.T) {
	g := NewGraphic()
	g.Configure(21, 40)
	before := g.Canvas()
	var buf bytes.Buffer
	if err := g.Update(&buf); err != nil {
		t.Fatalf("update: %v", err)
	}
	if g.Canvas() != before || g.Regenerations() != 0 {
		t.Fatalf("expected canvas to be reused")
	}
	if buf.Len() == 0 {
		t.Fatalf("expected a painted frame")
	}
}

func TestGraphicPlotsAxesAndCurves(t *testing.T) {
	g := NewGraphic()
	g.Configure(21, 40)
	lines := g.Canvas().Lines()
	if !strings.Contains(lines[10], "-") {
		t.Fatalf("expected horizontal axis on middle row, got %q", lines[10])
	}
	vertical := 0
	for _, l := range lines {
		if l[20] == '|' {
			vertical++
		}
	}
	if vertical == 0 {
		t.Fatalf("expected vertical axis in middle column")
	}
	if lines[0][20] != 'o' {
		t.Fatalf("expected cos(0) at the top of the axis, got %q", lines[0][20])
	}
	if lines[10][20] != '*' {
		t.Fatalf("expected sin(0) at the origin, got %q", lines[10][20])
	}
}
