package screen

import (
	"bytes"
	"testing"
	"time"

	"github.com/atomicstack/numcanvas/internal/canvas"
	"github.com/atomicstack/numcanvas/internal/testutil"
)

func TestAnimationOffsetWraps(t *testing.T) {
	clock := testutil.NewClock()
	a := NewAnimation([]string{"ab"}, 150*time.Millisecond)
	a.Configure(3, 5)
	a.Activate(clock.Now())
	if a.Offset() != -2 {
		t.Fatalf("expected offset to start at -2, got %d", a.Offset())
	}

	clock.Advance(100 * time.Millisecond)
	if a.Tick(clock.Now()) {
		t.Fatalf("expected no frame before the interval")
	}

	want := []int{-1, 0, 1, 2, 3, 4, -2, -1}
	for i, w := range want {
		clock.Advance(150 * time.Millisecond)
		if !a.Tick(clock.Now()) {
			t.Fatalf("tick %d: expected a frame", i)
		}
		if a.Offset() != w {
			t.Fatalf("tick %d: expected offset %d, got %d", i, w, a.Offset())
		}
	}
}

func TestAnimationRedrawLeavesOnlyCurrentSprite(t *testing.T) {
	clock := testutil.NewClock()
	a := NewAnimation([]string{"ab", "cd"}, 150*time.Millisecond)
	a.Configure(4, 5)
	a.Activate(clock.Now())

	var buf bytes.Buffer
	for i := 0; i < 9; i++ {
		clock.Advance(150 * time.Millisecond)
		a.Tick(clock.Now())
		if err := a.Update(&buf); err != nil {
			t.Fatalf("update: %v", err)
		}
		want := canvas.Generate(4, 5)
		want.BlitText([]string{"ab", "cd"}, 1, a.Offset())
		got, exp := a.Canvas().Lines(), want.Lines()
		for y := range exp {
			if got[y] != exp[y] {
				t.Fatalf("frame %d row %d: expected %q, got %q", i, y, exp[y], got[y])
			}
		}
	}
	if a.Offset() != 0 {
		t.Fatalf("expected offset 0 after wrapping, got %d", a.Offset())
	}
}

func TestAnimationCapabilities(t *testing.T) {
	a := NewAnimation(nil, 0)
	if !a.Capabilities().PerFrameRedraw {
		t.Fatalf("expected per-frame redraw")
	}
	if a.Offset() != -len(DefaultSprite[0]) {
		t.Fatalf("expected offset -%d, got %d", len(DefaultSprite[0]), a.Offset())
	}
}
