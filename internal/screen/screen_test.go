package screen

import (
	"testing"

	"github.com/atomicstack/numcanvas/internal/canvas"
)

func TestBaseDrawHookNeedsCustomContent(t *testing.T) {
	for _, custom := range []bool{false, true} {
		drawn := 0
		b := newBase(Author, Capabilities{CustomContent: custom}, func() []string { return []string{"xy"} })
		b.draw = func(c *canvas.Canvas, _ []string, _ canvas.Point) {
			drawn++
			c.SetCell(0, 0, canvas.Glyph('#'))
		}
		b.Configure(3, 4)
		want := []string{"    ", " xy ", "    "}
		if custom {
			want = []string{"#   ", "    ", "    "}
		}
		got := b.Canvas().Lines()
		for y := range want {
			if got[y] != want[y] {
				t.Fatalf("custom=%v row %d: expected %q, got %q", custom, y, want[y], got[y])
			}
		}
		if custom != (drawn == 1) {
			t.Fatalf("custom=%v: expected draw hook calls to follow the capability, got %d", custom, drawn)
		}
	}
}
