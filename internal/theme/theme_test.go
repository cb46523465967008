package theme

import (
	"strings"
	"testing"
)

func TestDefaultStylesRenderText(t *testing.T) {
	s := Default()
	for name, style := range map[string]interface{ Render(...string) string }{
		"hint":  s.Hint,
		"error": s.Error,
	} {
		if out := style.Render("abc"); !strings.Contains(out, "abc") {
			t.Fatalf("%s: expected rendered text to contain input, got %q", name, out)
		}
	}
	if Default() != Default() {
		t.Fatalf("expected shared style set")
	}
}
