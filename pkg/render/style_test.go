package render

import (
	"testing"

	"github.com/vango-dev/gee/pkg/vdom"
)

func TestCSSPropertyName(t *testing.T) {
	tests := map[string]string{
		"color":           "color",
		"backgroundColor": "background-color",
		"borderTopWidth":  "border-top-width",
		"margin-top":      "margin-top",
		"--accentColor":   "--accentColor",
	}
	for in, want := range tests {
		if got := CSSPropertyName(in); got != want {
			t.Errorf("CSSPropertyName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStyleString(t *testing.T) {
	if got := StyleString(nil); got != "" {
		t.Errorf("StyleString(nil) = %q", got)
	}
	got := StyleString(vdom.Props{"zIndex": 2, "color": "red"})
	if want := "color: red; z-index: 2;"; got != want {
		t.Errorf("StyleString = %q, want %q", got, want)
	}
}
