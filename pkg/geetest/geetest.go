package geetest

import (
	"sort"
	"strings"
	"testing"

	"github.com/vango-dev/gee/pkg/gee"
	"github.com/vango-dev/gee/pkg/render"
	"github.com/vango-dev/gee/pkg/vdom"
)

// Build calls b.Build and fails the test on error.
func Build(t testing.TB, b *gee.Builder[*vdom.VNode], descriptor string, content ...any) *gee.Result[*vdom.VNode] {
	t.Helper()
	res, err := b.Build(descriptor, content...)
	if err != nil {
		t.Fatalf("Build(%q): %v", descriptor, err)
	}
	return res
}

// RenderToString renders node compactly, returning "" on error.
func RenderToString(node *vdom.VNode) string {
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectHTML asserts that node renders exactly as want.
func ExpectHTML(t testing.TB, node *vdom.VNode, want string) {
	t.Helper()
	if got := RenderToString(node); got != want {
		t.Errorf("rendered output mismatch\n got: %s\nwant: %s", truncate(got, 500), want)
	}
}

// ExpectContains asserts that the rendered output contains expected.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the rendered output does not contain
// unexpected.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectCaptures asserts that res captured exactly names, in any order.
func ExpectCaptures(t testing.TB, res *gee.Result[*vdom.VNode], names ...string) {
	t.Helper()
	got := res.Captures.Names()
	want := append([]string(nil), names...)
	sort.Strings(want)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("captures = %v, want %v", got, want)
	}
	for _, name := range names {
		if res.Captures[name] == nil {
			t.Errorf("capture %q is nil", name)
		}
	}
}

// ExpectCaptured asserts that the capture name renders as want.
func ExpectCaptured(t testing.TB, res *gee.Result[*vdom.VNode], name, want string) {
	t.Helper()
	node, ok := res.Captures[name]
	if !ok {
		t.Errorf("no capture %q in %v", name, res.Captures.Names())
		return
	}
	ExpectHTML(t, node, want)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
