package document

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/gee/internal/errors"
	"github.com/vango-dev/gee/pkg/gee"
	"github.com/vango-dev/gee/pkg/geetest"
	"github.com/vango-dev/gee/pkg/render"
	"github.com/vango-dev/gee/pkg/vdom"
)

const cardYAML = `
el: "#card panel"
attrs:
  title: Settings
  style:
    borderWidth: 1px
content:
  - el: .h2
    content: Settings
  - [body, {el: .p, content: "Hello"}]
  - [{el: "#footer"}]
  - done
`

func evaluate(t *testing.T, src string, format Format, opts ...gee.Option) (*Evaluation[*vdom.VNode], error) {
	t.Helper()
	tree, err := Decode(strings.NewReader(src), format)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return Evaluate(context.Background(), vdom.NewBuilder(opts...), tree)
}

func TestEvaluateYAML(t *testing.T) {
	ev, err := evaluate(t, cardYAML, FormatYAML)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	geetest.ExpectHTML(t, ev.Root.Node,
		`<div class="panel" id="card" title="Settings" style="border-width: 1px;">`+
			`<h2>Settings</h2><p>Hello</p><div id="footer"></div>done</div>`)
	geetest.ExpectCaptures(t, ev.Root, "body", "footer")
	geetest.ExpectCaptured(t, ev.Root, "body", "<p>Hello</p>")

	if ev.Elements != 4 {
		t.Errorf("Elements = %d, want 4", ev.Elements)
	}
	if paths := ev.CapturePaths(); len(paths) != 1 || paths[0] != "root" {
		t.Errorf("CapturePaths = %v, want [root]", paths)
	}
}

func TestEvaluateJSONMatchesYAML(t *testing.T) {
	const src = `{
		"el": "#card panel",
		"attrs": {"title": "Settings", "style": {"borderWidth": "1px"}},
		"content": [
			{"el": ".h2", "content": "Settings"},
			["body", {"el": ".p", "content": "Hello"}],
			[{"el": "#footer"}],
			"done"
		]
	}`
	fromJSON, err := evaluate(t, src, FormatJSON)
	if err != nil {
		t.Fatalf("Evaluate JSON: %v", err)
	}
	fromYAML, err := evaluate(t, cardYAML, FormatYAML)
	if err != nil {
		t.Fatalf("Evaluate YAML: %v", err)
	}

	r := render.NewRenderer(render.RendererConfig{})
	a, _ := r.RenderToString(fromJSON.Root.Node)
	b, _ := r.RenderToString(fromYAML.Root.Node)
	if a != b {
		t.Errorf("JSON and YAML documents differ:\n%s\n%s", a, b)
	}
}

func TestEvaluateShapes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "bare descriptor",
			src:  `el: .hr`,
			want: `<hr>`,
		},
		{
			name: "text content",
			src:  `{el: .span, content: hi}`,
			want: `<span>hi</span>`,
		},
		{
			name: "single node content",
			src:  "el: .ul\ncontent: {el: .li, content: one}",
			want: `<ul><li>one</li></ul>`,
		},
		{
			name: "attrs without content",
			src:  "el: .a\nattrs: {href: /docs}",
			want: `<a href="/docs"></a>`,
		},
		{
			name: "null attrs",
			src:  "el: .b\nattrs: null\ncontent: bold",
			want: `<b>bold</b>`,
		},
		{
			name: "empty string content",
			src:  `{el: .i, content: ""}`,
			want: `<i></i>`,
		},
	}

	r := render.NewRenderer(render.RendererConfig{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := evaluate(t, tt.src, FormatYAML)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			got, err := r.RenderToString(ev.Root.Node)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEvaluateNestedCaptures(t *testing.T) {
	src := `
el: .form
content:
  - el: "#fields"
    content:
      - [{el: ".input #email"}]
      - [{el: ".input #password"}]
  - [submit, {el: .button, content: Save}]
`
	ev, err := evaluate(t, src, FormatYAML)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if got := strings.Join(ev.CapturePaths(), ","); got != "root,root.content[0]" {
		t.Fatalf("CapturePaths = %s", got)
	}
	inner := ev.Captures["root.content[0]"]
	if got := strings.Join(inner.Names(), ","); got != "email,password" {
		t.Errorf("inner captures = %s", got)
	}
	if got := strings.Join(ev.Root.Captures.Names(), ","); got != "submit" {
		t.Errorf("root captures = %s", got)
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		mode     gee.Mode
		wantCode string
		wantPath string
	}{
		{
			name:     "root is a list",
			src:      `[a, b]`,
			wantCode: "G022",
			wantPath: "root",
		},
		{
			name:     "missing el",
			src:      `content: hi`,
			wantCode: "G022",
			wantPath: "root",
		},
		{
			name:     "unknown key",
			src:      "el: .p\nchildren: []",
			wantCode: "G022",
			wantPath: "root",
		},
		{
			name:     "attrs not a mapping",
			src:      "el: .p\nattrs: [1, 2]",
			wantCode: "G022",
			wantPath: "root.attrs",
		},
		{
			name:     "nested malformed node",
			src:      "el: .ul\ncontent:\n  - {el: .li}\n  - {content: x}",
			wantCode: "G022",
			wantPath: "root.content[1]",
		},
		{
			name:     "malformed node inside pair",
			src:      "el: .ul\ncontent:\n  - [first, {nope: 1}]",
			wantCode: "G022",
			wantPath: "root.content[0][1]",
		},
		{
			name:     "descriptor not a string",
			src:      "el: .ul\ncontent:\n  - {el: 42}",
			wantCode: "G001",
			wantPath: "root.content[0]",
		},
		{
			name:     "unrecognized content in strict mode",
			src:      "el: .p\ncontent: [1, text]",
			mode:     gee.Strict,
			wantCode: "G003",
			wantPath: "root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evaluate(t, tt.src, FormatYAML, gee.WithMode(tt.mode))
			if err == nil {
				t.Fatal("expected error")
			}
			if code := errors.CodeOf(err); code != tt.wantCode {
				t.Errorf("code = %s, want %s (%v)", code, tt.wantCode, err)
			}
			var ge *errors.Error
			if !stderrors.As(err, &ge) {
				t.Fatalf("error %T is not *errors.Error", err)
			}
			if ge.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", ge.Path, tt.wantPath)
			}
		})
	}
}

func TestEvaluateLenientSkipsUnrecognized(t *testing.T) {
	ev, err := evaluate(t, "el: .p\ncontent: [1, text, true]", FormatYAML)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got := ev.Root.Node.TextContent(); got != "text" {
		t.Errorf("text = %q, want %q", got, "text")
	}
}

func TestEvaluateCanceledContext(t *testing.T) {
	tree, err := Decode(strings.NewReader(`el: .p`), FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Evaluate(ctx, vdom.NewBuilder(), tree)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		format Format
	}{
		{"bad yaml", "el: [", FormatYAML},
		{"bad json", `{"el":`, FormatJSON},
		{"empty", "", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src), tt.format)
			if code := errors.CodeOf(err); code != "G021" {
				t.Errorf("code = %q, want G021 (%v)", code, err)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.json")
	if err := os.WriteFile(path, []byte(`{"el": ".p", "content": "x"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	tree, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if m, ok := tree.(map[string]any); !ok || m["el"] != ".p" {
		t.Errorf("tree = %#v", tree)
	}

	_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	if code := errors.CodeOf(err); code != "G020" {
		t.Errorf("missing file code = %q, want G020", code)
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"a.json": FormatJSON,
		"A.JSON": FormatJSON,
		"a.yaml": FormatYAML,
		"a.yml":  FormatYAML,
		"a":      FormatYAML,
	}
	for path, want := range tests {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %s, want %s", path, got, want)
		}
	}
}
