package gee

import (
	"errors"
	"math"
	"testing"
)

func TestBuildValueInvalidDescriptor(t *testing.T) {
	rec := &recorder{}
	b, f := newTestBuilder(WithObserver(rec))

	for _, desc := range []any{42, nil, []any{"x"}, map[string]any{}} {
		res, err := b.BuildValue(desc, nil, nil)
		if res != nil {
			t.Errorf("BuildValue(%v) produced an element", desc)
		}
		if !errors.Is(err, ErrInvalidDescriptor) {
			t.Errorf("BuildValue(%v) err = %v, want ErrInvalidDescriptor", desc, err)
		}
	}
	if f.created != 0 {
		t.Errorf("factory created %d nodes, want 0", f.created)
	}
	if len(rec.failed) != 4 {
		t.Errorf("observer failures = %d, want 4", len(rec.failed))
	}
}

func TestBuildValueShapes(t *testing.T) {
	b, _ := newTestBuilder()
	child := Must(b.Build("#kid"))

	tests := []struct {
		name         string
		second       any
		third        any
		wantChildren int
		wantProp     string
	}{
		{name: "bag then text", second: map[string]any{"href": "link"}, third: "the link", wantChildren: 1, wantProp: "href"},
		{name: "string bag", second: map[string]string{"href": "link"}, third: nil, wantChildren: 0, wantProp: "href"},
		{name: "empty bag", second: map[string]any{}, third: "t", wantChildren: 1},
		{name: "text as second", second: "xxx", third: "ignored", wantChildren: 1},
		{name: "node as second", second: child, third: "ignored", wantChildren: 1},
		{name: "sequence as second", second: []any{"a", "b", child}, third: "ignored", wantChildren: 3},
		{name: "falsy second keeps third", second: nil, third: "kept", wantChildren: 1},
		{name: "empty string second keeps third", second: "", third: []any{"a", "b"}, wantChildren: 2},
		{name: "number second is ignored content", second: 5, third: "ignored", wantChildren: 0},
		{name: "nil Attrs second keeps third", second: Attrs(nil), third: "kept", wantChildren: 1},
		{name: "nil string map second keeps third", second: map[string]string(nil), third: "kept", wantChildren: 1},
		{name: "nil string slice second keeps third", second: []string(nil), third: "kept", wantChildren: 1},
		{name: "nil node slice second keeps third", second: []*fakeNode(nil), third: "kept", wantChildren: 1},
		{name: "nil node second keeps third", second: (*fakeNode)(nil), third: "kept", wantChildren: 1},
		{name: "int32 zero second keeps third", second: int32(0), third: "kept", wantChildren: 1},
		{name: "float32 zero second keeps third", second: float32(0), third: "kept", wantChildren: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := b.BuildValue("x", tt.second, tt.third)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := len(res.Node.children); got != tt.wantChildren {
				t.Errorf("children = %d, want %d", got, tt.wantChildren)
			}
			if tt.wantProp != "" {
				if _, ok := res.Node.props[tt.wantProp]; !ok {
					t.Errorf("property %q not applied", tt.wantProp)
				}
			}
		})
	}
}

func TestBuildValueNamedCaptures(t *testing.T) {
	b, _ := newTestBuilder()
	y := Must(b.BuildValue(".y", "in child1", nil))
	z := Must(b.BuildValue(".z", "in child2", nil))

	res, err := b.BuildValue("x", []any{[]any{"child1", y}, []any{"child2", z}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Captures["child1"] != y || res.Captures["child2"] != z {
		t.Errorf("captures = %v", res.Captures)
	}
}

func TestBuildValueScalarPairName(t *testing.T) {
	b, _ := newTestBuilder()
	n := Must(b.Build("n"))
	res, err := b.BuildValue("x", []any{[]any{7, n}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Captures["7"] != n {
		t.Errorf("captures = %v", res.Captures)
	}
}

func TestBuildValueStrictTypedNilKeepsContent(t *testing.T) {
	b, _ := newTestBuilder(WithMode(Strict))

	res, err := b.BuildValue("x", Attrs(nil), "kept")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Node.children) != 1 || res.Node.children[0].text != "kept" {
		t.Errorf("children = %v, want [kept]", res.Node.children)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		v    any
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{"", false},
		{"a", true},
		{0, false},
		{1, true},
		{0.0, false},
		{[]any(nil), false},
		{[]any{}, true},
		{map[string]any{}, true},
		{struct{}{}, true},
		{Attrs(nil), false},
		{Attrs{}, true},
		{map[string]string(nil), false},
		{[]string(nil), false},
		{[]*fakeNode(nil), false},
		{(*fakeNode)(nil), false},
		{(func())(nil), false},
		{int8(0), false},
		{int32(3), true},
		{uint(0), false},
		{float32(0), false},
		{float32(0.5), true},
		{math.NaN(), false},
		{Mode(0), false},
	}
	for _, tt := range tests {
		if got := truthy(tt.v); got != tt.want {
			t.Errorf("truthy(%#v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": Lenient, "lenient": Lenient, "strict": Strict} {
		got, ok := ParseMode(in)
		if !ok || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParseMode("loose"); ok {
		t.Error("ParseMode(loose) should fail")
	}
	if Strict.String() != "strict" || Lenient.String() != "lenient" || Mode(9).String() != "unknown" {
		t.Error("Mode.String mismatch")
	}
}
