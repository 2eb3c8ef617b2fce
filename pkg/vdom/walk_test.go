package vdom

import (
	"testing"

	"github.com/vango-dev/gee/pkg/gee"
)

func sampleTree(t *testing.T) *VNode {
	t.Helper()
	b := NewBuilder()
	return gee.Must(b.Build("#firstDiv div1",
		gee.Must(b.Build(".b", "bold text")),
		gee.Must(b.Build("div2",
			gee.Must(b.Build(".i", "italic text")),
			gee.Must(b.Build("div3", "plain text", gee.Must(b.Build(".br")), gee.Must(b.Build(".u #under", "underlined text")))),
		)),
	))
}

func TestFindByID(t *testing.T) {
	root := sampleTree(t)
	if n := root.FindByID("under"); n == nil || n.Tag != "u" {
		t.Errorf("FindByID(under) = %+v", n)
	}
	if n := root.FindByID("firstDiv"); n != root {
		t.Error("FindByID should match the root")
	}
	if root.FindByID("missing") != nil {
		t.Error("FindByID(missing) should be nil")
	}
}

func TestFindByClass(t *testing.T) {
	root := sampleTree(t)
	if got := root.FindByClass("div3"); len(got) != 1 {
		t.Errorf("FindByClass(div3) = %d nodes", len(got))
	}
	if got := root.FindByClass("nope"); len(got) != 0 {
		t.Errorf("FindByClass(nope) = %d nodes", len(got))
	}
}

func TestTextContentAndCount(t *testing.T) {
	root := sampleTree(t)
	want := "bold textitalic textplain textunderlined text"
	if got := root.TextContent(); got != want {
		t.Errorf("TextContent() = %q, want %q", got, want)
	}
	elements, texts := root.Count()
	if elements != 7 || texts != 4 {
		t.Errorf("Count() = %d, %d; want 7, 4", elements, texts)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	root := sampleTree(t)
	visited := 0
	root.Walk(func(n *VNode) bool {
		visited++
		return n == root
	})
	if visited != 3 {
		t.Errorf("visited = %d, want root plus its 2 children", visited)
	}
}
