package gee

import (
	stderrors "errors"
	"strings"
)

// fakeNode is a minimal host node for exercising the builder.
type fakeNode struct {
	tag      string
	text     string
	isText   bool
	props    map[string]any
	style    map[string]any
	children []*fakeNode
}

var errUnsupported = stderrors.New("unsupported")

// fakeFactory rejects style properties listed in badStyles and properties
// listed in badProps. panicStyles makes SetStyle panic.
type fakeFactory struct {
	badStyles   map[string]bool
	panicStyles map[string]bool
	badProps    map[string]bool
	created     int
}

func (f *fakeFactory) CreateElement(tag string) *fakeNode {
	f.created++
	return &fakeNode{tag: tag, props: map[string]any{}, style: map[string]any{}}
}

func (f *fakeFactory) CreateText(text string) *fakeNode {
	f.created++
	return &fakeNode{text: text, isText: true}
}

func (f *fakeFactory) AppendChild(parent, child *fakeNode) {
	parent.children = append(parent.children, child)
}

func (f *fakeFactory) SetProperty(el *fakeNode, name string, value any) error {
	if f.badProps[name] {
		return errUnsupported
	}
	el.props[name] = value
	return nil
}

func (f *fakeFactory) SetStyle(el *fakeNode, name string, value any) error {
	if f.panicStyles[name] {
		panic("host exploded on " + name)
	}
	if f.badStyles[name] {
		return errUnsupported
	}
	el.style[name] = value
	return nil
}

func (f *fakeFactory) ID(el *fakeNode) string {
	s, _ := el.props[PropID].(string)
	return s
}

func (f *fakeFactory) ClassName(el *fakeNode) string {
	s, _ := el.props[PropClassName].(string)
	return s
}

func (f *fakeFactory) Node(v any) (*fakeNode, bool) {
	n, ok := v.(*fakeNode)
	return n, ok && n != nil
}

func (n *fakeNode) String() string {
	if n.isText {
		return n.text
	}
	var b strings.Builder
	b.WriteString("<" + n.tag + ">")
	for _, c := range n.children {
		b.WriteString(c.String())
	}
	b.WriteString("</" + n.tag + ">")
	return b.String()
}

// recorder is an Observer that records events.
type recorder struct {
	built   []string
	skipped []SkipReason
	failed  []error
}

func (r *recorder) ElementBuilt(tag string, children, captures int) {
	r.built = append(r.built, tag)
}

func (r *recorder) Skipped(reason SkipReason, detail string) {
	r.skipped = append(r.skipped, reason)
}

func (r *recorder) Failed(err error) {
	r.failed = append(r.failed, err)
}
