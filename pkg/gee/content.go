package gee

import (
	"fmt"
	"strings"
)

// Named is a content item appended as a child and captured under Name.
type Named[N any] struct {
	Name string
	Node N
}

// Captured is a content item appended as a child and captured under the
// node's id, or its first class when the id is empty.
type Captured[N any] struct {
	Node N
}

// Name returns a content item that captures node under name.
func Name[N any](name string, node N) Named[N] {
	return Named[N]{Name: name, Node: node}
}

// Capture returns a content item that captures node under its own id or
// first class.
func Capture[N any](node N) Captured[N] {
	return Captured[N]{Node: node}
}

// Captures maps capture names to the captured children.
type Captures[N any] map[string]N

// Names returns the capture names in sorted order.
func (c Captures[N]) Names() []string {
	return sortedKeys(c)
}

// sequence turns the variadic content list into the ordered item sequence.
// A single argument is the whole content: falsy values add nothing, strings
// and nodes are one child, slices are the sequence itself.
func (b *Builder[N]) sequence(content []any) []any {
	if len(content) != 1 {
		return content
	}
	c := content[0]
	if !truthy(c) {
		return nil
	}
	if _, ok := b.factory.Node(c); ok {
		return content
	}
	switch v := c.(type) {
	case []any:
		return v
	case []N:
		items := make([]any, len(v))
		for i, n := range v {
			items[i] = n
		}
		return items
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items
	}
	return content
}

// appendItem appends one content item to el. It reports whether a child was
// appended; unrecognized items return a non-nil error.
func (b *Builder[N]) appendItem(el N, caps Captures[N], index int, item any) (bool, error) {
	f := b.factory

	if n, ok := f.Node(item); ok {
		f.AppendChild(el, n)
		return true, nil
	}

	switch v := item.(type) {
	case string:
		f.AppendChild(el, f.CreateText(v))
		return true, nil

	case Named[N]:
		if n, ok := f.Node(v.Node); ok {
			f.AppendChild(el, n)
			caps[v.Name] = n
			return true, nil
		}

	case Captured[N]:
		if n, ok := f.Node(v.Node); ok {
			f.AppendChild(el, n)
			b.captureByIdentity(caps, n)
			return true, nil
		}

	case []any:
		if len(v) == 2 {
			name, okName := captureName(v[0])
			n, okNode := f.Node(v[1])
			if okName && okNode {
				f.AppendChild(el, n)
				caps[name] = n
				return true, nil
			}
			break
		}
		if len(v) > 0 {
			if n, ok := f.Node(v[0]); ok {
				f.AppendChild(el, n)
				b.captureByIdentity(caps, n)
				return true, nil
			}
		}
	}

	return false, unrecognized(index, item)
}

func (b *Builder[N]) captureByIdentity(caps Captures[N], n N) {
	if id := b.factory.ID(n); id != "" {
		caps[id] = n
		return
	}
	if classes := strings.Fields(b.factory.ClassName(n)); len(classes) > 0 {
		caps[classes[0]] = n
	}
}

// captureName accepts strings and scalar names, which are formatted.
func captureName(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case fmt.Stringer:
		return x.String(), true
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(x), true
	}
	return "", false
}
