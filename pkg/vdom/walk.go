package vdom

import "strings"

// Walk calls fn for v and every descendant in document order. Returning
// false from fn skips the node's children.
func (v *VNode) Walk(fn func(*VNode) bool) {
	if v == nil {
		return
	}
	if !fn(v) {
		return
	}
	for _, c := range v.Children {
		c.Walk(fn)
	}
}

// FindByID returns the first element with the given id, or nil.
func (v *VNode) FindByID(id string) *VNode {
	var found *VNode
	v.Walk(func(n *VNode) bool {
		if found != nil {
			return false
		}
		if n.Kind == KindElement && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindByClass returns every element carrying the class name.
func (v *VNode) FindByClass(name string) []*VNode {
	var out []*VNode
	v.Walk(func(n *VNode) bool {
		if n.Kind == KindElement && n.HasClass(name) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// TextContent returns the concatenated text of v and its descendants.
func (v *VNode) TextContent() string {
	var b strings.Builder
	v.Walk(func(n *VNode) bool {
		if n.Kind == KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}

// Count returns the number of element and text nodes in the tree.
func (v *VNode) Count() (elements, texts int) {
	v.Walk(func(n *VNode) bool {
		switch n.Kind {
		case KindElement:
			elements++
		case KindText:
			texts++
		}
		return true
	})
	return elements, texts
}
