package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes and event hooks
	Style    Props    // Style properties
	Children []*VNode // Child nodes
	Text     string   // For KindText
	Parent   *VNode   // Set by AppendChild
}

// Props holds attributes and event hooks.
type Props map[string]any

// Element creates an empty element node.
func Element(tag string) *VNode {
	return &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: make(Props),
		Style: make(Props),
	}
}

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// ID returns the element's id, or "".
func (v *VNode) ID() string {
	if v == nil {
		return ""
	}
	s, _ := v.Props["id"].(string)
	return s
}

// ClassName returns the element's class list, or "".
func (v *VNode) ClassName() string {
	if v == nil {
		return ""
	}
	s, _ := v.Props["class"].(string)
	return s
}

// HasClass reports whether the class list contains name.
func (v *VNode) HasClass(name string) bool {
	for _, c := range strings.Fields(v.ClassName()) {
		if c == name {
			return true
		}
	}
	return false
}

// IsInteractive returns true if this node has event hooks.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key, value := range v.Props {
		if strings.HasPrefix(key, "on") && IsEventHandler(value) {
			return true
		}
	}
	return false
}
