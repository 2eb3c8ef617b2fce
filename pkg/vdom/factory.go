package vdom

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/vango-dev/gee/pkg/gee"
)

// propAliases maps builder property names to attribute names.
var propAliases = map[string]string{
	gee.PropClassName: "class",
	"htmlFor":         "for",
}

// styleName accepts camelCase, kebab-case and custom (--x) property names.
var styleName = regexp.MustCompile(`^(--)?-?[A-Za-z_][A-Za-z0-9_-]*$`)

// Factory creates VNodes. It is stateless and safe for concurrent use.
type Factory struct{}

var _ gee.Factory[*VNode] = Factory{}

// NewBuilder returns a gee.Builder producing VNode trees.
func NewBuilder(opts ...gee.Option) *gee.Builder[*VNode] {
	return gee.New[*VNode](Factory{}, opts...)
}

// CreateElement implements gee.Factory.
func (Factory) CreateElement(tag string) *VNode {
	return Element(tag)
}

// CreateText implements gee.Factory.
func (Factory) CreateText(text string) *VNode {
	return Text(text)
}

// AppendChild implements gee.Factory. A child that already has a parent is
// moved.
func (Factory) AppendChild(parent, child *VNode) {
	if child.Parent != nil {
		child.Parent.removeChild(child)
	}
	child.Parent = parent
	parent.Children = append(parent.Children, child)
}

func (v *VNode) removeChild(child *VNode) {
	for i, c := range v.Children {
		if c == child {
			v.Children = append(v.Children[:i], v.Children[i+1:]...)
			break
		}
	}
	child.Parent = nil
}

// SetProperty implements gee.Factory. Empty class and id values remove the
// attribute.
func (Factory) SetProperty(el *VNode, name string, value any) error {
	if el.Kind != KindElement {
		return fmt.Errorf("vdom: cannot set %q on a %s node", name, el.Kind)
	}
	if !ValidAttrName(name) {
		return fmt.Errorf("vdom: invalid property name %q", name)
	}
	if alias, ok := propAliases[name]; ok {
		name = alias
	}
	if (name == "class" || name == "id") && value == "" {
		delete(el.Props, name)
		return nil
	}
	el.Props[name] = value
	return nil
}

// ValidAttrName reports whether name can be written as an HTML attribute
// name: non-empty, without whitespace, quotes, '<', '>', '/', '=' or control
// characters.
func ValidAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return false
		}
		switch r {
		case ' ', '"', '\'', '<', '>', '/', '=':
			return false
		}
	}
	return true
}

// SetStyle implements gee.Factory. It rejects malformed property names and
// values that cannot be written as CSS.
func (Factory) SetStyle(el *VNode, name string, value any) error {
	if el.Kind != KindElement {
		return fmt.Errorf("vdom: cannot style a %s node", el.Kind)
	}
	if !styleName.MatchString(name) {
		return fmt.Errorf("vdom: invalid style property %q", name)
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
	default:
		return fmt.Errorf("vdom: style %q has unsupported value type %T", name, value)
	}
	el.Style[name] = value
	return nil
}

// ID implements gee.Factory.
func (Factory) ID(el *VNode) string {
	return el.ID()
}

// ClassName implements gee.Factory.
func (Factory) ClassName(el *VNode) string {
	return el.ClassName()
}

// Node implements gee.Factory.
func (Factory) Node(v any) (*VNode, bool) {
	n, ok := v.(*VNode)
	return n, ok && n != nil
}

// IsEventHandler returns true if the value is a function.
func IsEventHandler(value any) bool {
	if value == nil {
		return false
	}
	return reflect.TypeOf(value).Kind() == reflect.Func
}
