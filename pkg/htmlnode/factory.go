// Package htmlnode implements gee.Factory over golang.org/x/net/html nodes,
// so builders can produce trees that interoperate with the html parser and
// renderer.
//
// Properties become attributes: "className" is written as "class", "htmlFor"
// as "for", true booleans as empty attributes, and false booleans remove the
// attribute. Function values (event hooks) have no attribute form and are
// dropped. Style properties are merged into the "style" attribute.
package htmlnode

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/gee/pkg/gee"
	"github.com/vango-dev/gee/pkg/render"
	"github.com/vango-dev/gee/pkg/vdom"
)

var propAliases = map[string]string{
	gee.PropClassName: "class",
	"htmlFor":         "for",
}

// Factory creates *html.Node values. It is stateless and safe for
// concurrent use.
type Factory struct{}

var _ gee.Factory[*html.Node] = Factory{}

// NewBuilder returns a gee.Builder producing html.Node trees.
func NewBuilder(opts ...gee.Option) *gee.Builder[*html.Node] {
	return gee.New[*html.Node](Factory{}, opts...)
}

// CreateElement implements gee.Factory.
func (Factory) CreateElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// CreateText implements gee.Factory.
func (Factory) CreateText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// AppendChild implements gee.Factory. A child that already has a parent is
// moved, since html.Node.AppendChild panics on attached nodes.
func (Factory) AppendChild(parent, child *html.Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	parent.AppendChild(child)
}

// SetProperty implements gee.Factory.
func (Factory) SetProperty(el *html.Node, name string, value any) error {
	if el.Type != html.ElementNode {
		return fmt.Errorf("htmlnode: cannot set %q on a non-element node", name)
	}
	if !vdom.ValidAttrName(name) {
		return fmt.Errorf("htmlnode: invalid attribute name %q", name)
	}
	if alias, ok := propAliases[name]; ok {
		name = alias
	}

	switch v := value.(type) {
	case nil:
		removeAttr(el, name)
	case bool:
		if v {
			setAttr(el, name, "")
		} else {
			removeAttr(el, name)
		}
	case string:
		if v == "" && (name == "class" || name == "id") {
			removeAttr(el, name)
			return nil
		}
		setAttr(el, name, v)
	default:
		if reflect.TypeOf(value).Kind() == reflect.Func {
			return nil
		}
		setAttr(el, name, fmt.Sprint(value))
	}
	return nil
}

// SetStyle implements gee.Factory. The declaration replaces an earlier one
// for the same property.
func (Factory) SetStyle(el *html.Node, name string, value any) error {
	if el.Type != html.ElementNode {
		return fmt.Errorf("htmlnode: cannot style a non-element node")
	}
	if name == "" || strings.ContainsAny(name, " \t\n:;\"") {
		return fmt.Errorf("htmlnode: invalid style property %q", name)
	}
	switch value.(type) {
	case string, int, int64, float64, bool:
	default:
		return fmt.Errorf("htmlnode: style %q has unsupported value type %T", name, value)
	}

	prop := render.CSSPropertyName(name)
	decl := prop + ": " + fmt.Sprint(value)

	var decls []string
	replaced := false
	for _, d := range splitDecls(getAttr(el, "style")) {
		if declName(d) == prop {
			d = decl
			replaced = true
		}
		decls = append(decls, d)
	}
	if !replaced {
		decls = append(decls, decl)
	}
	setAttr(el, "style", strings.Join(decls, "; ")+";")
	return nil
}

// ID implements gee.Factory.
func (Factory) ID(el *html.Node) string {
	return getAttr(el, "id")
}

// ClassName implements gee.Factory.
func (Factory) ClassName(el *html.Node) string {
	return getAttr(el, "class")
}

// Node implements gee.Factory.
func (Factory) Node(v any) (*html.Node, bool) {
	n, ok := v.(*html.Node)
	return n, ok && n != nil
}

// Render writes n as HTML.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// RenderString returns n as an HTML string.
func RenderString(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

func splitDecls(style string) []string {
	var out []string
	for _, d := range strings.Split(style, ";") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

func declName(decl string) string {
	name, _, _ := strings.Cut(decl, ":")
	return strings.TrimSpace(name)
}
