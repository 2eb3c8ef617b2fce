package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vango-dev/gee/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer renders VNode trees to HTML. It holds no per-render state and
// can be shared.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	ew := &errWriter{w: w}
	r.renderNode(ew, node, 0)
	return ew.err
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) WriteString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (r *Renderer) renderNode(w *errWriter, node *vdom.VNode, depth int) {
	if node == nil {
		return
	}

	switch node.Kind {
	case vdom.KindElement:
		r.renderElement(w, node, depth)
	case vdom.KindText:
		w.WriteString(escapeHTML(node.Text))
	default:
		if w.err == nil {
			w.err = fmt.Errorf("render: unknown node kind: %d", node.Kind)
		}
	}
}

func (r *Renderer) renderElement(w *errWriter, node *vdom.VNode, depth int) {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	w.WriteString("<")
	w.WriteString(tag)
	r.renderAttributes(w, node)
	w.WriteString(">")

	if IsVoidElement(tag) {
		if r.config.Pretty {
			w.WriteString("\n")
		}
		return
	}

	hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag) && hasElementChild(node)
	if r.config.Pretty && hasBlockChildren {
		w.WriteString("\n")
	}

	for _, child := range node.Children {
		if r.config.Pretty && hasBlockChildren && child.Kind == vdom.KindText {
			r.writeIndent(w, depth+1)
			r.renderNode(w, child, depth+1)
			w.WriteString("\n")
			continue
		}
		r.renderNode(w, child, depth+1)
	}

	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}

	w.WriteString("</")
	w.WriteString(tag)
	w.WriteString(">")
	if r.config.Pretty {
		w.WriteString("\n")
	}
}

func hasElementChild(node *vdom.VNode) bool {
	for _, c := range node.Children {
		if c.Kind == vdom.KindElement && !isInlineElement(c.Tag) {
			return true
		}
	}
	return false
}

// renderAttributes renders properties in sorted order followed by the
// style attribute.
func (r *Renderer) renderAttributes(w *errWriter, node *vdom.VNode) {
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		// Event hooks, internal props and unwritable names have no HTML form.
		if vdom.IsEventHandler(value) || strings.HasPrefix(key, "_") || !vdom.ValidAttrName(key) {
			continue
		}
		if key == "style" && len(node.Style) > 0 {
			continue
		}

		if IsBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					w.WriteString(" ")
					w.WriteString(key)
				}
				continue
			}
		}

		strValue := attrToString(value)
		if strValue == "" {
			continue
		}
		w.WriteString(" ")
		w.WriteString(key)
		w.WriteString(`="`)
		w.WriteString(escapeAttr(strValue))
		w.WriteString(`"`)
	}

	if css := StyleString(node.Style); css != "" {
		w.WriteString(` style="`)
		w.WriteString(escapeAttr(css))
		w.WriteString(`"`)
	}
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (r *Renderer) writeIndent(w *errWriter, depth int) {
	w.WriteString(strings.Repeat(r.config.Indent, depth))
}
