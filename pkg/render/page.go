package render

import (
	"io"

	"github.com/vango-dev/gee/pkg/vdom"
)

// Page describes a complete HTML document.
type Page struct {
	// Title is the document title.
	Title string

	// Lang is the html lang attribute. Defaults to "en".
	Lang string

	// Head is trusted markup appended to <head> verbatim.
	Head string

	// Body is rendered inside <body>.
	Body *vdom.VNode
}

// RenderPage writes a full HTML5 document.
func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	ew := &errWriter{w: w}
	ew.WriteString("<!DOCTYPE html>\n<html lang=\"")
	ew.WriteString(escapeAttr(lang))
	ew.WriteString("\">\n<head>\n<meta charset=\"utf-8\">\n")
	if page.Title != "" {
		ew.WriteString("<title>")
		ew.WriteString(escapeHTML(page.Title))
		ew.WriteString("</title>\n")
	}
	ew.WriteString(page.Head)
	ew.WriteString("</head>\n<body>\n")
	r.renderNode(ew, page.Body, 0)
	ew.WriteString("\n</body>\n</html>\n")
	return ew.err
}
