package htmlnode

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Page wraps body in a complete HTML5 document with a doctype, a UTF-8
// charset and an optional title. A body that is already attached is moved.
func Page(title string, body *html.Node) *html.Node {
	f := Factory{}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := f.CreateElement("html")
	setAttr(root, "lang", "en")
	doc.AppendChild(root)

	head := f.CreateElement("head")
	head.AppendChild(&html.Node{
		Type:     html.ElementNode,
		Data:     "meta",
		DataAtom: atom.Meta,
		Attr:     []html.Attribute{{Key: "charset", Val: "utf-8"}},
	})
	if title != "" {
		t := f.CreateElement("title")
		t.AppendChild(f.CreateText(title))
		head.AppendChild(t)
	}
	root.AppendChild(head)

	bodyEl := f.CreateElement("body")
	if body != nil {
		f.AppendChild(bodyEl, body)
	}
	root.AppendChild(bodyEl)
	return doc
}
