// Package vdom provides the virtual element tree used by gee.
//
// VNode is an in-memory element or text node. Factory implements
// gee.Factory over *VNode, so any gee.Builder can produce virtual trees:
//
//	b := vdom.NewBuilder()
//	res, err := b.BuildWithAttrs(".a #home nav", gee.Attrs{
//	    "href":  "/",
//	    "style": gee.Style{"fontWeight": "bold"},
//	}, "Home")
//
// Virtual trees are rendered to HTML by package render.
//
// # Properties
//
// Properties are stored in Props under their attribute names: the builder's
// "className" becomes "class" and "htmlFor" becomes "for". Style properties
// are kept separately in Style so they can be set one at a time.
package vdom
