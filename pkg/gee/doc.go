// Package gee builds element trees from compact descriptors.
//
// A descriptor names the tag, identifier and classes of one element:
//
//	".a #home nav primary"  →  <a id="home" class="nav primary">
//	"card"                  →  <div class="card">
//
// Tokens are whitespace separated. A token starting with "." sets the tag
// (default "div"), one starting with "#" sets the identifier, and every other
// token is appended to the class list. Later tag and id tokens win.
//
// # Building
//
// A Builder wraps an element Factory, the host substrate that actually creates
// nodes. The same Builder logic drives virtual trees (package vdom) and HTML
// DOM trees (package htmlnode):
//
//	b := vdom.NewBuilder()
//	res, err := b.BuildWithAttrs(".a", gee.Attrs{"href": "/docs"}, "the docs")
//
// Content is variadic. Each item is a string (text node), an element, a
// named capture, or an anonymous capture:
//
//	res, err := b.Build("#dialog",
//	    gee.Name("title", gee.Must(b.Build(".h2", "Settings"))),
//	    gee.Capture(gee.Must(b.Build("#body", "..."))),
//	    "footer text",
//	)
//	res.Captures["title"] // the <h2>
//	res.Captures["body"]  // captured by its id
//
// Anonymous captures are named after the element's id, or its first class
// when it has no id. Elements with neither are appended without a capture.
//
// # Untyped input
//
// BuildValue accepts the loosely typed three-argument form used by decoded
// documents: the second argument is an attribute bag when it is a mapping and
// content otherwise, and pairs and singletons are plain []any slices.
//
// # Leniency
//
// In Lenient mode (the default) style properties the factory rejects and
// content items of unknown shape are skipped. Strict mode turns both into
// errors.
package gee
