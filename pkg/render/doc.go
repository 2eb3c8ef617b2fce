// Package render converts vdom trees into HTML.
//
// The renderer handles:
//
//   - HTML5 element rendering with void elements (input, br, img, etc.)
//   - Text and attribute escaping
//   - Boolean attributes (disabled, checked, etc.)
//   - Style properties, written as a single style attribute
//   - Full page rendering with DOCTYPE, head and body
//
// Function-valued properties (event hooks) have no HTML form and are not
// rendered.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(w, render.Page{
//	    Title: "Preview",
//	    Body:  node,
//	})
package render
