// Package geetest provides testing helpers for code that builds element
// trees with gee and the vdom backend.
//
//	func TestMenu(t *testing.T) {
//	    res := geetest.Build(t, vdom.NewBuilder(), ".ul #menu", items)
//	    geetest.ExpectCaptures(t, res, "home", "about")
//	    geetest.ExpectContains(t, res.Node, `<li id="about">`)
//	}
//
// Failures report the rendered HTML, truncated to keep output readable.
package geetest
