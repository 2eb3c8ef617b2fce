// Package document evaluates declarative element trees stored as YAML or
// JSON.
//
// A node is a mapping with a descriptor under "el", an optional attribute
// bag under "attrs" and optional "content":
//
//	el: "#card panel"          # quote descriptors starting with '#'
//	attrs:
//	  title: Settings
//	  style: {borderWidth: 1px}
//	content:
//	  - el: .h2
//	    content: Settings
//	  - [body, {el: .p, content: "..."}]   # captured as "body"
//	  - [{el: "#footer"}]                 # captured as "footer"
//	  - trailing text
//
// Content is a string, a node, or a list of strings, nodes, [name, node]
// pairs and [node] singletons. Children are built before their parent, and
// each node is built with gee.Builder.BuildValue so the builder's shape rules
// apply unchanged.
package document
