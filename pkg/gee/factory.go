package gee

// Property names the Builder assigns from the descriptor.
const (
	PropClassName = "className"
	PropID        = "id"
)

// Factory is the host substrate that creates and mutates nodes of type N.
//
// SetProperty receives the descriptor's identifier and class list under
// PropID and PropClassName, and every AttributeBag entry under its own name.
// Values are passed through untouched, including function values used as
// event hooks.
type Factory[N any] interface {
	// CreateElement returns a new, empty element with the given tag.
	CreateElement(tag string) N

	// CreateText returns a new text node.
	CreateText(text string) N

	// AppendChild appends child as the last child of parent.
	AppendChild(parent, child N)

	// SetProperty assigns a named property on an element.
	SetProperty(el N, name string, value any) error

	// SetStyle assigns one style property on an element.
	SetStyle(el N, name string, value any) error

	// ID returns the element's identifier, or "".
	ID(el N) string

	// ClassName returns the element's space separated class list, or "".
	ClassName(el N) string

	// Node reports whether v is a usable node of this factory.
	Node(v any) (N, bool)
}
