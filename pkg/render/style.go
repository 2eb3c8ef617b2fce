package render

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/vango-dev/gee/pkg/vdom"
)

// CSSPropertyName converts a camelCase style property to its CSS form
// (backgroundColor → background-color). Kebab-case and custom properties
// are returned unchanged.
func CSSPropertyName(name string) string {
	if strings.HasPrefix(name, "--") || strings.ContainsRune(name, '-') {
		return name
	}
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StyleString serializes style properties as a CSS declaration list in
// property name order.
func StyleString(style vdom.Props) string {
	if len(style) == 0 {
		return ""
	}
	names := make([]string, 0, len(style))
	for name := range style {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(CSSPropertyName(name))
		b.WriteString(": ")
		b.WriteString(fmt.Sprint(style[name]))
		b.WriteByte(';')
	}
	return b.String()
}
