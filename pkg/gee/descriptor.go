package gee

import (
	"strings"

	"github.com/vango-dev/gee/internal/errors"
)

// DefaultTag is the tag used when a descriptor has no "." token.
const DefaultTag = "div"

// Descriptor is a parsed element descriptor.
type Descriptor struct {
	Tag       string
	ID        string
	ClassName string
}

// Classes returns the class tokens in order.
func (d Descriptor) Classes() []string {
	return strings.Fields(d.ClassName)
}

// String returns the canonical descriptor form.
func (d Descriptor) String() string {
	parts := make([]string, 0, 3)
	if d.Tag != "" && d.Tag != DefaultTag {
		parts = append(parts, "."+d.Tag)
	}
	if d.ID != "" {
		parts = append(parts, "#"+d.ID)
	}
	if d.ClassName != "" {
		parts = append(parts, d.ClassName)
	}
	return strings.Join(parts, " ")
}

// ParseDescriptor parses s using DefaultTag as the fallback tag.
func ParseDescriptor(s string) (Descriptor, error) {
	return parseDescriptor(s, DefaultTag)
}

func parseDescriptor(s, defaultTag string) (Descriptor, error) {
	d := Descriptor{Tag: defaultTag}
	var classes []string

	for _, tok := range strings.Fields(s) {
		switch tok[0] {
		case '.':
			d.Tag = tok[1:]
		case '#':
			d.ID = tok[1:]
		default:
			classes = append(classes, tok)
		}
	}

	if d.Tag == "" {
		return Descriptor{}, errors.New(codeInvalidDescriptor).
			WithDetailf("descriptor %q has an empty tag token", s).
			WithSuggestion(`Write the tag right after the dot, e.g. ".span"`).
			Wrap(ErrInvalidDescriptor)
	}

	d.ClassName = strings.Join(classes, " ")
	return d, nil
}
