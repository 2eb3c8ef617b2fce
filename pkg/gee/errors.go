package gee

import (
	stderrors "errors"
	"fmt"

	"github.com/vango-dev/gee/internal/errors"
)

// Sentinel errors. Errors returned by a Builder wrap one of these.
var (
	ErrInvalidDescriptor   = stderrors.New("gee: invalid descriptor")
	ErrStyleProperty       = stderrors.New("gee: style property not applied")
	ErrUnrecognizedContent = stderrors.New("gee: unrecognized content item")
	ErrProperty            = stderrors.New("gee: property not applied")
)

const (
	codeInvalidDescriptor   = "G001"
	codeStyleProperty       = "G002"
	codeUnrecognizedContent = "G003"
	codeProperty            = "G004"
)

func invalidDescriptor(v any) error {
	return errors.New(codeInvalidDescriptor).
		WithDetailf("descriptor is %T, want string", v).
		WithSuggestion(`Pass the descriptor as a string, e.g. ".a #home nav"`).
		Wrap(ErrInvalidDescriptor)
}

func styleFailure(name string, cause error) error {
	return errors.New(codeStyleProperty).
		WithDetailf("style %q: %v", name, cause).
		Wrap(fmt.Errorf("%w: %w", ErrStyleProperty, cause))
}

func propertyFailure(name string, cause error) error {
	return errors.New(codeProperty).
		WithDetailf("property %q: %v", name, cause).
		Wrap(fmt.Errorf("%w: %w", ErrProperty, cause))
}

func unrecognized(index int, item any) error {
	return errors.New(codeUnrecognizedContent).
		WithDetailf("content[%d] is %T", index, item).
		Wrap(ErrUnrecognizedContent)
}
