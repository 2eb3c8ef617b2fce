package gee

import (
	"fmt"
	"log/slog"
)

// Builder constructs elements through a Factory. A Builder holds no mutable
// state and is safe for concurrent use when its Factory is.
type Builder[N any] struct {
	factory Factory[N]
	cfg     config
}

// Result is a constructed element and the children captured by name.
type Result[N any] struct {
	Node     N
	Captures Captures[N]
}

// New creates a Builder over factory.
func New[N any](factory Factory[N], opts ...Option) *Builder[N] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Builder[N]{factory: factory, cfg: cfg}
}

// Mode returns the builder's leniency mode.
func (b *Builder[N]) Mode() Mode {
	return b.cfg.mode
}

// Factory returns the underlying element factory.
func (b *Builder[N]) Factory() Factory[N] {
	return b.factory
}

// Build creates the element described by descriptor with the given content.
func (b *Builder[N]) Build(descriptor string, content ...any) (*Result[N], error) {
	return b.build(descriptor, nil, content)
}

// BuildWithAttrs creates the element described by descriptor, applies attrs
// to it and appends content.
func (b *Builder[N]) BuildWithAttrs(descriptor string, attrs Attrs, content ...any) (*Result[N], error) {
	return b.build(descriptor, attrs, content)
}

// BuildValue is the untyped three-argument form. The descriptor must be a
// string. When attrsOrContent is a string-keyed mapping it is the attribute
// bag and content follows it; otherwise a truthy attrsOrContent is the
// content and the third argument is ignored.
func (b *Builder[N]) BuildValue(descriptor, attrsOrContent, content any) (*Result[N], error) {
	desc, ok := descriptor.(string)
	if !ok {
		err := invalidDescriptor(descriptor)
		b.cfg.observer.Failed(err)
		return nil, err
	}

	if attrs, ok := asBag(attrsOrContent); ok {
		return b.build(desc, attrs, single(content))
	}
	if truthy(attrsOrContent) {
		content = attrsOrContent
	}
	return b.build(desc, nil, single(content))
}

func single(v any) []any {
	if !truthy(v) {
		return nil
	}
	return []any{v}
}

func (b *Builder[N]) build(descriptor string, attrs Attrs, content []any) (*Result[N], error) {
	res, err := b.construct(descriptor, attrs, content)
	if err != nil {
		b.cfg.observer.Failed(err)
		return nil, err
	}
	return res, nil
}

func (b *Builder[N]) construct(descriptor string, attrs Attrs, content []any) (*Result[N], error) {
	d, err := parseDescriptor(descriptor, b.cfg.defaultTag)
	if err != nil {
		return nil, err
	}

	f := b.factory
	el := f.CreateElement(d.Tag)
	if err := f.SetProperty(el, PropClassName, d.ClassName); err != nil {
		return nil, propertyFailure(PropClassName, err)
	}
	if err := f.SetProperty(el, PropID, d.ID); err != nil {
		return nil, propertyFailure(PropID, err)
	}

	if err := b.applyAttrs(el, attrs); err != nil {
		return nil, err
	}

	caps := make(Captures[N])
	children := 0
	for i, item := range b.sequence(content) {
		appended, err := b.appendItem(el, caps, i, item)
		if err != nil {
			if b.cfg.mode == Strict {
				return nil, err
			}
			b.skip(SkipContent, err)
			continue
		}
		if appended {
			children++
		}
	}

	b.cfg.observer.ElementBuilt(d.Tag, children, len(caps))
	return &Result[N]{Node: el, Captures: caps}, nil
}

// applyAttrs applies the style entry first, then every other entry in
// sorted key order.
func (b *Builder[N]) applyAttrs(el N, attrs Attrs) error {
	if len(attrs) == 0 {
		return nil
	}

	if raw, ok := attrs[StyleKey]; ok && truthy(raw) {
		if err := b.applyStyle(el, raw); err != nil {
			return err
		}
	}

	for _, name := range sortedKeys(attrs) {
		if name == StyleKey {
			continue
		}
		if err := b.factory.SetProperty(el, name, attrs[name]); err != nil {
			return propertyFailure(name, err)
		}
	}
	return nil
}

func (b *Builder[N]) applyStyle(el N, raw any) error {
	style, ok := asStyle(raw)
	if !ok {
		err := styleFailure(StyleKey, fmt.Errorf("style is %T, want a mapping", raw))
		if b.cfg.mode == Strict {
			return err
		}
		b.skip(SkipStyle, err)
		return nil
	}

	for _, name := range sortedKeys(style) {
		if err := b.setStyle(el, name, style[name]); err != nil {
			err = styleFailure(name, err)
			if b.cfg.mode == Strict {
				return err
			}
			b.skip(SkipStyle, err)
		}
	}
	return nil
}

// setStyle converts a factory panic into an error so one bad property
// cannot abort the element.
func (b *Builder[N]) setStyle(el N, name string, value any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return b.factory.SetStyle(el, name, value)
}

func (b *Builder[N]) skip(reason SkipReason, err error) {
	b.cfg.logger.Debug("skipped input",
		slog.String("reason", string(reason)),
		slog.String("err", err.Error()))
	b.cfg.observer.Skipped(reason, err.Error())
}

// Must returns the built node and panics on error. It is intended for
// trees whose shape is fixed at compile time.
func Must[N any](res *Result[N], err error) N {
	if err != nil {
		panic(err)
	}
	return res.Node
}
