package document

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/gee/internal/errors"
	"github.com/vango-dev/gee/pkg/gee"
)

const tracerName = "github.com/vango-dev/gee/internal/document"

// Node keys.
const (
	KeyEl      = "el"
	KeyAttrs   = "attrs"
	KeyContent = "content"
)

// Evaluation is the outcome of evaluating a document.
type Evaluation[N any] struct {
	// Root is the top-level element and its captures.
	Root *gee.Result[N]

	// Captures holds the non-empty capture maps of every element, keyed by
	// the element's path ("root", "root.content[1]", ...).
	Captures map[string]gee.Captures[N]

	// Elements is the number of elements built.
	Elements int
}

// CapturePaths returns the keys of Captures in sorted order.
func (e *Evaluation[N]) CapturePaths() []string {
	paths := make([]string, 0, len(e.Captures))
	for p := range e.Captures {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Evaluate builds the tree described by doc.
func Evaluate[N any](ctx context.Context, b *gee.Builder[N], doc any) (*Evaluation[N], error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "document.evaluate",
		trace.WithAttributes(attribute.String("gee.mode", b.Mode().String())))
	defer span.End()

	ev := &evaluator[N]{
		ctx:      ctx,
		builder:  b,
		captures: make(map[string]gee.Captures[N]),
	}
	root, err := ev.node("root", doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("gee.elements", ev.elements),
		attribute.Int("gee.capture_sets", len(ev.captures)),
	)
	span.SetStatus(codes.Ok, "")

	return &Evaluation[N]{
		Root:     root,
		Captures: ev.captures,
		Elements: ev.elements,
	}, nil
}

type evaluator[N any] struct {
	ctx      context.Context
	builder  *gee.Builder[N]
	captures map[string]gee.Captures[N]
	elements int
}

func (ev *evaluator[N]) node(path string, v any) (*gee.Result[N], error) {
	if err := ev.ctx.Err(); err != nil {
		return nil, err
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, malformed(path, "node is %T, want a mapping", v)
	}
	desc, ok := m[KeyEl]
	if !ok {
		return nil, malformed(path, "missing %q", KeyEl)
	}
	for k := range m {
		if k != KeyEl && k != KeyAttrs && k != KeyContent {
			return nil, malformed(path, "unknown key %q", k)
		}
	}

	content, err := ev.content(path+"."+KeyContent, m[KeyContent])
	if err != nil {
		return nil, err
	}

	var res *gee.Result[N]
	if attrs, ok := m[KeyAttrs]; ok && attrs != nil {
		bag, ok := attrs.(map[string]any)
		if !ok {
			return nil, malformed(path+"."+KeyAttrs, "attrs is %T, want a mapping", attrs)
		}
		res, err = ev.builder.BuildValue(desc, bag, content)
	} else {
		res, err = ev.builder.BuildValue(desc, content, nil)
	}
	if err != nil {
		return nil, atPath(path, err)
	}

	ev.elements++
	if len(res.Captures) > 0 {
		ev.captures[path] = res.Captures
	}
	return res, nil
}

// content replaces node mappings with built nodes, keeping the shape the
// builder expects.
func (ev *evaluator[N]) content(path string, v any) (any, error) {
	switch c := v.(type) {
	case map[string]any:
		res, err := ev.node(path, c)
		if err != nil {
			return nil, err
		}
		return res.Node, nil
	case []any:
		items := make([]any, len(c))
		for i, item := range c {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			resolved, err := ev.item(itemPath, item)
			if err != nil {
				return nil, err
			}
			items[i] = resolved
		}
		return items, nil
	default:
		return v, nil
	}
}

func (ev *evaluator[N]) item(path string, v any) (any, error) {
	switch c := v.(type) {
	case map[string]any:
		res, err := ev.node(path, c)
		if err != nil {
			return nil, err
		}
		return res.Node, nil
	case []any:
		// [name, node] pair or [node] singleton; names stay as they are.
		out := make([]any, len(c))
		for i, part := range c {
			if m, ok := part.(map[string]any); ok {
				res, err := ev.node(fmt.Sprintf("%s[%d]", path, i), m)
				if err != nil {
					return nil, err
				}
				out[i] = res.Node
				continue
			}
			out[i] = part
		}
		return out, nil
	default:
		return v, nil
	}
}

func malformed(path, format string, args ...any) error {
	return errors.New("G022").WithPath(path).WithDetailf(format, args...)
}

func atPath(path string, err error) error {
	var ge *errors.Error
	if stderrors.As(err, &ge) {
		if ge.Path == "" {
			ge.WithPath(path)
		}
		return err
	}
	return errors.New("G022").WithPath(path).Wrap(err)
}
