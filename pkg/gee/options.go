package gee

import "log/slog"

// Mode controls how recoverable failures are handled.
type Mode uint8

const (
	// Lenient skips rejected style properties and unknown content items.
	Lenient Mode = iota
	// Strict returns an error for them instead.
	Strict
)

// String returns the string representation of the Mode.
func (m Mode) String() string {
	switch m {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

// ParseMode parses "lenient" or "strict". The empty string is Lenient.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "lenient":
		return Lenient, true
	case "strict":
		return Strict, true
	default:
		return Lenient, false
	}
}

// Option configures a Builder.
type Option func(*config)

type config struct {
	mode       Mode
	defaultTag string
	logger     *slog.Logger
	observer   Observer
}

func defaultConfig() config {
	return config{
		mode:       Lenient,
		defaultTag: DefaultTag,
		logger:     slog.Default().With("component", "gee"),
		observer:   nopObserver{},
	}
}

// WithMode sets the leniency mode.
func WithMode(m Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithDefaultTag sets the tag used when a descriptor has none.
// An empty tag is ignored.
func WithDefaultTag(tag string) Option {
	return func(c *config) {
		if tag != "" {
			c.defaultTag = tag
		}
	}
}

// WithLogger sets the logger used to report skipped input.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers an Observer for build events.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observer = o
		}
	}
}
