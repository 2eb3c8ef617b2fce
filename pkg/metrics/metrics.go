// Package metrics exports builder activity as Prometheus metrics.
//
// Collector implements gee.Observer:
//
//	col := metrics.NewCollector(metrics.WithNamespace("site"))
//	b := vdom.NewBuilder(gee.WithObserver(col))
//
// Metrics collected:
//   - gee_elements_built_total: Counter of built elements by tag
//   - gee_children_per_element: Histogram of children appended per element
//   - gee_captures_total: Counter of named captures bound
//   - gee_skipped_total: Counter of inputs skipped in lenient mode, by reason
//   - gee_build_errors_total: Counter of failed builds, by error code
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/gee/internal/errors"
	"github.com/vango-dev/gee/pkg/gee"
)

// Config configures the Prometheus collector.
type Config struct {
	// Namespace is the metrics namespace (default: "gee").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for children per element.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "gee",
		Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector records builder events. It is safe for concurrent use.
type Collector struct {
	elementsBuilt *prometheus.CounterVec
	children      prometheus.Histogram
	captures      prometheus.Counter
	skipped       *prometheus.CounterVec
	buildErrors   *prometheus.CounterVec
}

var _ gee.Observer = (*Collector)(nil)

// NewCollector creates and registers the builder metrics. It panics if the
// metrics are already registered with the chosen registry.
func NewCollector(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Collector{
		elementsBuilt: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "elements_built_total",
			Help:        "Total number of elements built, by tag",
			ConstLabels: config.ConstLabels,
		}, []string{"tag"}),

		children: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "children_per_element",
			Help:        "Number of children appended per built element",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		captures: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "captures_total",
			Help:        "Total number of named captures bound",
			ConstLabels: config.ConstLabels,
		}),

		skipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "skipped_total",
			Help:        "Total number of inputs skipped in lenient mode, by reason",
			ConstLabels: config.ConstLabels,
		}, []string{"reason"}),

		buildErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "build_errors_total",
			Help:        "Total number of failed builds, by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),
	}
}

// ElementBuilt implements gee.Observer.
func (c *Collector) ElementBuilt(tag string, children, captures int) {
	c.elementsBuilt.WithLabelValues(tag).Inc()
	c.children.Observe(float64(children))
	c.captures.Add(float64(captures))
}

// Skipped implements gee.Observer.
func (c *Collector) Skipped(reason gee.SkipReason, detail string) {
	c.skipped.WithLabelValues(string(reason)).Inc()
}

// Failed implements gee.Observer.
func (c *Collector) Failed(err error) {
	code := errors.CodeOf(err)
	if code == "" {
		code = "unknown"
	}
	c.buildErrors.WithLabelValues(code).Inc()
}
