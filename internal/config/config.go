package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/gee/internal/errors"
	"github.com/vango-dev/gee/pkg/gee"
)

const (
	// DefaultAddr is the default preview server address.
	DefaultAddr = "localhost:4000"

	// DefaultIndent is the default pretty-print indentation.
	DefaultIndent = "  "
)

// FileNames are the config files looked up by Load, in order.
var FileNames = []string{"gee.json", "gee.yaml", "gee.yml"}

// Config is the complete project configuration.
type Config struct {
	// Builder contains element builder settings.
	Builder BuilderConfig `json:"builder" yaml:"builder"`

	// Render contains HTML output settings.
	Render RenderConfig `json:"render" yaml:"render"`

	// Serve contains preview server settings.
	Serve ServeConfig `json:"serve" yaml:"serve"`

	// Output contains publishing settings.
	Output OutputConfig `json:"output" yaml:"output"`

	// path stores where the config was loaded from.
	path string
}

// BuilderConfig configures gee.Builder.
type BuilderConfig struct {
	// Mode is "lenient" or "strict".
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty"`

	// DefaultTag is the tag for descriptors without a "." token.
	DefaultTag string `json:"defaultTag,omitempty" yaml:"defaultTag,omitempty"`
}

// RenderConfig configures HTML rendering.
type RenderConfig struct {
	// Pretty enables indented output.
	Pretty bool `json:"pretty,omitempty" yaml:"pretty,omitempty"`

	// Indent is the indentation unit for pretty output.
	Indent string `json:"indent,omitempty" yaml:"indent,omitempty"`

	// Title is the page title used when rendering full pages.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	// Addr is the listen address.
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`

	// Metrics exposes /metrics when true.
	Metrics bool `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	// Watch re-renders and reloads browsers when the document changes.
	Watch bool `json:"watch" yaml:"watch"`
}

// OutputConfig configures where rendered HTML is written.
type OutputConfig struct {
	// S3 publishes to a bucket when Bucket is set.
	S3 S3Config `json:"s3" yaml:"s3"`
}

// S3Config configures S3 publishing.
type S3Config struct {
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// env holds GEE_* overrides. Unset variables leave the file value intact.
type env struct {
	Mode       string `env:"GEE_MODE"`
	DefaultTag string `env:"GEE_DEFAULT_TAG"`
	Pretty     string `env:"GEE_PRETTY"`
	Indent     string `env:"GEE_INDENT"`
	Addr       string `env:"GEE_ADDR"`
	Metrics    string `env:"GEE_METRICS"`
	Watch      string `env:"GEE_WATCH"`
	S3Bucket   string `env:"GEE_S3_BUCKET"`
	S3Prefix   string `env:"GEE_S3_PREFIX"`
	S3Region   string `env:"GEE_S3_REGION"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Builder: BuilderConfig{
			Mode:       gee.Lenient.String(),
			DefaultTag: gee.DefaultTag,
		},
		Render: RenderConfig{
			Indent: DefaultIndent,
		},
		Serve: ServeConfig{
			Addr:  DefaultAddr,
			Watch: true,
		},
	}
}

// Load reads the first config file found in dir. A directory without a
// config file yields the defaults. Environment overrides are applied.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	cfg := New()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// LoadFile reads configuration from path. The format is chosen by
// extension: .json is JSON, anything else is YAML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("G040").WithDetail(err.Error()).Wrap(err)
	}

	cfg := New()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("G040").
			WithDetailf("failed to parse %s: %v", filepath.Base(path), err).
			WithSuggestion("Check the file syntax").
			Wrap(err)
	}

	cfg.path = path
	cfg.applyDefaults()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Path returns the file the config was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

func (c *Config) applyDefaults() {
	d := New()
	if c.Builder.Mode == "" {
		c.Builder.Mode = d.Builder.Mode
	}
	if c.Builder.DefaultTag == "" {
		c.Builder.DefaultTag = d.Builder.DefaultTag
	}
	if c.Render.Indent == "" {
		c.Render.Indent = d.Render.Indent
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = d.Serve.Addr
	}
}

// ApplyEnv applies GEE_* environment overrides.
func (c *Config) ApplyEnv() error {
	var e env
	if err := envdecode.Decode(&e); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return errors.New("G041").WithDetail(err.Error()).Wrap(err)
	}

	setString(&c.Builder.Mode, e.Mode)
	setString(&c.Builder.DefaultTag, e.DefaultTag)
	setString(&c.Render.Indent, e.Indent)
	setString(&c.Serve.Addr, e.Addr)
	setString(&c.Output.S3.Bucket, e.S3Bucket)
	setString(&c.Output.S3.Prefix, e.S3Prefix)
	setString(&c.Output.S3.Region, e.S3Region)

	for name, pair := range map[string]struct {
		raw string
		dst *bool
	}{
		"GEE_PRETTY":  {e.Pretty, &c.Render.Pretty},
		"GEE_METRICS": {e.Metrics, &c.Serve.Metrics},
		"GEE_WATCH":   {e.Watch, &c.Serve.Watch},
	} {
		if pair.raw == "" {
			continue
		}
		v, err := strconv.ParseBool(pair.raw)
		if err != nil {
			return errors.New("G041").WithDetailf("%s=%q is not a boolean", name, pair.raw)
		}
		*pair.dst = v
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, ok := gee.ParseMode(c.Builder.Mode); !ok {
		return errors.New("G041").
			WithDetailf("builder.mode %q", c.Builder.Mode).
			WithSuggestion(`Use "lenient" or "strict"`)
	}
	if strings.ContainsAny(c.Builder.DefaultTag, " \t.#") {
		return errors.New("G041").
			WithDetailf("builder.defaultTag %q", c.Builder.DefaultTag).
			WithSuggestion("Use a bare tag name such as div or section")
	}
	if c.Output.S3.Prefix != "" && c.Output.S3.Bucket == "" {
		return errors.New("G041").
			WithDetail("output.s3.prefix is set without output.s3.bucket")
	}
	return nil
}

// BuilderOptions converts the builder section into gee options.
func (c *Config) BuilderOptions() []gee.Option {
	mode, _ := gee.ParseMode(c.Builder.Mode)
	return []gee.Option{
		gee.WithMode(mode),
		gee.WithDefaultTag(c.Builder.DefaultTag),
	}
}
