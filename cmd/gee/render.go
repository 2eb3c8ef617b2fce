package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/gee/internal/config"
	"github.com/vango-dev/gee/internal/document"
	"github.com/vango-dev/gee/internal/errors"
	"github.com/vango-dev/gee/internal/output"
	"github.com/vango-dev/gee/pkg/htmlnode"
	"github.com/vango-dev/gee/pkg/render"
	"github.com/vango-dev/gee/pkg/vdom"
)

// Backends selectable with --backend.
const (
	backendVDOM = "vdom"
	backendHTML = "html"
)

type renderOptions struct {
	output   string
	page     bool
	pretty   bool
	backend  string
	s3Bucket string
	s3Prefix string
	s3Region string
}

func renderCmd(flags *globalFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render a document to HTML",
		Long: `Render a YAML or JSON document to HTML.

Output goes to stdout unless --output or an S3 bucket is given.

Examples:
  gee render page.yaml
  gee render page.yaml --page --output=dist/index.html
  gee render page.json --s3-bucket=my-site --s3-prefix=pages/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			opts.applyConfig(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runRender(cmd, cfg, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.page, "page", false, "Wrap the tree in a full HTML document")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent output (vdom backend)")
	cmd.Flags().StringVar(&opts.backend, "backend", backendVDOM, "Node backend: vdom or html")
	cmd.Flags().StringVar(&opts.s3Bucket, "s3-bucket", "", "Upload to this S3 bucket")
	cmd.Flags().StringVar(&opts.s3Prefix, "s3-prefix", "", "Key prefix for S3 uploads")
	cmd.Flags().StringVar(&opts.s3Region, "s3-region", "", "AWS region for S3 uploads")

	return cmd
}

// applyConfig merges flags that were set explicitly into cfg.
func (o *renderOptions) applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("pretty") {
		cfg.Render.Pretty = o.pretty
	}
	if o.s3Bucket != "" {
		cfg.Output.S3.Bucket = o.s3Bucket
	}
	if o.s3Prefix != "" {
		cfg.Output.S3.Prefix = o.s3Prefix
	}
	if o.s3Region != "" {
		cfg.Output.S3.Region = o.s3Region
	}
}

func runRender(cmd *cobra.Command, cfg *config.Config, opts *renderOptions, docPath string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	tree, err := document.ReadFile(docPath)
	if err != nil {
		return err
	}

	var body string
	switch opts.backend {
	case backendVDOM:
		body, err = renderVDOM(ctx, cfg, tree, opts.page)
	case backendHTML:
		body, err = renderHTML(ctx, cfg, tree, opts.page)
	default:
		return errors.New("G041").
			WithDetailf("--backend %q", opts.backend).
			WithSuggestion("Use --backend=vdom or --backend=html")
	}
	if err != nil {
		return err
	}

	sink, name, err := chooseSink(ctx, cmd, cfg, opts, docPath)
	if err != nil {
		return err
	}
	loc, err := sink.Put(ctx, name, []byte(body))
	if err != nil {
		return err
	}
	if loc != "-" {
		success(cmd.ErrOrStderr(), "Wrote %s", loc)
	}
	return nil
}

func renderVDOM(ctx context.Context, cfg *config.Config, tree any, page bool) (string, error) {
	ev, err := document.Evaluate(ctx, vdom.NewBuilder(cfg.BuilderOptions()...), tree)
	if err != nil {
		return "", err
	}
	r := render.NewRenderer(render.RendererConfig{
		Pretty: cfg.Render.Pretty,
		Indent: cfg.Render.Indent,
	})

	var buf strings.Builder
	if page {
		err = r.RenderPage(&buf, render.Page{Title: cfg.Render.Title, Body: ev.Root.Node})
	} else {
		err = r.RenderToWriter(&buf, ev.Root.Node)
	}
	if err != nil {
		return "", errors.New("G060").WithDetail(err.Error()).Wrap(err)
	}
	return buf.String(), nil
}

func renderHTML(ctx context.Context, cfg *config.Config, tree any, page bool) (string, error) {
	ev, err := document.Evaluate(ctx, htmlnode.NewBuilder(cfg.BuilderOptions()...), tree)
	if err != nil {
		return "", err
	}

	root := ev.Root.Node
	if page {
		root = htmlnode.Page(cfg.Render.Title, root)
	}
	s, err := htmlnode.RenderString(root)
	if err != nil {
		return "", errors.New("G060").WithDetail(err.Error()).Wrap(err)
	}
	return s, nil
}

// chooseSink picks S3, a file or stdout, in that order, and the name the
// document is stored under.
func chooseSink(ctx context.Context, cmd *cobra.Command, cfg *config.Config, opts *renderOptions, docPath string) (output.Sink, string, error) {
	name := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath)) + ".html"

	if s3cfg := cfg.Output.S3; s3cfg.Bucket != "" {
		if opts.output != "" {
			name = filepath.ToSlash(opts.output)
		}
		client, err := output.NewS3Client(ctx, s3cfg.Region)
		if err != nil {
			return nil, "", err
		}
		return output.NewS3Sink(client, s3cfg.Bucket, s3cfg.Prefix), name, nil
	}
	if opts.output != "" {
		return &output.FileSink{Dir: filepath.Dir(opts.output)}, filepath.Base(opts.output), nil
	}
	return &output.WriterSink{W: cmd.OutOrStdout()}, name, nil
}
