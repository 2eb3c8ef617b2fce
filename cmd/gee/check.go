package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/gee/internal/document"
	"github.com/vango-dev/gee/internal/errors"
	"github.com/vango-dev/gee/pkg/gee"
	"github.com/vango-dev/gee/pkg/vdom"
)

func checkCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <document>...",
		Short: "Validate documents in strict mode",
		Long: `Build each document in strict mode and report its captures.

Strict mode rejects unusable style values and unrecognized content
items instead of skipping them. The exit status is non-zero if any
document fails.

Examples:
  gee check page.yaml
  gee check pages/*.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			opts := append(cfg.BuilderOptions(), gee.WithMode(gee.Strict))

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var firstErr error
			for _, path := range args {
				if err := checkDocument(ctx, cmd, path, opts); err != nil {
					warn(cmd.OutOrStdout(), "%s: %s", path, errors.Compact(err))
					if firstErr == nil {
						firstErr = err
					}
				}
			}
			return firstErr
		},
	}
	return cmd
}

func checkDocument(ctx context.Context, cmd *cobra.Command, path string, opts []gee.Option) error {
	tree, err := document.ReadFile(path)
	if err != nil {
		return err
	}
	ev, err := document.Evaluate(ctx, vdom.NewBuilder(opts...), tree)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	success(out, "%s (%d elements)", path, ev.Elements)
	for _, p := range ev.CapturePaths() {
		info(out, "%s: %s", p, strings.Join(ev.Captures[p].Names(), ", "))
	}
	if len(ev.Captures) == 0 {
		info(out, "no captures")
	}
	return nil
}
