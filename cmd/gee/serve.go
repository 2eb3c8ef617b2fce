package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/gee/internal/preview"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		addr    string
		noWatch bool
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve <document>",
		Short: "Preview a document in the browser",
		Long: `Serve a rendered document with live reload.

The document is rebuilt whenever it changes and connected browsers
reload. Build errors are shown in an overlay while the last good
page stays up.

Examples:
  gee serve page.yaml
  gee serve page.yaml --addr=0.0.0.0:8080 --metrics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Serve.Addr = addr
			}
			if noWatch {
				cfg.Serve.Watch = false
			}
			if metrics {
				cfg.Serve.Metrics = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			server := preview.NewServer(preview.Options{
				Document: args[0],
				Config:   cfg,
				OnRebuild: func(err error) {
					if err != nil {
						warn(out, "Build failed: %v", err)
						return
					}
					success(out, "Rebuilt %s", args[0])
				},
			})

			info(out, "Serving %s on http://%s", args[0], cfg.Serve.Addr)
			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not rebuild on change")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics at /metrics")

	return cmd
}
