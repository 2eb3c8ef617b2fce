package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/gee/internal/config"
	"github.com/vango-dev/gee/internal/errors"
	"github.com/vango-dev/gee/pkg/gee"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every command.
type globalFlags struct {
	config  string
	mode    string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "gee",
		Short: "Build HTML element trees from declarative documents",
		Long: `gee builds element trees from compact descriptors such as
".ul #menu nav" and renders them as HTML.

Documents are YAML or JSON trees of {el, attrs, content} nodes.
Content lists may capture elements by name ([name, node]) or by
their id or first class ([node]).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if flags.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Config file (default: gee.json or gee.yaml in the working directory)")
	rootCmd.PersistentFlags().StringVarP(&flags.mode, "mode", "m", "", "Builder mode: lenient or strict")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log skipped inputs and requests")

	rootCmd.AddCommand(
		renderCmd(flags),
		checkCmd(flags),
		serveCmd(flags),
		versionCmd(),
	)

	return rootCmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if flags.config != "" {
		cfg, err = config.LoadFile(flags.config)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	if flags.mode != "" {
		if _, ok := gee.ParseMode(flags.mode); !ok {
			return nil, errors.New("G041").
				WithDetailf("--mode %q", flags.mode).
				WithSuggestion("Use --mode=lenient or --mode=strict")
		}
		cfg.Builder.Mode = flags.mode
	}
	return cfg, nil
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
