// Package main provides the quickfetch command-line tool, which prints a
// summary of the host system, optionally next to distribution artwork.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"quickfetch/sysinfo"
)

const version = "1.0"

// collect gathers the report; tests replace it with a canned one.
var collect = sysinfo.GetSystemInfo

// options are the resolved command-line settings.
type options struct {
	experimental bool
	format       string
	gap          int
	debug        bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the quickfetch command. Every flag can also be set
// through a QUICKFETCH_<FLAG> environment variable.
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "quickfetch",
		Short:        "System Information Tool",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options{
				experimental: v.GetBool("experimental"),
				format:       v.GetString("format"),
				gap:          v.GetInt("gap"),
				debug:        v.GetBool("debug"),
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	flags := cmd.Flags()
	flags.Bool("experimental", false, "Display with artwork similar to Neofetch")
	flags.String("format", "text", "output format: text or yaml")
	flags.Int("gap", 4, "number of spaces between logo and info")
	flags.Bool("debug", false, "log probe failures to stderr")

	v.SetEnvPrefix("QUICKFETCH")
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)

	return cmd
}

// run gathers the system report and writes it in the requested layout.
func run(ctx context.Context, stdout, stderr io.Writer, opts options) error {
	if opts.format != "text" && opts.format != "yaml" {
		return fmt.Errorf("unsupported format %q (want text or yaml)", opts.format)
	}
	if opts.gap < 0 {
		opts.gap = 0
	}

	level := slog.LevelWarn
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	info := collect(ctx, logger)

	switch {
	case opts.format == "yaml":
		return renderYAML(stdout, info)
	case opts.experimental:
		renderExperimental(stdout, info, opts.gap)
	default:
		renderPlain(stdout, info)
	}
	return nil
}
