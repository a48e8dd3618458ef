package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// These are set during build time using -ldflags
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "globmatch [flags] [path...]",
		Short: "Reports which gitignore-style patterns cover each path.",
		Long: `globmatch compiles gitignore-style patterns and matches them against
repository-relative paths given as arguments or, one per line, on stdin.
A trailing slash marks a path as a directory.

Every covering pattern is reported with its index; negated patterns are
listed as well, since precedence between patterns is left to the reader.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			logger := newLogger(cmd.ErrOrStderr(), verbose)

			cfg, used, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			if used != "" {
				logger.Debug("Using configuration file", slog.String("path", used))
			}
			cfg, err = applyFlags(cfg, cmd.Flags())
			if err != nil {
				return err
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			paths := args
			if len(paths) == 0 {
				paths, err = readPaths(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}
			return run(ctx, cfg, paths, cmd.OutOrStdout(), logger)
		},
	}
	cmd.SetContext(context.Background())

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default $XDG_CONFIG_HOME/globmatch/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging output")

	cmd.Flags().StringArrayP("pattern", "p", nil, "Pattern to match (can be specified multiple times)")
	cmd.Flags().String("base", "", "Directory the patterns are scoped to, relative to the repository root")
	cmd.Flags().BoolP("ignore-case", "i", false, "Ignore the case of ASCII letters")
	cmd.Flags().IntP("concurrency", "j", 0, "Number of parallel workers (0 for GOMAXPROCS)")
	cmd.Flags().String("format", formatText, `Output format ("text" or "yaml")`)
	cmd.Flags().Bool("all", false, "Also report paths no pattern covers")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
