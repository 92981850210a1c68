package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lodgekit/facetgen/internal/build"
	"github.com/lodgekit/facetgen/internal/config"
	"github.com/lodgekit/facetgen/internal/output"
	"github.com/lodgekit/facetgen/internal/ui"
	"github.com/lodgekit/facetgen/internal/watcher"
)

func newGenerateCmd() *cobra.Command {
	var (
		watch       bool
		catalogName string
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate faceted navigation artifacts",
		Long: `Generate reads item records from the content directory, enumerates
every reachable filter combination per catalog, and writes the
artifacts the site build consumes: combinations.json, pages.json and
a _redirects file per catalog.

With --watch, facetgen stays running and regenerates whenever item
files change.`,
		Example: `  # One-off build of all catalogs
  facetgen generate

  # Regenerate on content changes
  facetgen generate --watch

  # Build a single catalog with readable JSON
  facetgen generate --catalog properties --pretty`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if pretty {
				cfg.Output.Pretty = true
			}

			return runGenerate(ctx, cmd, cfg, catalogName, watch)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Regenerate when content files change")
	cmd.Flags().StringVar(&catalogName, "catalog", "", "Generate only the named catalog")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON artifacts")

	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, cfg *config.Config, catalogName string, watch bool) error {
	out := output.New(cmd.OutOrStdout())
	st := styles()

	runner, err := build.NewRunner(cfg, slog.Default())
	if err != nil {
		return err
	}

	summary, err := runner.Run(ctx, catalogName)
	if err != nil {
		return err
	}
	printSummary(out, st, cfg, summary)

	if !watch {
		return nil
	}
	return watchAndRegenerate(ctx, out, cfg, runner, catalogName)
}

// printSummary renders a build summary to the terminal.
func printSummary(out *output.Writer, st ui.Styles, cfg *config.Config, summary *build.Summary) {
	out.Statusf("📦", "%s from %s",
		st.Header.Render("Generated"), cfg.Content.Dir)
	for _, cat := range summary.Catalogs {
		out.Detailf("%s  %s",
			st.Label.Render(cat.Name),
			st.Count.Render(fmt.Sprintf("%d items, %d combinations, %d pages, %d redirects",
				cat.Items, cat.Combinations, cat.Pages, cat.Redirects)))
	}
	out.Successf("Done in %s", summary.Duration.Round(time.Millisecond))
}

// watchAndRegenerate reruns the build whenever the content directory
// changes, until the context is cancelled.
func watchAndRegenerate(ctx context.Context, out *output.Writer, cfg *config.Config, runner *build.Runner, catalogName string) error {
	w, err := watcher.NewContentWatcher(cfg.WatchDebounceDuration(), slog.Default())
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	out.Statusf("👀", "Watching %s for changes (ctrl-c to stop)", cfg.Content.Dir)

	watchErr := make(chan error, 1)
	go func() { watchErr <- w.Start(ctx, cfg.Content.Dir) }()

	st := styles()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-watchErr:
			if err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		case batch, ok := <-w.Batches():
			if !ok {
				return nil
			}
			out.Statusf("🔄", "%d change(s) detected, regenerating", len(batch))
			summary, err := runner.Run(ctx, catalogName)
			if err != nil {
				// Keep watching; a broken item file should not kill watch mode.
				out.Error(err.Error())
				continue
			}
			printSummary(out, st, cfg, summary)
		}
	}
}
