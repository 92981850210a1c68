// Package build orchestrates index generation: loading items, running
// the facet pipeline per catalog, and materializing artifacts.
package build

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lodgekit/facetgen/internal/catalog"
	"github.com/lodgekit/facetgen/internal/config"
	ferrors "github.com/lodgekit/facetgen/internal/errors"
	"github.com/lodgekit/facetgen/internal/facet"
	"github.com/lodgekit/facetgen/internal/output"
)

// CatalogSummary reports what one catalog's generation produced.
type CatalogSummary struct {
	Name         string
	Items        int
	Combinations int
	Pages        int
	Redirects    int
}

// Summary reports the result of one build run.
type Summary struct {
	TotalItems int
	Catalogs   []CatalogSummary
	Duration   time.Duration
}

// Runner executes build runs. It holds the item loader across runs so
// watch mode rebuilds reuse the parse cache for unchanged files.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	loader *catalog.Loader
}

// NewRunner creates a runner for the given configuration.
func NewRunner(cfg *config.Config, logger *slog.Logger) (*Runner, error) {
	if logger == nil {
		logger = slog.Default()
	}
	loader, err := catalog.NewLoader(cfg.Content.Dir, logger)
	if err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, logger: logger, loader: loader}, nil
}

// Run executes one full build: items are loaded once, then each catalog
// is generated concurrently. If only is non-empty, just that catalog is
// built. The output directory is locked for the duration of the run.
func (r *Runner) Run(ctx context.Context, only string) (*Summary, error) {
	start := time.Now()

	catalogs, err := r.selectCatalogs(only)
	if err != nil {
		return nil, err
	}

	lock := NewOutputLock(r.cfg.Output.Dir)
	if err := lock.Acquire(); err != nil {
		return nil, err
	}
	defer func() { _ = lock.Release() }()

	items, err := r.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	r.logger.Info("loaded items", "count", len(items), "dir", r.cfg.Content.Dir)

	writer := output.NewArtifactWriter(r.cfg.Output.Dir, r.cfg.Output.Pretty)
	summaries := make([]CatalogSummary, len(catalogs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.WorkerCount())
	for i, cat := range catalogs {
		i, cat := i, cat
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			summary, err := r.buildCatalog(cat, items, writer)
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Summary{
		TotalItems: len(items),
		Catalogs:   summaries,
		Duration:   time.Since(start),
	}, nil
}

// selectCatalogs resolves which catalogs this run builds.
func (r *Runner) selectCatalogs(only string) ([]config.CatalogConfig, error) {
	if only == "" {
		if len(r.cfg.Catalogs) == 0 {
			return nil, ferrors.New(ferrors.ErrCodeInvalidCatalog, "no catalogs configured", nil).
				WithSuggestion("add a catalogs entry to " + config.ConfigFileName)
		}
		return r.cfg.Catalogs, nil
	}
	cat, err := r.cfg.Catalog(only)
	if err != nil {
		return nil, err
	}
	return []config.CatalogConfig{cat}, nil
}

// buildCatalog runs the full facet pipeline for one catalog and writes
// its artifacts.
func (r *Runner) buildCatalog(cat config.CatalogConfig, all []*catalog.Item, writer *output.ArtifactWriter) (CatalogSummary, error) {
	tagged := catalog.FilterByTag(all, cat.Tag)
	items := catalog.FacetItems(tagged)

	domain := facet.BuildDomain(items)
	combinations := facet.ListDomainCombinations(items, domain)
	valid := facet.ValidPaths(combinations)

	records := make([]output.CombinationRecord, len(combinations))
	pages := make([]output.PageRecord, 0, len(combinations)+1)
	pages = append(pages, output.PageRecord{
		Path:    "",
		URL:     facet.JoinURL(cat.BaseURL, ""),
		Filters: facet.FilterSet{},
		Count:   len(items),
		UI:      facet.BuildUIData(domain, facet.FilterSet{}, valid, cat.BaseURL),
	})
	for i, c := range combinations {
		records[i] = output.NewCombinationRecord(c, cat.BaseURL)
		pages = append(pages, output.PageRecord{
			Path:    c.Path,
			URL:     facet.JoinURL(cat.BaseURL, c.Path),
			Filters: c.FilterSet,
			Count:   c.Count,
			UI:      facet.BuildUIData(domain, c.FilterSet, valid, cat.BaseURL),
		})
	}

	redirects := facet.BuildRedirects(domain.Keys, combinations, cat.BaseURL)

	err := writer.WriteCatalog(&output.CatalogArtifacts{
		Name:         cat.Name,
		Combinations: records,
		Pages:        pages,
		Redirects:    redirects,
	})
	if err != nil {
		return CatalogSummary{}, err
	}

	r.logger.Info("catalog generated",
		"catalog", cat.Name,
		"items", len(items),
		"combinations", len(combinations),
		"redirects", len(redirects),
	)

	return CatalogSummary{
		Name:         cat.Name,
		Items:        len(items),
		Combinations: len(combinations),
		Pages:        len(pages),
		Redirects:    len(redirects),
	}, nil
}
