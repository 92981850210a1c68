package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lodgekit/facetgen/internal/catalog"
	"github.com/lodgekit/facetgen/internal/config"
	ferrors "github.com/lodgekit/facetgen/internal/errors"
	"github.com/lodgekit/facetgen/internal/facet"
	"github.com/lodgekit/facetgen/internal/output"
)

func newInspectCmd() *cobra.Command {
	var catalogName string

	cmd := &cobra.Command{
		Use:   "inspect [path]",
		Short: "Inspect combinations without writing artifacts",
		Long: `Inspect runs the facet pipeline in memory and reports what it finds.

Without arguments it lists every reachable combination for the catalog.
With a filter path argument (e.g. "type/cottage/pet-friendly/yes") it
decodes the path, shows the canonical form, the matching items and the
navigation facets offered on that page.`,
		Example: `  # List all combinations for the first catalog
  facetgen inspect

  # Explain one filter path
  facetgen inspect type/cottage

  # Inspect a specific catalog
  facetgen inspect --catalog products color/red`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			return runInspect(cmd.Context(), cmd, cfg, catalogName, args)
		},
	}

	cmd.Flags().StringVar(&catalogName, "catalog", "", "Catalog to inspect (default: first configured)")

	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, cfg *config.Config, catalogName string, args []string) error {
	cat, err := resolveCatalog(cfg, catalogName)
	if err != nil {
		return err
	}

	loader, err := catalog.NewLoader(cfg.Content.Dir, slog.Default())
	if err != nil {
		return err
	}
	all, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	items := catalog.FacetItems(catalog.FilterByTag(all, cat.Tag))
	domain := facet.BuildDomain(items)
	combinations := facet.ListDomainCombinations(items, domain)

	out := output.New(cmd.OutOrStdout())
	st := styles()

	if len(args) == 0 {
		out.Statusf("📚", "%s: %d items, %d combinations",
			st.Header.Render(cat.Name), len(items), len(combinations))
		for _, c := range combinations {
			out.Detailf("%s  %s",
				st.Label.Render(facet.JoinURL(cat.BaseURL, c.Path)),
				st.Count.Render(fmt.Sprintf("(%d)", c.Count)))
		}
		return nil
	}

	return inspectPath(out, cat, items, domain, combinations, args[0])
}

// inspectPath explains a single filter path: canonical form, matching
// items and the facets a visitor would see on that page.
func inspectPath(out *output.Writer, cat config.CatalogConfig, items []facet.Item, domain *facet.Domain, combinations []*facet.Combination, rawPath string) error {
	filters := facet.DecodePath(rawPath)
	canonical := facet.EncodePath(filters)
	valid := facet.ValidPaths(combinations)

	st := styles()
	out.Statusf("🔍", "%s", st.Header.Render(facet.JoinURL(cat.BaseURL, canonical)))
	if canonical != rawPath {
		out.Detailf("canonicalized from %q", rawPath)
	}
	if len(filters) > 0 && !valid.Contains(canonical) {
		return ferrors.Newf(ferrors.ErrCodeInvalidPath, "no items match %q", canonical).
			WithSuggestion("run 'facetgen inspect' to list reachable combinations")
	}

	var matched []facet.Item
	for _, item := range items {
		if facet.Matches(item, filters) {
			matched = append(matched, item)
		}
	}
	for key, value := range filters {
		out.Detailf("%s = %s", st.Label.Render(domain.Label(key)), domain.Label(value))
	}
	out.Statusf("📄", "%d matching item(s)", len(matched))
	for _, item := range matched {
		out.Detail(item.Key())
	}

	nav := facet.BuildUIData(domain, filters, valid, cat.BaseURL)
	for _, group := range nav.Groups {
		out.Statusf("🏷️ ", "%s", st.Label.Render(group.Label))
		for _, opt := range group.Options {
			marker := " "
			if opt.Selected {
				marker = "*"
			}
			out.Detailf("%s %s %s", marker, opt.Label, st.Count.Render(opt.URL))
		}
	}
	return nil
}

// resolveCatalog picks the named catalog, or the first configured one.
func resolveCatalog(cfg *config.Config, name string) (config.CatalogConfig, error) {
	if name != "" {
		return cfg.Catalog(name)
	}
	if len(cfg.Catalogs) == 0 {
		return config.CatalogConfig{}, ferrors.New(ferrors.ErrCodeInvalidCatalog, "no catalogs configured", nil).
			WithSuggestion("add a catalogs entry to " + config.ConfigFileName)
	}
	return cfg.Catalogs[0], nil
}
