package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	ferrors "github.com/lodgekit/facetgen/internal/errors"
	"github.com/lodgekit/facetgen/internal/facet"
)

// CombinationRecord is the serialized form of one combination node.
type CombinationRecord struct {
	Path        string            `json:"path"`
	URL         string            `json:"url"`
	Filters     map[string]string `json:"filters"`
	Count       int               `json:"count"`
	Description string            `json:"description,omitempty"`
	Items       []string          `json:"items"`
}

// PageRecord is one renderable facet page: the root page or one
// combination, with the navigation data the templating stage needs.
type PageRecord struct {
	Path    string            `json:"path"`
	URL     string            `json:"url"`
	Filters map[string]string `json:"filters"`
	Count   int               `json:"count"`
	UI      *facet.UIData     `json:"ui"`
}

// CatalogArtifacts is everything generated for one catalog.
type CatalogArtifacts struct {
	Name         string
	Combinations []CombinationRecord
	Pages        []PageRecord
	Redirects    []facet.Redirect
}

// ArtifactWriter materializes catalog artifacts for the rendering stage:
// combinations.json, pages.json, and a netlify-style _redirects file, one
// directory per catalog.
type ArtifactWriter struct {
	dir    string
	pretty bool
}

// NewArtifactWriter creates a writer rooted at the output directory.
func NewArtifactWriter(dir string, pretty bool) *ArtifactWriter {
	return &ArtifactWriter{dir: dir, pretty: pretty}
}

// WriteCatalog writes all artifacts for one catalog.
func (w *ArtifactWriter) WriteCatalog(art *CatalogArtifacts) error {
	dir := filepath.Join(w.dir, art.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeArtifactWrite, err)
	}

	if err := w.writeJSON(filepath.Join(dir, "combinations.json"), art.Combinations); err != nil {
		return err
	}
	if err := w.writeJSON(filepath.Join(dir, "pages.json"), art.Pages); err != nil {
		return err
	}
	return w.writeRedirects(filepath.Join(dir, "_redirects"), art.Redirects)
}

// writeJSON marshals v deterministically and writes it to path.
func (w *ArtifactWriter) writeJSON(path string, v any) error {
	var (
		data []byte
		err  error
	)
	if w.pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return ferrors.Wrap(ferrors.ErrCodeInternal, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeArtifactWrite, err).WithDetail("path", path)
	}
	return nil
}

// writeRedirects writes "from to 301" lines, one redirect per line.
func (w *ArtifactWriter) writeRedirects(path string, redirects []facet.Redirect) error {
	var buf bytes.Buffer
	for _, r := range redirects {
		fmt.Fprintf(&buf, "%s %s 301\n", r.From, r.To)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeArtifactWrite, err).WithDetail("path", path)
	}
	return nil
}

// NewCombinationRecord serializes one combination node.
func NewCombinationRecord(c *facet.Combination, baseURL string) CombinationRecord {
	items := make([]string, len(c.Items))
	for i, item := range c.Items {
		items[i] = item.Key()
	}
	return CombinationRecord{
		Path:        c.Path,
		URL:         facet.JoinURL(baseURL, c.Path),
		Filters:     c.FilterSet,
		Count:       c.Count,
		Description: c.Description,
		Items:       items,
	}
}
