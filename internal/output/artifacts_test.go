package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgekit/facetgen/internal/facet"
)

type fakeItem struct {
	key   string
	decls []facet.Declaration
}

func (f fakeItem) Key() string { return f.key }

func (f fakeItem) Declarations() []facet.Declaration { return f.decls }

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestArtifactWriter_WriteCatalog(t *testing.T) {
	dir := t.TempDir()
	w := NewArtifactWriter(dir, false)

	art := &CatalogArtifacts{
		Name: "properties",
		Combinations: []CombinationRecord{
			{Path: "type/cottage", URL: "/properties/type/cottage/", Count: 2},
		},
		Pages: []PageRecord{
			{Path: "", URL: "/properties/", Count: 3, UI: &facet.UIData{}},
		},
		Redirects: []facet.Redirect{
			{From: "/properties/type/", To: "/properties/"},
		},
	}

	require.NoError(t, w.WriteCatalog(art))

	var combos []CombinationRecord
	readJSON(t, filepath.Join(dir, "properties", "combinations.json"), &combos)
	require.Len(t, combos, 1)
	assert.Equal(t, "type/cottage", combos[0].Path)

	var pages []PageRecord
	readJSON(t, filepath.Join(dir, "properties", "pages.json"), &pages)
	require.Len(t, pages, 1)
	assert.Equal(t, "/properties/", pages[0].URL)

	redirects, err := os.ReadFile(filepath.Join(dir, "properties", "_redirects"))
	require.NoError(t, err)
	assert.Equal(t, "/properties/type/ /properties/ 301\n", string(redirects))
}

func TestArtifactWriter_PrettyOutputIsIndented(t *testing.T) {
	dir := t.TempDir()
	w := NewArtifactWriter(dir, true)

	art := &CatalogArtifacts{
		Name:         "properties",
		Combinations: []CombinationRecord{{Path: "type/cottage"}},
	}
	require.NoError(t, w.WriteCatalog(art))

	data, err := os.ReadFile(filepath.Join(dir, "properties", "combinations.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {")
}

func TestArtifactWriter_EmptyRedirectsWritesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	w := NewArtifactWriter(dir, false)

	require.NoError(t, w.WriteCatalog(&CatalogArtifacts{Name: "properties"}))

	data, err := os.ReadFile(filepath.Join(dir, "properties", "_redirects"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestNewCombinationRecord(t *testing.T) {
	c := &facet.Combination{
		FilterSet:   facet.FilterSet{"type": "cottage"},
		Path:        "type/cottage",
		Count:       1,
		Items:       []facet.Item{fakeItem{key: "rose-cottage"}},
		Description: "Type: Cottage",
	}

	rec := NewCombinationRecord(c, "/properties")

	assert.Equal(t, "/properties/type/cottage/", rec.URL)
	assert.Equal(t, []string{"rose-cottage"}, rec.Items)
	assert.Equal(t, "Type: Cottage", rec.Description)
}
