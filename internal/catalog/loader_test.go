package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeItem(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestLoader(t *testing.T, dir string) *Loader {
	t.Helper()
	loader, err := NewLoader(dir, nil)
	require.NoError(t, err)
	return loader
}

func TestLoader_LoadsItemsInPathOrder(t *testing.T) {
	dir := t.TempDir()
	writeItem(t, dir, "b-villa.yaml", "id: villa\ntags: [property]\n")
	writeItem(t, dir, "a-cottage.yaml", "id: cottage\ntags: [property]\n")
	writeItem(t, dir, "nested/c-lodge.yml", "id: lodge\ntags: [property]\n")

	items, err := newTestLoader(t, dir).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "cottage", items[0].Key())
	assert.Equal(t, "villa", items[1].Key())
	assert.Equal(t, "lodge", items[2].Key())
}

func TestLoader_IgnoresNonItemFiles(t *testing.T) {
	dir := t.TempDir()
	writeItem(t, dir, "item.yaml", "id: one\n")
	writeItem(t, dir, "notes.txt", "not an item")
	writeItem(t, dir, "image.png", "binary")

	items, err := newTestLoader(t, dir).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestLoader_SkipsUnparsableFiles(t *testing.T) {
	dir := t.TempDir()
	writeItem(t, dir, "good.yaml", "id: good\n")
	writeItem(t, dir, "bad.yaml", "id: [unclosed\n")

	items, err := newTestLoader(t, dir).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "good", items[0].Key())
}

func TestLoader_MissingDirectory(t *testing.T) {
	loader := newTestLoader(t, filepath.Join(t.TempDir(), "nope"))

	_, err := loader.Load(context.Background())

	assert.Error(t, err)
}

func TestLoader_PathKeyOmitsExtension(t *testing.T) {
	dir := t.TempDir()
	writeItem(t, dir, "props/rose-cottage.yaml", "title: Rose Cottage\n")

	items, err := newTestLoader(t, dir).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "props/rose-cottage", items[0].Key())
}

func TestLoader_CacheInvalidatesOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeItem(t, dir, "item.yaml", "id: before\n")
	loader := newTestLoader(t, dir)

	items, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "before", items[0].Key())

	// Rewrite with different content and a bumped mtime.
	require.NoError(t, os.WriteFile(path, []byte("id: after-change\n"), 0o644))

	items, err = loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "after-change", items[0].Key())
}

func TestFilterByTag(t *testing.T) {
	items := []*Item{
		{ID: "a", Tags: []string{"property"}},
		{ID: "b", Tags: []string{"product"}},
		{ID: "c", Tags: []string{"property", "featured"}},
	}

	tagged := FilterByTag(items, "property")

	require.Len(t, tagged, 2)
	assert.Equal(t, "a", tagged[0].ID)
	assert.Equal(t, "c", tagged[1].ID)
	assert.Empty(t, FilterByTag(items, "missing"))
}

func TestFacetItems_PreservesOrder(t *testing.T) {
	items := []*Item{{ID: "a"}, {ID: "b"}}

	adapted := FacetItems(items)

	require.Len(t, adapted, 2)
	assert.Equal(t, "a", adapted[0].Key())
	assert.Equal(t, "b", adapted[1].Key())
}
