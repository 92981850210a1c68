package catalog

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"gopkg.in/yaml.v3"

	ferrors "github.com/lodgekit/facetgen/internal/errors"
	"github.com/lodgekit/facetgen/internal/facet"
)

// parseCacheSize bounds the per-loader parse cache. Watch mode rebuilds the
// full index on every change; caching parses keeps unchanged files cheap.
const parseCacheSize = 4096

// cachedItem is one memoized parse result, keyed by path and invalidated
// when size or mtime moves.
type cachedItem struct {
	modTime time.Time
	size    int64
	item    *Item
}

// Loader reads item records from a content directory.
// A Loader is intended to live across watch-mode rebuilds so its parse
// cache pays off; it is not safe for concurrent Load calls.
type Loader struct {
	dir    string
	logger *slog.Logger
	cache  *lru.Cache[string, cachedItem]
}

// NewLoader creates a loader for the given content directory.
func NewLoader(dir string, logger *slog.Logger) (*Loader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cache, err := lru.New[string, cachedItem](parseCacheSize)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInternal, err)
	}
	return &Loader{dir: dir, logger: logger, cache: cache}, nil
}

// Load reads every item record under the content directory, in path order
// for deterministic downstream iteration. Unparsable files are logged and
// skipped; only a missing or unreadable directory is an error.
func (l *Loader) Load(ctx context.Context) ([]*Item, error) {
	if _, err := os.Stat(l.dir); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeContentDirMissing, err).
			WithSuggestion("create the content directory or set content.dir in .facetgen.yaml")
	}

	var paths []string
	err := filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !isItemFile(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeContentUnreadable, err)
	}
	sort.Strings(paths)

	items := make([]*Item, 0, len(paths))
	for _, path := range paths {
		item, err := l.loadFile(path)
		if err != nil {
			l.logger.Warn("skipping unparsable item file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// loadFile parses one item file, consulting the cache first.
func (l *Loader) loadFile(path string) (*Item, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(l.dir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	if cached, ok := l.cache.Get(rel); ok {
		if cached.modTime.Equal(info.ModTime()) && cached.size == info.Size() {
			return cached.item, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	item := &Item{path: strings.TrimSuffix(rel, filepath.Ext(rel))}
	if err := yaml.Unmarshal(data, item); err != nil {
		return nil, err
	}

	l.cache.Add(rel, cachedItem{modTime: info.ModTime(), size: info.Size(), item: item})
	return item, nil
}

// isItemFile reports whether a path looks like an item record.
func isItemFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// FilterByTag returns the items carrying the given membership tag,
// preserving corpus order.
func FilterByTag(items []*Item, tag string) []*Item {
	var tagged []*Item
	for _, item := range items {
		if item.HasTag(tag) {
			tagged = append(tagged, item)
		}
	}
	return tagged
}

// FacetItems adapts catalog items to the facet generator's input type.
func FacetItems(items []*Item) []facet.Item {
	out := make([]facet.Item, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
