package facet

import (
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// generator carries the per-run state for one enumeration pass. Item
// attributes are normalized once up front; matched-item sets are tracked as
// bitmaps over corpus indices so narrowing a combination only rescans its
// parent's survivors.
type generator struct {
	items  []Item
	domain *Domain
	attrs  []map[string]string
	seen   map[string]struct{}
	out    []*Combination
}

// ListCombinations enumerates every attribute combination that matches at
// least one item, in depth-first order over the sorted domain keys: each
// surviving combination is emitted before its extensions, keys and values in
// sorted order. The order is deliberate; it fixes display and redirect
// ordering downstream.
func ListCombinations(items []Item) []*Combination {
	return ListDomainCombinations(items, BuildDomain(items))
}

// ListDomainCombinations is ListCombinations against a prebuilt domain, for
// callers that already hold one.
func ListDomainCombinations(items []Item, domain *Domain) []*Combination {
	if domain.Empty() {
		return nil
	}

	g := &generator{
		items:  items,
		domain: domain,
		attrs:  make([]map[string]string, len(items)),
		seen:   make(map[string]struct{}),
	}
	for i, item := range items {
		g.attrs[i] = NormalizeAttributes(item)
	}

	all := roaring.New()
	all.AddRange(0, uint64(len(items)))
	g.expand(FilterSet{}, all, 0)
	return g.out
}

// expand extends the filter set with every candidate (key, value) at or
// after start. The start index increases strictly on recursion, so each key
// subset is visited exactly once; the seen map is a defensive guard on top
// of that, never the mechanism. Combinations matching zero items are not
// recursed into: a superset of constraints can only match fewer items, so
// the whole subtree is empty.
func (g *generator) expand(f FilterSet, candidates *roaring.Bitmap, start int) {
	for i := start; i < len(g.domain.Keys); i++ {
		key := g.domain.Keys[i]
		for _, value := range g.domain.Values[key] {
			next := f.With(key, value)
			path := EncodePath(next)
			if _, dup := g.seen[path]; dup {
				continue
			}

			matched := g.narrow(candidates, key, value)
			if matched.IsEmpty() {
				continue
			}

			g.seen[path] = struct{}{}
			g.out = append(g.out, g.materialize(next, path, matched))
			g.expand(next, matched, i+1)
		}
	}
}

// narrow filters a candidate set down to items declaring key=value.
func (g *generator) narrow(candidates *roaring.Bitmap, key, value string) *roaring.Bitmap {
	matched := roaring.New()
	it := candidates.Iterator()
	for it.HasNext() {
		idx := it.Next()
		if g.attrs[idx][key] == value {
			matched.Add(idx)
		}
	}
	return matched
}

// materialize builds the combination node for a non-empty filter set.
func (g *generator) materialize(f FilterSet, path string, matched *roaring.Bitmap) *Combination {
	items := make([]Item, 0, matched.GetCardinality())
	it := matched.Iterator()
	for it.HasNext() {
		items = append(items, g.items[it.Next()])
	}
	return &Combination{
		FilterSet:   f,
		Path:        path,
		Count:       len(items),
		Items:       items,
		Description: g.describe(f),
	}
}

// describe renders the filter set with display-cased labels in key order.
func (g *generator) describe(f FilterSet) string {
	parts := make([]string, 0, len(f))
	for _, key := range f.Keys() {
		parts = append(parts, g.domain.Label(key)+": "+g.domain.Label(f[key]))
	}
	return strings.Join(parts, ", ")
}
