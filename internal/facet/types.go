package facet

import (
	"maps"
	"sort"
)

// DeclarationKind identifies which form of raw attribute declaration a
// Declaration carries. Catalog authors use both forms interchangeably.
type DeclarationKind int

const (
	// DeclarationInvalid is the zero value; such declarations are skipped.
	DeclarationInvalid DeclarationKind = iota
	// DeclarationLine is the "Name: Value" single-string form.
	DeclarationLine
	// DeclarationPair is the explicit {name, value} form.
	DeclarationPair
)

// Declaration is one raw attribute declaration as authored in the content
// repository. The two declaration shapes are resolved once, at the
// normalizer boundary, rather than checked throughout the generator.
type Declaration struct {
	Kind DeclarationKind

	// Line holds the raw "Name: Value" string for DeclarationLine.
	Line string

	// Name and Value hold the explicit pair for DeclarationPair.
	Name  string
	Value string
}

// LineDeclaration wraps a raw "Name: Value" string.
func LineDeclaration(line string) Declaration {
	return Declaration{Kind: DeclarationLine, Line: line}
}

// PairDeclaration wraps an explicit name/value pair.
func PairDeclaration(name, value string) Declaration {
	return Declaration{Kind: DeclarationPair, Name: name, Value: value}
}

// Item is one catalog record as exposed by the content repository.
// Items are read-only to this package.
type Item interface {
	// Key returns a stable identifier for the item, used in listings output.
	Key() string

	// Declarations returns the item's raw attribute declarations.
	Declarations() []Declaration
}

// FilterSet maps attribute keys to a single normalized value each,
// representing one point in the combination lattice. The empty FilterSet
// matches every item. Treated as immutable: With and Without return copies.
type FilterSet map[string]string

// Keys returns the filter keys in sorted order.
func (f FilterSet) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// With returns a copy of the filter set with key set to value.
func (f FilterSet) With(key, value string) FilterSet {
	next := make(FilterSet, len(f)+1)
	maps.Copy(next, f)
	next[key] = value
	return next
}

// Without returns a copy of the filter set with key removed.
func (f FilterSet) Without(key string) FilterSet {
	next := make(FilterSet, len(f))
	maps.Copy(next, f)
	delete(next, key)
	return next
}

// Combination is one materialized, non-empty point in the filter lattice.
type Combination struct {
	// FilterSet is the constraint set this combination represents.
	FilterSet FilterSet

	// Path is the canonical URL path segment encoding the filter set.
	Path string

	// Count is the number of items matching the filter set.
	Count int

	// Items are the matched items, in corpus order.
	Items []Item

	// Description is a human-readable summary built from the display
	// lookup, e.g. "Bedrooms: 2, Type: Cottage".
	Description string
}

// PathSet is the set of canonical paths known to be valid (non-empty).
type PathSet map[string]struct{}

// ValidPaths collects the canonical paths of the given combinations.
func ValidPaths(combinations []*Combination) PathSet {
	set := make(PathSet, len(combinations))
	for _, c := range combinations {
		set[c.Path] = struct{}{}
	}
	return set
}

// Contains reports whether the set contains the given path.
func (s PathSet) Contains(path string) bool {
	_, ok := s[path]
	return ok
}
