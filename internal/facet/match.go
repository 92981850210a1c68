package facet

// Matches reports whether an item satisfies every constraint in the filter
// set. Matching is exact on normalized tokens: the item must declare each
// filter key with exactly the filtered value. An item with no declared
// attributes matches only the empty filter set.
//
// Exposed standalone so a rendering stage can re-filter an already-known
// page's item list without re-deriving combinations.
func Matches(item Item, f FilterSet) bool {
	if len(f) == 0 {
		return true
	}
	return matchAttrs(NormalizeAttributes(item), f)
}

// matchAttrs is the matcher core over pre-normalized attributes, shared with
// the generator so items are normalized once per run, not once per node.
func matchAttrs(attrs map[string]string, f FilterSet) bool {
	for key, value := range f {
		if attrs[key] != value {
			return false
		}
	}
	return true
}
