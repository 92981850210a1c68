package facet

// testItem is a minimal Item for exercising the package without the catalog
// loader.
type testItem struct {
	key   string
	decls []Declaration
}

func (t testItem) Key() string { return t.key }

func (t testItem) Declarations() []Declaration { return t.decls }

// pairItem builds an item from alternating name/value pairs.
func pairItem(key string, pairs ...string) testItem {
	item := testItem{key: key}
	for i := 0; i+1 < len(pairs); i += 2 {
		item.decls = append(item.decls, PairDeclaration(pairs[i], pairs[i+1]))
	}
	return item
}

// lineItem builds an item from raw "Name: Value" lines.
func lineItem(key string, lines ...string) testItem {
	item := testItem{key: key}
	for _, line := range lines {
		item.decls = append(item.decls, LineDeclaration(line))
	}
	return item
}
