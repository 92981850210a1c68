package facet

import "sort"

// Domain is the catalog-wide attribute domain: every attribute key observed
// anywhere in the corpus mapped to its sorted distinct normalized values.
// Rebuilt fully on every run; it has no identity across builds.
type Domain struct {
	// Keys is the sorted list of attribute keys.
	Keys []string

	// Values maps each key to its sorted distinct normalized values.
	Values map[string][]string

	// Display maps a normalized token (key or value) back to the
	// first-observed original casing, for rendering only.
	Display map[string]string
}

// Empty reports whether the corpus produced no attributes at all.
func (d *Domain) Empty() bool {
	return d == nil || len(d.Keys) == 0
}

// Label returns the display form of a normalized token, falling back to the
// token itself when no original casing was recorded.
func (d *Domain) Label(token string) string {
	if d != nil {
		if label, ok := d.Display[token]; ok {
			return label
		}
	}
	return token
}

// BuildDomain scans the full item list once, accumulating per-key value sets
// and the display lookup. First occurrence wins for display strings: the
// recorded form is the trimmed original, before casing or slugification.
func BuildDomain(items []Item) *Domain {
	sets := make(map[string]map[string]struct{})
	display := make(map[string]string)

	for _, item := range items {
		for _, decl := range item.Declarations() {
			name, value, ok := decl.fields()
			if !ok {
				continue
			}
			key, val := Slugify(name), Slugify(value)
			if key == "" || val == "" {
				continue
			}

			set, ok := sets[key]
			if !ok {
				set = make(map[string]struct{})
				sets[key] = set
			}
			set[val] = struct{}{}

			if _, seen := display[key]; !seen {
				display[key] = name
			}
			if _, seen := display[val]; !seen {
				display[val] = value
			}
		}
	}

	domain := &Domain{
		Keys:    make([]string, 0, len(sets)),
		Values:  make(map[string][]string, len(sets)),
		Display: display,
	}
	for key, set := range sets {
		values := make([]string, 0, len(set))
		for v := range set {
			values = append(values, v)
		}
		sort.Strings(values)
		domain.Keys = append(domain.Keys, key)
		domain.Values[key] = values
	}
	sort.Strings(domain.Keys)
	return domain
}
