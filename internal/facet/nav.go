package facet

import "strings"

// UIData is the renderable navigation state for one page: the active filter
// chips and the selectable option groups that remain after dead-end facets
// are removed.
type UIData struct {
	// HasFilters is false only when the domain is empty, in which case the
	// rendering stage skips the navigation block entirely.
	HasFilters bool `json:"hasFilters"`

	// Active lists the currently selected filters, one chip each.
	Active []ActiveFilter `json:"active,omitempty"`

	// Groups lists the attribute groups with at least one offerable option.
	Groups []Group `json:"groups,omitempty"`
}

// ActiveFilter is one selected-filter chip.
type ActiveFilter struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	Label     string `json:"label"`
	RemoveURL string `json:"removeUrl"`
}

// Group is one attribute key with its offerable values.
type Group struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Options []Option `json:"options"`
}

// Option is one selectable value within a group.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	URL      string `json:"url"`
	Selected bool   `json:"selected"`
}

// BuildUIData assembles navigation data for the page at the given filter
// set. A value is offered only if it is already the active value for its key
// or if selecting it leads to a known non-empty combination, so the UI never
// links to a dead page. Groups with no surviving options are omitted.
func BuildUIData(domain *Domain, current FilterSet, valid PathSet, baseURL string) *UIData {
	if domain.Empty() {
		return &UIData{}
	}

	ui := &UIData{HasFilters: true}
	for _, key := range current.Keys() {
		ui.Active = append(ui.Active, ActiveFilter{
			Key:       key,
			Value:     current[key],
			Label:     domain.Label(current[key]),
			RemoveURL: JoinURL(baseURL, EncodePath(current.Without(key))),
		})
	}

	for _, key := range domain.Keys {
		group := Group{Key: key, Label: domain.Label(key)}
		for _, value := range domain.Values[key] {
			selected := current[key] == value
			path := EncodePath(current.With(key, value))
			if !selected && !valid.Contains(path) {
				continue
			}
			group.Options = append(group.Options, Option{
				Value:    value,
				Label:    domain.Label(value),
				URL:      JoinURL(baseURL, path),
				Selected: selected,
			})
		}
		if len(group.Options) > 0 {
			ui.Groups = append(ui.Groups, group)
		}
	}
	return ui
}

// JoinURL joins a base URL prefix with a canonical path, normalizing to a
// trailing slash so generated pages address directories on a static host.
// An empty path yields the unfiltered root.
func JoinURL(baseURL, path string) string {
	base := strings.TrimSuffix(baseURL, "/")
	if path == "" {
		return base + "/"
	}
	return base + "/" + path + "/"
}
