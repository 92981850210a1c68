package facet

// Redirect sends an "incomplete" facet path, one ending in a bare attribute
// key with no value yet, to its best-known anchor page.
type Redirect struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// BuildRedirects synthesizes redirects for every dangling bare-key path: for
// each valid combination, appending any key not already constrained leads
// back to the combination itself, and a bare key with no preceding
// combination leads to the unfiltered root. Keys are expected in sorted
// order (Domain.Keys); combinations in generator order, which keeps the
// redirect file deterministic.
func BuildRedirects(keys []string, combinations []*Combination, baseURL string) []Redirect {
	var redirects []Redirect
	for _, c := range combinations {
		for _, key := range keys {
			if _, constrained := c.FilterSet[key]; constrained {
				continue
			}
			redirects = append(redirects, Redirect{
				From: JoinURL(baseURL, c.Path+"/"+key),
				To:   JoinURL(baseURL, c.Path),
			})
		}
	}
	for _, key := range keys {
		redirects = append(redirects, Redirect{
			From: JoinURL(baseURL, key),
			To:   JoinURL(baseURL, ""),
		})
	}
	return redirects
}
