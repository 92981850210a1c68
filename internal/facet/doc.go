// Package facet builds the faceted-navigation index for a catalog.
//
// Given the full in-memory item list for one catalog, it enumerates every
// non-empty combination of attribute constraints, assigns each combination a
// canonical URL path, and produces the matched-item listings, navigation UI
// data, and redirect rules a static rendering stage needs. The package is
// purely functional over an immutable item snapshot: no I/O, no shared
// mutable state, and no error paths. Malformed attribute declarations,
// attribute-less items, and empty corpora all degrade to empty results.
//
// Every run recomputes the full index, so output is deterministic and
// idempotent for an unchanged corpus. Independent catalogs can be processed
// concurrently by the caller; the package itself is single-threaded.
package facet
