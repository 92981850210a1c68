package facet

import (
	"net/url"
	"strings"
)

// EncodePath returns the canonical URL path segment for a filter set: keys
// in alphabetical order, each emitted as "key/value", joined with "/".
// The empty filter set encodes to "". Because normalized tokens never
// contain the '/' delimiter, distinct filter sets never collide.
func EncodePath(f FilterSet) string {
	if len(f) == 0 {
		return ""
	}
	segments := make([]string, 0, len(f)*2)
	for _, key := range f.Keys() {
		segments = append(segments, url.PathEscape(key), url.PathEscape(f[key]))
	}
	return strings.Join(segments, "/")
}

// DecodePath parses a canonical path back into a filter set. Empty segments
// are ignored and consecutive segments are consumed as (key, value) pairs.
// A trailing unpaired segment is dropped rather than treated as an error;
// such "incomplete" paths are exactly what the redirect builder targets.
//
// For any normalized filter set f, DecodePath(EncodePath(f)) == f.
func DecodePath(path string) FilterSet {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	f := make(FilterSet, len(segments)/2)
	for i := 0; i+1 < len(segments); i += 2 {
		f[unescapeSegment(segments[i])] = unescapeSegment(segments[i+1])
	}
	return f
}

// unescapeSegment url-decodes a segment, keeping the raw text on malformed
// escapes rather than failing the whole path.
func unescapeSegment(seg string) string {
	if decoded, err := url.PathUnescape(seg); err == nil {
		return decoded
	}
	return seg
}
