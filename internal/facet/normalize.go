package facet

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalization uses a single slugified mode throughout the package: tokens
// are trimmed, lower-cased, transliterated to ASCII, and non-alphanumeric
// runs collapse to single hyphens ("Pet Friendly" -> "pet-friendly").
// Domain building, display lookup, path encoding, and item matching all share
// this mode; mixing strictness levels breaks round-tripping and matching.

// asciiFold strips combining marks after NFD decomposition, so accented
// characters reduce to their ASCII base ("Café" -> "Cafe").
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a raw token to its canonical URL-safe form. The result
// never contains the '/' path delimiter, which keeps the filter-set to
// canonical-path mapping a bijection.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(asciiFold, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// fields resolves the declaration union into a trimmed (name, value) pair.
// Returns ok=false for declarations that should be skipped: invalid shape,
// missing colon in line form, or an empty side after trimming. Skipping
// rather than erroring is deliberate leniency for hand-authored content.
func (d Declaration) fields() (name, value string, ok bool) {
	switch d.Kind {
	case DeclarationLine:
		name, value, ok = strings.Cut(d.Line, ":")
		if !ok {
			return "", "", false
		}
	case DeclarationPair:
		name, value = d.Name, d.Value
	default:
		return "", "", false
	}

	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if name == "" || value == "" {
		return "", "", false
	}
	return name, value, true
}

// NormalizeAttributes returns the canonical key -> value mapping for one
// item's declarations. Pure function; malformed entries are dropped.
func NormalizeAttributes(item Item) map[string]string {
	attrs := make(map[string]string)
	for _, d := range item.Declarations() {
		name, value, ok := d.fields()
		if !ok {
			continue
		}
		key, val := Slugify(name), Slugify(value)
		if key == "" || val == "" {
			continue
		}
		attrs[key] = val
	}
	return attrs
}
