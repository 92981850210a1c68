// Package catalog reads item records from the content repository.
//
// Items are YAML files carrying membership tags and raw attribute
// declarations in either authored form: a "Name: Value" string or an
// explicit {name, value} mapping. Parsing is lenient; a malformed
// declaration becomes an invalid one that the normalizer skips, and a
// malformed file is logged and skipped, never fatal.
package catalog

import (
	"gopkg.in/yaml.v3"

	"github.com/lodgekit/facetgen/internal/facet"
)

// Item is one catalog record.
type Item struct {
	ID         string      `yaml:"id"`
	Title      string      `yaml:"title"`
	Tags       []string    `yaml:"tags"`
	Attributes []Attribute `yaml:"attributes"`

	// path is the content-relative file path, used as the fallback key.
	path string
}

// Key returns a stable identifier for the item: the declared id, or the
// content-relative path when no id is authored.
func (it *Item) Key() string {
	if it.ID != "" {
		return it.ID
	}
	return it.path
}

// Declarations implements facet.Item.
func (it *Item) Declarations() []facet.Declaration {
	decls := make([]facet.Declaration, len(it.Attributes))
	for i, a := range it.Attributes {
		decls[i] = a.decl
	}
	return decls
}

// HasTag reports whether the item carries the given membership tag.
func (it *Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Attribute wraps one raw attribute declaration, resolving the two authored
// shapes during YAML decoding.
type Attribute struct {
	decl facet.Declaration
}

// Declaration returns the resolved declaration.
func (a Attribute) Declaration() facet.Declaration {
	return a.decl
}

// LineAttribute builds an attribute from a raw "Name: Value" line.
func LineAttribute(line string) Attribute {
	return Attribute{decl: facet.LineDeclaration(line)}
}

// PairAttribute builds an attribute from an explicit name/value pair.
func PairAttribute(name, value string) Attribute {
	return Attribute{decl: facet.PairDeclaration(name, value)}
}

// UnmarshalYAML decodes either declaration shape. Anything else (sequences,
// null entries, non-scalar values) yields an invalid declaration rather than
// an error, matching the leniency policy for hand-authored content.
func (a *Attribute) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		// Raw string form; numbers and booleans end up as their source
		// text, which the normalizer then skips for lack of a colon.
		a.decl = facet.LineDeclaration(node.Value)
	case yaml.MappingNode:
		var pair struct {
			Name  string    `yaml:"name"`
			Value yaml.Node `yaml:"value"`
		}
		if err := node.Decode(&pair); err != nil || pair.Value.Kind != yaml.ScalarNode {
			a.decl = facet.Declaration{}
			return nil
		}
		// node.Value preserves the source text, so `value: Yes` stays the
		// string "Yes" instead of decoding to a boolean.
		a.decl = facet.PairDeclaration(pair.Name, pair.Value.Value)
	default:
		a.decl = facet.Declaration{}
	}
	return nil
}
