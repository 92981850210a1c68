package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodePath_SortsKeysAlphabetically(t *testing.T) {
	// Insertion order must not matter; only key order does.
	f := FilterSet{"type": "cottage", "bedrooms": "2"}

	assert.Equal(t, "bedrooms/2/type/cottage", EncodePath(f))
}

func TestEncodePath_EmptyFilterSet(t *testing.T) {
	assert.Equal(t, "", EncodePath(FilterSet{}))
	assert.Equal(t, "", EncodePath(nil))
}

func TestDecodePath_PairsSegments(t *testing.T) {
	f := DecodePath("bedrooms/2/type/cottage")

	assert.Equal(t, FilterSet{"bedrooms": "2", "type": "cottage"}, f)
}

func TestDecodePath_IgnoresEmptySegments(t *testing.T) {
	f := DecodePath("/bedrooms//2/type/cottage/")

	assert.Equal(t, FilterSet{"bedrooms": "2", "type": "cottage"}, f)
}

func TestDecodePath_DropsTrailingUnpairedSegment(t *testing.T) {
	// A dangling bare key is not an error; the redirect builder depends on
	// this parse producing the complete leading pairs.
	f := DecodePath("bedrooms/2/type")

	assert.Equal(t, FilterSet{"bedrooms": "2"}, f)
}

func TestDecodePath_EmptyPath(t *testing.T) {
	assert.Empty(t, DecodePath(""))
	assert.Empty(t, DecodePath("/"))
}

func TestPathCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		f    FilterSet
	}{
		{
			name: "single pair",
			f:    FilterSet{"type": "cottage"},
		},
		{
			name: "multiple pairs",
			f:    FilterSet{"bedrooms": "2", "pet-friendly": "yes", "type": "cottage"},
		},
		{
			name: "hyphenated tokens",
			f:    FilterSet{"hot-tub": "yes", "sea-view": "partial-view"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.f, DecodePath(EncodePath(tt.f)))
		})
	}
}

func TestPathCodec_RoundTripOverGeneratedCombinations(t *testing.T) {
	items := []Item{
		pairItem("i1", "Pet Friendly", "Yes", "Type", "Cottage", "Bedrooms", "2"),
		pairItem("i2", "Type", "Villa", "Bedrooms", "4"),
	}

	for _, c := range ListCombinations(items) {
		assert.Equal(t, c.FilterSet, DecodePath(c.Path), "path %q", c.Path)
	}
}
