package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDomain_SortsKeysAndValues(t *testing.T) {
	items := []Item{
		pairItem("i1", "Type", "Villa", "Bedrooms", "3"),
		pairItem("i2", "Type", "Apartment"),
		pairItem("i3", "Type", "Cottage", "Bedrooms", "2"),
	}

	domain := BuildDomain(items)

	assert.Equal(t, []string{"bedrooms", "type"}, domain.Keys)
	assert.Equal(t, []string{"2", "3"}, domain.Values["bedrooms"])
	assert.Equal(t, []string{"apartment", "cottage", "villa"}, domain.Values["type"])
}

func TestBuildDomain_DeduplicatesValues(t *testing.T) {
	items := []Item{
		pairItem("i1", "Type", "Cottage"),
		pairItem("i2", "Type", "cottage"),
		lineItem("i3", "Type: COTTAGE"),
	}

	domain := BuildDomain(items)

	require.Equal(t, []string{"type"}, domain.Keys)
	assert.Equal(t, []string{"cottage"}, domain.Values["type"])
}

func TestBuildDomain_DisplayLookupFirstOccurrenceWins(t *testing.T) {
	// Given: the same token declared with different casing across the corpus
	items := []Item{
		pairItem("i1", "pet friendly", "YES"),
		pairItem("i2", "Pet Friendly", "Yes"),
	}

	// When: building the domain
	domain := BuildDomain(items)

	// Then: the first-observed casing is recorded, not the prettiest one
	assert.Equal(t, "pet friendly", domain.Label("pet-friendly"))
	assert.Equal(t, "YES", domain.Label("yes"))
}

func TestBuildDomain_DisplayKeepsTrimmedOriginal(t *testing.T) {
	items := []Item{lineItem("i1", "  Pet Friendly :  Yes ")}

	domain := BuildDomain(items)

	assert.Equal(t, "Pet Friendly", domain.Label("pet-friendly"))
	assert.Equal(t, "Yes", domain.Label("yes"))
}

func TestDomain_LabelFallsBackToToken(t *testing.T) {
	domain := BuildDomain(nil)

	assert.Equal(t, "unknown-token", domain.Label("unknown-token"))
}

func TestBuildDomain_EmptyCorpus(t *testing.T) {
	domain := BuildDomain(nil)

	assert.True(t, domain.Empty())
	assert.Empty(t, domain.Keys)
}

func TestBuildDomain_ItemsWithoutAttributesContributeNothing(t *testing.T) {
	items := []Item{
		testItem{key: "bare"},
		lineItem("junk", "not a declaration"),
	}

	domain := BuildDomain(items)

	assert.True(t, domain.Empty())
}
