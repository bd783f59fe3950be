package filter

import (
	"testing"

	"github.com/dotcommander/basin/internal/types"
	"github.com/stretchr/testify/assert"
)

func interventionFixture() []types.Intervention {
	return []types.Intervention{
		{ID: "iv1", Country: "Cambodia", Province: "Kratie", ValueChain: "Cashews", Title: "Cashew processing hubs", Summary: "Village-level drying and shelling.", Tags: []string{"processing", "value addition"}},
		{ID: "iv2", Country: "Cambodia", Province: "Kratie", ValueChain: "Vegetables", Title: "Drip irrigation", Summary: "Shared pumps for women's groups.", Tags: []string{"irrigation", "Women"}},
		{ID: "iv3", Country: "Laos", Province: "Champasak", ValueChain: "Premium Rice", Title: "Organic certification", Summary: "Group certification for exporters.", Tags: []string{"certification", "export"}},
		{ID: "iv4", Country: "Vietnam", Province: "An Giang", ValueChain: "Shrimp", Title: "Mangrove-shrimp systems", Summary: "Integrated farming.", Tags: []string{"mangrove", "certification"}},
		{ID: "iv5", Country: "Vietnam", Province: "An Giang", ValueChain: "Premium Rice", Title: "Low-emission rice", Summary: "Alternate wetting and drying.", Tags: []string{"emission reduction"}},
	}
}

func interventionIDs(items []types.Intervention) []string {
	out := make([]string, 0, len(items))
	for _, iv := range items {
		out = append(out, iv.ID)
	}
	return out
}

func TestInterventions(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"no filters", Filters{}, []string{"iv1", "iv2", "iv3", "iv4", "iv5"}},
		{"country", Filters{Country: "Vietnam"}, []string{"iv4", "iv5"}},
		{"value chain across countries", Filters{ValueChain: "Premium Rice"}, []string{"iv3", "iv5"}},
		{"province and value chain", Filters{Province: "An Giang", ValueChain: "Shrimp"}, []string{"iv4"}},
		{"query hits title", Filters{Query: "drip"}, []string{"iv2"}},
		{"query hits summary", Filters{Query: "EXPORTERS"}, []string{"iv3"}},
		{"query hits tag", Filters{Query: "mangrove"}, []string{"iv4"}},
		{"query hits tag substring", Filters{Query: "certif"}, []string{"iv3", "iv4"}},
		{"query hits location", Filters{Query: "kratie"}, []string{"iv1", "iv2"}},
		{"query and country", Filters{Country: "Laos", Query: "mangrove"}, []string{}},
		{"sort key ignored", Filters{SortKey: SortTotal, Ascending: true}, []string{"iv1", "iv2", "iv3", "iv4", "iv5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interventions(interventionFixture(), tt.filters)
			assert.Equal(t, tt.want, interventionIDs(got))
		})
	}
}

func TestInterventions_Empty(t *testing.T) {
	got := Interventions(nil, Filters{Query: "x"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCountryFacets(t *testing.T) {
	items := interventionFixture()

	// Own filter is excluded: selecting Laos still shows every country.
	got := CountryFacets(items, Filters{Country: "Laos"})
	assert.Equal(t, []Facet{{"Cambodia", 2}, {"Vietnam", 2}, {"Laos", 1}}, got)

	// Other filters apply; zero-count countries are dropped.
	got = CountryFacets(items, Filters{ValueChain: "Premium Rice"})
	assert.Equal(t, []Facet{{"Laos", 1}, {"Vietnam", 1}}, got)

	assert.Empty(t, CountryFacets(items, Filters{Query: "nothing matches"}))
}

func TestValueChainFacets(t *testing.T) {
	items := interventionFixture()

	got := ValueChainFacets(items, Filters{ValueChain: "Shrimp"})
	assert.Equal(t, []Facet{{"Premium Rice", 2}, {"Cashews", 1}, {"Vegetables", 1}, {"Shrimp", 1}}, got)

	got = ValueChainFacets(items, Filters{Country: "Vietnam"})
	assert.Equal(t, []Facet{{"Premium Rice", 1}, {"Shrimp", 1}}, got)
}
