package filter

import (
	"sort"

	"github.com/dotcommander/basin/internal/types"
)

// Interventions returns the interventions matching f in input order.
// The query also searches title, summary and tags. Sort settings are
// ignored.
func Interventions(items []types.Intervention, f Filters) []types.Intervention {
	out := make([]types.Intervention, 0, len(items))
	for _, iv := range items {
		if matchIntervention(iv, f) {
			out = append(out, iv)
		}
	}
	return out
}

func matchIntervention(iv types.Intervention, f Filters) bool {
	if !f.matchLocation(iv.Country, iv.Province, iv.ValueChain) {
		return false
	}
	q := f.query()
	if q == "" {
		return true
	}
	if containsAny(q, iv.Title, iv.Summary, iv.Country, iv.Province, iv.ValueChain) {
		return true
	}
	return containsAny(q, iv.Tags...)
}

// Facet is a filter value with the number of matching items.
type Facet struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CountryFacets counts interventions per country under every filter except
// the country filter itself, so the counts show what selecting each
// country would yield.
func CountryFacets(items []types.Intervention, f Filters) []Facet {
	base := f
	base.Country = ""
	return facets(items, base, func(iv types.Intervention) string { return iv.Country })
}

// ValueChainFacets is CountryFacets for the value chain dimension.
func ValueChainFacets(items []types.Intervention, f Filters) []Facet {
	base := f
	base.ValueChain = ""
	return facets(items, base, func(iv types.Intervention) string { return iv.ValueChain })
}

// facets groups matching items by key in first-appearance order, drops
// empty groups and orders by count descending.
func facets(items []types.Intervention, base Filters, key func(types.Intervention) string) []Facet {
	counts := make(map[string]int)
	var order []string
	for _, iv := range items {
		k := key(iv)
		if k == "" {
			continue
		}
		if _, ok := counts[k]; !ok {
			order = append(order, k)
			counts[k] = 0
		}
		if matchIntervention(iv, base) {
			counts[k]++
		}
	}

	out := make([]Facet, 0, len(order))
	for _, k := range order {
		if counts[k] > 0 {
			out = append(out, Facet{Name: k, Count: counts[k]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
