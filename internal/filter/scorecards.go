package filter

import (
	"sort"

	"github.com/dotcommander/basin/internal/scoring"
)

// Scorecards returns the scorecards matching f, ordered by f.SortKey.
//
// Predicates combine with AND. The query is a case-insensitive substring
// test against country, province and value chain. Sorting is stable and
// descending unless f.Ascending is set.
func Scorecards(derived []scoring.DerivedScorecard, f Filters) []scoring.DerivedScorecard {
	q := f.query()
	out := make([]scoring.DerivedScorecard, 0, len(derived))
	for _, d := range derived {
		if !f.matchLocation(d.Country, d.Province, d.ValueChain) {
			continue
		}
		if q != "" && !containsAny(q, d.Country, d.Province, d.ValueChain) {
			continue
		}
		out = append(out, d)
	}

	if f.SortKey != "" {
		Sort(out, f.SortKey, f.Ascending)
	}
	return out
}

// Sort orders rows in place by key. Equal values keep their relative order.
func Sort(rows []scoring.DerivedScorecard, key SortKey, ascending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := key.Value(rows[i]), key.Value(rows[j])
		if ascending {
			return a < b
		}
		return a > b
	})
}

// Sorted returns a sorted copy of rows.
func Sorted(rows []scoring.DerivedScorecard, key SortKey, ascending bool) []scoring.DerivedScorecard {
	out := append([]scoring.DerivedScorecard(nil), rows...)
	Sort(out, key, ascending)
	return out
}

// Options lists the distinct countries, provinces and value chains in
// order of first appearance.
type Options struct {
	Countries   []string `json:"countries"`
	Provinces   []string `json:"provinces"`
	ValueChains []string `json:"valueChains"`
}

// OptionsFor collects filter options from the derived dataset.
func OptionsFor(derived []scoring.DerivedScorecard) Options {
	var opts Options
	seen := map[string]map[string]bool{
		"country":    {},
		"province":   {},
		"valueChain": {},
	}
	add := func(dim, v string, dst *[]string) {
		if v == "" || seen[dim][v] {
			return
		}
		seen[dim][v] = true
		*dst = append(*dst, v)
	}
	for _, d := range derived {
		add("country", d.Country, &opts.Countries)
		add("province", d.Province, &opts.Provinces)
		add("valueChain", d.ValueChain, &opts.ValueChains)
	}
	return opts
}
