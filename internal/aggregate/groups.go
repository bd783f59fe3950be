package aggregate

import (
	"sort"

	"github.com/dotcommander/basin/internal/filter"
	"github.com/dotcommander/basin/internal/scoring"
	"github.com/dotcommander/basin/internal/types"
)

// CountryStat is the per-country slice of a filtered set.
type CountryStat struct {
	Country      string `json:"country"`
	AverageTotal int    `json:"averageTotal"`
	Count        int    `json:"count"`
}

// CompareCountries groups rows by country and averages their totals.
// Groups form in first-appearance order and are then ordered by average
// total, highest first; equal averages keep that first-appearance order.
func CompareCountries(rows []scoring.DerivedScorecard) []CountryStat {
	sums := make(map[string]int)
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range rows {
		if _, ok := counts[r.Country]; !ok {
			order = append(order, r.Country)
		}
		sums[r.Country] += r.Total
		counts[r.Country]++
	}

	out := make([]CountryStat, 0, len(order))
	for _, country := range order {
		out = append(out, CountryStat{
			Country:      country,
			AverageTotal: scoring.RoundDiv(sums[country], counts[country]),
			Count:        counts[country],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageTotal > out[j].AverageTotal
	})
	return out
}

// Top returns the n highest-scoring rows, ties in input order. n <= 0
// returns every row.
func Top(rows []scoring.DerivedScorecard, n int) []scoring.DerivedScorecard {
	ranked := filter.Sorted(rows, filter.SortTotal, false)
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TagCount is how often a tag appears.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TopTag returns the most frequent intervention tag. Ties go to the tag
// seen first. ok is false when no intervention carries a tag.
func TopTag(items []types.Intervention) (top TagCount, ok bool) {
	counts := make(map[string]int)
	var order []string
	for _, iv := range items {
		for _, tag := range iv.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}
	for _, tag := range order {
		if !ok || counts[tag] > top.Count {
			top = TagCount{Tag: tag, Count: counts[tag]}
			ok = true
		}
	}
	return top, ok
}
