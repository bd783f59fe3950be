// Package aggregate computes summary statistics over a filtered set of
// derived scorecards. Every function is total: an empty input yields zero
// values rather than an error.
package aggregate

import (
	"github.com/dotcommander/basin/internal/scoring"
)

// BandCount is the number of scorecards in one band.
type BandCount struct {
	Band  scoring.Band `json:"band"`
	Count int          `json:"count"`
}

// Summary holds the headline numbers for a filtered set.
type Summary struct {
	Count        int                       `json:"count"`
	AverageTotal int                       `json:"averageTotal"`
	HighCount    int                       `json:"highCount"`
	BestMatch    *scoring.DerivedScorecard `json:"bestMatch,omitempty"`

	// CriterionAverages averages the weighted points per criterion.
	CriterionAverages scoring.Scores `json:"criterionAverages"`
	Bands             []BandCount    `json:"bands"`

	// Strongest and Weakest are empty when Count is 0.
	Strongest scoring.Criterion `json:"strongest,omitempty"`
	Weakest   scoring.Criterion `json:"weakest,omitempty"`

	// ProfileGap is the best match's raw criterion sum minus the sum of
	// CriterionAverages. It may be negative.
	ProfileGap int `json:"profileGap"`
}

// Summarize aggregates rows.
func Summarize(rows []scoring.DerivedScorecard) Summary {
	s := Summary{
		Count: len(rows),
		Bands: BandDistribution(rows),
	}
	if len(rows) == 0 {
		return s
	}

	sum := 0
	for _, r := range rows {
		sum += r.Total
		if scoring.IsHigh(r.Total) {
			s.HighCount++
		}
	}
	s.AverageTotal = scoring.RoundDiv(sum, len(rows))
	s.BestMatch = BestMatch(rows)
	s.CriterionAverages = CriterionAverages(rows)
	s.Strongest, s.Weakest = Extremes(s.CriterionAverages)
	s.ProfileGap = s.BestMatch.Criteria.Sum() - s.CriterionAverages.Sum()
	return s
}

// BestMatch returns the row with the highest total. Among ties the first
// row wins. It returns nil for an empty slice.
func BestMatch(rows []scoring.DerivedScorecard) *scoring.DerivedScorecard {
	if len(rows) == 0 {
		return nil
	}
	best := rows[0]
	for _, r := range rows[1:] {
		if r.Total > best.Total {
			best = r
		}
	}
	return &best
}

// CriterionAverages returns the rounded mean weighted points per criterion.
func CriterionAverages(rows []scoring.DerivedScorecard) scoring.Scores {
	return averages(rows, func(r scoring.DerivedScorecard) scoring.Scores { return r.Weighted })
}

// RawCriterionAverages returns the rounded mean raw 0-100 score per criterion.
func RawCriterionAverages(rows []scoring.DerivedScorecard) scoring.Scores {
	return averages(rows, func(r scoring.DerivedScorecard) scoring.Scores { return r.Criteria })
}

func averages(rows []scoring.DerivedScorecard, pick func(scoring.DerivedScorecard) scoring.Scores) scoring.Scores {
	var out scoring.Scores
	for _, c := range scoring.Criteria {
		sum := 0
		for _, r := range rows {
			sum += pick(r).Get(c)
		}
		out = out.With(c, scoring.RoundDiv(sum, len(rows)))
	}
	return out
}

// Extremes returns the criteria with the highest and lowest value. Ties go
// to the earlier criterion in canonical order.
func Extremes(s scoring.Scores) (strongest, weakest scoring.Criterion) {
	strongest, weakest = scoring.Criteria[0], scoring.Criteria[0]
	for _, c := range scoring.Criteria[1:] {
		if s.Get(c) > s.Get(strongest) {
			strongest = c
		}
		if s.Get(c) < s.Get(weakest) {
			weakest = c
		}
	}
	return strongest, weakest
}

// BandDistribution counts rows per band in High, Medium, Lower order,
// leaving out bands with no rows.
func BandDistribution(rows []scoring.DerivedScorecard) []BandCount {
	counts := make(map[scoring.Band]int, len(scoring.Bands))
	for _, r := range rows {
		counts[r.Band]++
	}
	out := make([]BandCount, 0, len(scoring.Bands))
	for _, b := range scoring.Bands {
		if counts[b] > 0 {
			out = append(out, BandCount{Band: b, Count: counts[b]})
		}
	}
	return out
}
