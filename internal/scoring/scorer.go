package scoring

import "math"

// Score applies weights to a raw scorecard.
//
// Each criterion is rounded on its own before summing, so Total is always
// the exact sum of Weighted.
func Score(raw RawScorecard, weights WeightingScheme) DerivedScorecard {
	var weighted Scores
	var sum float64
	for _, c := range Criteria {
		points := roundInt(float64(raw.Criteria.Get(c)) * weights.Weight(c))
		weighted = weighted.With(c, points)
		sum += float64(points)
	}

	total := roundInt(sum)
	return DerivedScorecard{
		RawScorecard: raw,
		Weighted:     weighted,
		Total:        total,
		Band:         BandFromTotal(total),
	}
}

// Enrich scores every raw scorecard, preserving order. The result is a new
// slice; raws is not modified.
func Enrich(raws []RawScorecard, weights WeightingScheme) []DerivedScorecard {
	derived := make([]DerivedScorecard, 0, len(raws))
	for _, raw := range raws {
		derived = append(derived, Score(raw, weights))
	}
	return derived
}

// roundInt rounds half away from zero, which is half-up for the
// non-negative values scored here.
func roundInt(v float64) int {
	return int(math.Round(v))
}

// RoundDiv divides and rounds, returning 0 when n is 0.
func RoundDiv(sum, n int) int {
	if n == 0 {
		return 0
	}
	return roundInt(float64(sum) / float64(n))
}
