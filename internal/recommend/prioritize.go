package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/dotcommander/basin/internal/aggregate"
	"github.com/dotcommander/basin/internal/scoring"
	"github.com/dotcommander/basin/internal/types"
)

// Prioritized is a recommendation with the signals behind its priority.
type Prioritized struct {
	Recommendation types.Recommendation `json:"recommendation"`
	Priority       int                  `json:"priority"`
	GapSignal      int                  `json:"gapSignal"`
	TagSignal      int                  `json:"tagSignal"`
	Mapped         bool                 `json:"mapped"`
}

// Prioritize scores each recommendation and orders them by priority,
// highest first, keeping catalog order among equals.
//
// The gap signal is how far the in-scope average raw score for the
// category's criterion falls short of 100. The tag signal counts in-scope
// intervention tags equal, ignoring case, to one of the category's
// keywords. Recommendations whose category has no signal get priority 0.
func Prioritize(recs []types.Recommendation, interventions []types.Intervention, scorecards []scoring.DerivedScorecard) []Prioritized {
	averages := aggregate.RawCriterionAverages(scorecards)
	tags := TagCounts(interventions)

	out := make([]Prioritized, 0, len(recs))
	for _, rec := range recs {
		p := Prioritized{Recommendation: rec}
		if signal, ok := signals[rec.Category]; ok {
			p.Mapped = true
			p.GapSignal = GapSignal(averages.Get(signal.Criterion))
			for _, kw := range signal.Tags {
				p.TagSignal += tags[strings.ToLower(kw)]
			}
			p.Priority = Priority(p.GapSignal, p.TagSignal)
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// GapSignal returns max(0, 100 - criterionScore).
func GapSignal(criterionScore int) int {
	return max(0, FullScoreScale-criterionScore)
}

// Priority combines the two signals. The tag contribution is capped so it
// cannot outweigh the gap term.
func Priority(gapSignal, tagSignal int) int {
	tagPoints := min(tagSignal*PointsPerTag, MaxTagPoints)
	return int(math.Round(float64(gapSignal)*GapWeight + float64(tagPoints)))
}

// TagCounts counts intervention tags by lowercased value.
func TagCounts(interventions []types.Intervention) map[string]int {
	counts := make(map[string]int)
	for _, iv := range interventions {
		for _, tag := range iv.Tags {
			counts[strings.ToLower(tag)]++
		}
	}
	return counts
}
