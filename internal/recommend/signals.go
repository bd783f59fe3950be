// Package recommend ranks recommendations against the scorecards and
// interventions in scope.
package recommend

import (
	"github.com/dotcommander/basin/internal/scoring"
	"github.com/dotcommander/basin/internal/types"
)

// CategorySignal ties a recommendation category to the criterion it
// addresses and the intervention tags that count as evidence for it.
type CategorySignal struct {
	Criterion scoring.Criterion `json:"criterion"`
	Tags      []string          `json:"tags"`
}

// Priority weights. Fixed policy, not configuration.
const (
	GapWeight      = 0.65
	PointsPerTag   = 8
	MaxTagPoints   = 35
	FullScoreScale = 100
)

// signals is read-only after package init.
var signals = map[types.Category]CategorySignal{
	types.CategoryMarketSystems: {
		Criterion: scoring.Systemic,
		Tags:      []string{"market linkage", "collective marketing", "market access", "traceability", "branding"},
	},
	types.CategoryFinance: {
		Criterion: scoring.Economic,
		Tags:      []string{"processing", "value addition", "export", "carbon market", "finance"},
	},
	types.CategoryWEE: {
		Criterion: scoring.WEE,
		Tags:      []string{"women", "women empowerment"},
	},
	types.CategoryGreenGrowth: {
		Criterion: scoring.GreenGrowth,
		Tags:      []string{"climate-smart", "irrigation", "emission reduction", "mangrove", "biodiversity", "sustainable production"},
	},
	types.CategorySystemicChange: {
		Criterion: scoring.Systemic,
		Tags:      []string{"certification", "cooperative", "digital", "market linkage", "policy"},
	},
	types.CategoryDisabilityInclude: {
		Criterion: scoring.PWD,
		Tags:      []string{"inclusion", "accessibility", "pwd"},
	},
}

// SignalFor returns the signal configured for category.
func SignalFor(category types.Category) (CategorySignal, bool) {
	s, ok := signals[category]
	if !ok {
		return CategorySignal{}, false
	}
	s.Tags = append([]string(nil), s.Tags...)
	return s, true
}
