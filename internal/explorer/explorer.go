// Package explorer runs the filter → aggregate pipeline over an enriched
// dataset and returns one immutable view per filter state.
package explorer

import (
	"github.com/dotcommander/basin/internal/aggregate"
	"github.com/dotcommander/basin/internal/dataset"
	"github.com/dotcommander/basin/internal/filter"
	"github.com/dotcommander/basin/internal/recommend"
	"github.com/dotcommander/basin/internal/scoring"
	"github.com/dotcommander/basin/internal/types"
)

// DefaultTopN is the length of the ranked list when none is configured.
const DefaultTopN = 5

// View is everything a presentation layer needs for one filter state.
// Callers must treat it as read-only; views are shared through the memo.
type View struct {
	Title   string         `json:"title"`
	Filters filter.Filters `json:"filters"`
	Options filter.Options `json:"options"`
	Weights WeightsView    `json:"weights"`

	Scorecards []scoring.DerivedScorecard `json:"scorecards"`
	Summary    aggregate.Summary          `json:"summary"`
	Countries  []aggregate.CountryStat    `json:"countries"`
	Top        []scoring.DerivedScorecard `json:"top"`

	Interventions    []types.Intervention `json:"interventions"`
	CountryFacets    []filter.Facet       `json:"countryFacets"`
	ValueChainFacets []filter.Facet       `json:"valueChainFacets"`
	TopTag           *aggregate.TagCount  `json:"topTag,omitempty"`

	Recommendations []recommend.Prioritized `json:"recommendations"`
	CrossCutting    types.CrossCutting      `json:"crossCutting"`
}

// WeightsView is the weighting scheme with each criterion's maximum points.
type WeightsView struct {
	Scheme    scoring.WeightingScheme `json:"scheme"`
	MaxPoints scoring.Scores          `json:"maxPoints"`
}

// Explorer holds the enriched dataset. It is not safe for concurrent use.
type Explorer struct {
	ds      *dataset.Dataset
	derived []scoring.DerivedScorecard
	options filter.Options
	weights WeightsView
	topN    int
	memo    map[filter.Filters]*View
}

// New enriches ds once. topN <= 0 selects DefaultTopN.
func New(ds *dataset.Dataset, topN int) *Explorer {
	if topN <= 0 {
		topN = DefaultTopN
	}
	derived := scoring.Enrich(ds.Scorecards, ds.Weights)
	return &Explorer{
		ds:      ds,
		derived: derived,
		options: filter.OptionsFor(derived),
		weights: WeightsView{Scheme: ds.Weights, MaxPoints: scoring.MaxPoints(ds.Weights)},
		topN:    topN,
		memo:    make(map[filter.Filters]*View),
	}
}

// Derived returns the enriched scorecards in dataset order.
func (e *Explorer) Derived() []scoring.DerivedScorecard {
	return e.derived
}

// Apply returns the view for f. Repeated calls with an equal Filters value
// return the same *View.
func (e *Explorer) Apply(f filter.Filters) *View {
	if v, ok := e.memo[f]; ok {
		return v
	}
	v := e.build(f)
	e.memo[f] = v
	return v
}

func (e *Explorer) build(f filter.Filters) *View {
	rows := filter.Scorecards(e.derived, f)
	interventions := filter.Interventions(e.ds.Interventions, f)

	// Recommendations look at location and value chain only.
	scope := f.Scope()
	recs := recommend.Prioritize(
		e.ds.Recommendations,
		filter.Interventions(e.ds.Interventions, scope),
		filter.Scorecards(e.derived, scope),
	)

	v := &View{
		Title:            e.ds.Title,
		Filters:          f,
		Options:          e.options,
		Weights:          e.weights,
		Scorecards:       rows,
		Summary:          aggregate.Summarize(rows),
		Countries:        aggregate.CompareCountries(rows),
		Top:              aggregate.Top(rows, e.topN),
		Interventions:    interventions,
		CountryFacets:    filter.CountryFacets(e.ds.Interventions, f),
		ValueChainFacets: filter.ValueChainFacets(e.ds.Interventions, f),
		Recommendations:  recs,
		CrossCutting:     e.ds.CrossCutting,
	}
	if tag, ok := aggregate.TopTag(interventions); ok {
		v.TopTag = &tag
	}
	return v
}
