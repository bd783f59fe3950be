package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dotcommander/basin/internal/aggregate"
	"github.com/dotcommander/basin/internal/explorer"
	"github.com/dotcommander/basin/internal/filter"
	"github.com/dotcommander/basin/internal/recommend"
	"github.com/dotcommander/basin/internal/scoring"
	"github.com/dotcommander/basin/internal/types"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	indent bool
	now    func() time.Time
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(indent bool) *JSONFormatter {
	return &JSONFormatter{
		indent: indent,
		now:    time.Now,
	}
}

// JSONReport is the envelope of every JSON report
type JSONReport struct {
	Header  JSONHeader     `json:"header"`
	Filters filter.Filters `json:"filters"`
	Data    any            `json:"data"`
}

// JSONHeader identifies the producer and report
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Report    Report `json:"report"`
	Title     string `json:"title"`
	Timestamp string `json:"timestamp"`
}

// JSONInterventions is the payload of the interventions report
type JSONInterventions struct {
	Items            []types.Intervention `json:"items"`
	CountryFacets    []filter.Facet       `json:"countryFacets"`
	ValueChainFacets []filter.Facet       `json:"valueChainFacets"`
	TopTag           *aggregate.TagCount  `json:"topTag,omitempty"`
}

// JSONScorecards is the payload of the scorecards report
type JSONScorecards struct {
	Weights explorer.WeightsView       `json:"weights"`
	Items   []scoring.DerivedScorecard `json:"items"`
}

// Format formats the view as JSON
func (f *JSONFormatter) Format(w io.Writer, view *explorer.View, report Report) error {
	var data any
	switch report {
	case ReportDashboard:
		data = view
	case ReportScorecards:
		data = JSONScorecards{Weights: view.Weights, Items: view.Scorecards}
	case ReportInterventions:
		data = JSONInterventions{
			Items:            view.Interventions,
			CountryFacets:    view.CountryFacets,
			ValueChainFacets: view.ValueChainFacets,
			TopTag:           view.TopTag,
		}
	case ReportRecommendations:
		data = nonNil(view.Recommendations)
	case ReportCountries:
		data = view.Countries
	case ReportCrossCutting:
		data = view.CrossCutting
	default:
		return unsupported("json", report)
	}

	out := JSONReport{
		Header: JSONHeader{
			Tool:      Tool,
			Version:   Version,
			Report:    report,
			Title:     view.Title,
			Timestamp: f.now().Format(time.RFC3339),
		},
		Filters: view.Filters,
		Data:    data,
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(out, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(jsonBytes)); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}

func nonNil(recs []recommend.Prioritized) []recommend.Prioritized {
	if recs == nil {
		return []recommend.Prioritized{}
	}
	return recs
}
