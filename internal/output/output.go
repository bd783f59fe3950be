// Package output renders explorer views as console text, JSON, Markdown
// or CSV.
package output

import (
	"fmt"
	"io"

	"github.com/dotcommander/basin/internal/explorer"
)

// Tool and Version identify the producer in machine-readable reports.
const (
	Tool    = "basin"
	Version = "1.0.0"
)

// Report selects which part of a view is rendered.
type Report string

const (
	ReportDashboard       Report = "dashboard"
	ReportScorecards      Report = "scorecards"
	ReportInterventions   Report = "interventions"
	ReportRecommendations Report = "recommendations"
	ReportCountries       Report = "countries"
	ReportCrossCutting    Report = "crosscutting"
)

// Reports lists every report in menu order.
var Reports = []Report{
	ReportDashboard, ReportScorecards, ReportInterventions,
	ReportRecommendations, ReportCountries, ReportCrossCutting,
}

// ParseReport validates a report name.
func ParseReport(s string) (Report, error) {
	for _, r := range Reports {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown report %q", s)
}

// Formatter renders one report of a view.
type Formatter interface {
	Format(w io.Writer, view *explorer.View, report Report) error
}

func unsupported(format string, report Report) error {
	return fmt.Errorf("%s output is not available for the %s report", format, report)
}
