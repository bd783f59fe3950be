package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dotcommander/basin/internal/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleFormatter_Format(t *testing.T) {
	tests := []struct {
		name            string
		report          Report
		filters         filter.Filters
		quiet           bool
		verbose         bool
		wantContains    []string
		wantNotContains []string
	}{
		{
			name:   "quiet mode - no output",
			report: ReportDashboard,
			quiet:  true,
		},
		{
			name:    "dashboard",
			report:  ReportDashboard,
			filters: filter.Filters{SortKey: filter.SortTotal},
			wantContains: []string{
				"Test Basin", "Filters: none", "SUMMARY", "Scorecards:    3", "Average total: 60",
				"Best match:    Vegetables, Kratie, Cambodia (80, High)", "BANDS", "TOP 2",
				"COUNTRIES", "PRIORITY RECOMMENDATIONS", "Back women-led enterprises",
			},
			wantNotContains: []string{"Target women producers."},
		},
		{
			name:         "dashboard with no matches",
			report:       ReportDashboard,
			filters:      filter.Filters{Country: "Thailand"},
			wantContains: []string{"country=Thailand", "Scorecards:    0", "No scorecards match"},
			wantNotContains: []string{
				"CRITERION AVERAGES", "TOP ",
			},
		},
		{
			name:         "scorecards table",
			report:       ReportScorecards,
			filters:      filter.Filters{SortKey: "wee", Ascending: true},
			wantContains: []string{"Sorted by WEE", "Country", "Econ", "Quick", "Shrimp", "3 scorecards"},
			wantNotContains: []string{"raw:"},
		},
		{
			name:         "scorecards verbose shows raw scores",
			report:       ReportScorecards,
			verbose:      true,
			wantContains: []string{"raw: economic=80"},
		},
		{
			name:         "interventions with facets",
			report:       ReportInterventions,
			wantContains: []string{"Drip kits", "tags: irrigation, women", "2 interventions, most common tag: women (2)", "BY COUNTRY", "BY VALUE CHAIN"},
		},
		{
			name:         "recommendations show narrative",
			report:       ReportRecommendations,
			wantContains: []string{"PRIORITY RECOMMENDATIONS", "Target women producers.", "gap"},
		},
		{
			name:         "countries",
			report:       ReportCountries,
			filters:      filter.Filters{Query: "rice"},
			wantContains: []string{"query=\"rice\"", "Laos", "(1 scorecards)"},
			wantNotContains: []string{"Vietnam"},
		},
		{
			name:         "cross-cutting",
			report:       ReportCrossCutting,
			wantContains: []string{"Resilient growth", "SHARED CHALLENGE", "Shrinking margins", "countries: Cambodia, Laos", "DESIGN IMPLICATIONS", "THEMES", "Water", "FINDINGS"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			formatter := NewConsoleFormatter(tt.quiet, tt.verbose, false)
			require.NoError(t, formatter.Format(&buf, testView(tt.filters), tt.report))

			out := buf.String()
			if tt.quiet {
				assert.Empty(t, out)
			}
			for _, want := range tt.wantContains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.wantNotContains {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestConsoleFormatter_UnknownReport(t *testing.T) {
	err := NewConsoleFormatter(false, false, false).Format(&bytes.Buffer{}, testView(filter.Filters{}), Report("charts"))
	assert.Error(t, err)
}

func TestConsoleFormatter_SortedRowOrder(t *testing.T) {
	var buf bytes.Buffer
	view := testView(filter.Filters{SortKey: filter.SortTotal, Ascending: true})
	require.NoError(t, NewConsoleFormatter(false, false, false).Format(&buf, view, ReportScorecards))

	out := buf.String()
	assert.Less(t, strings.Index(out, "Shrimp"), strings.Index(out, "Vegetables"))
}

func TestRenderBar(t *testing.T) {
	f := NewConsoleFormatter(false, false, false)
	tests := []struct {
		name   string
		count  int
		total  int
		filled int
	}{
		{"half", 5, 10, 5},
		{"small count still shows", 1, 100, 1},
		{"empty", 0, 10, 0},
		{"full", 10, 10, 10},
		{"over total is capped", 12, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := f.renderBar(tt.count, tt.total, "12")
			assert.Equal(t, tt.filled, strings.Count(bar, "█"))
			assert.Equal(t, 10-tt.filled, strings.Count(bar, "░"))
		})
	}
	assert.Empty(t, f.renderBar(1, 0, "12"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Kratie", truncate("Kratie", 10))
	assert.Equal(t, "Premium...", truncate("Premium Rice Export", 10))
	assert.Equal(t, "Pr", truncate("Premium", 2))
}

func TestDescribeFilters(t *testing.T) {
	assert.Equal(t, "none", describeFilters(filter.Filters{SortKey: "total"}))
	assert.Equal(t, "country=Laos, value chain=Rice", describeFilters(filter.Filters{Country: "Laos", ValueChain: "Rice"}))
}
