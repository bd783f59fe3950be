package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dotcommander/basin/internal/explorer"
	"github.com/dotcommander/basin/internal/scoring"
)

// CSVFormatter writes tabular reports as RFC 4180 CSV.
type CSVFormatter struct{}

// NewCSVFormatter creates a new CSVFormatter
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Format writes the rows behind report. The dashboard exports the
// filtered scorecards. Cross-cutting content is prose and has no table.
func (f *CSVFormatter) Format(w io.Writer, view *explorer.View, report Report) error {
	var records [][]string
	switch report {
	case ReportDashboard, ReportScorecards:
		records = scorecardRecords(view.Scorecards)
	case ReportInterventions:
		records = [][]string{{"id", "country", "province", "valueChain", "title", "summary", "tags"}}
		for _, iv := range view.Interventions {
			records = append(records, []string{
				iv.ID, iv.Country, iv.Province, iv.ValueChain, iv.Title, iv.Summary, strings.Join(iv.Tags, ";"),
			})
		}
	case ReportRecommendations:
		records = [][]string{{"rank", "id", "category", "title", "priority", "gapSignal", "tagSignal"}}
		for i, p := range view.Recommendations {
			records = append(records, []string{
				strconv.Itoa(i + 1), p.Recommendation.ID, string(p.Recommendation.Category), p.Recommendation.Title,
				strconv.Itoa(p.Priority), strconv.Itoa(p.GapSignal), strconv.Itoa(p.TagSignal),
			})
		}
	case ReportCountries:
		records = [][]string{{"country", "averageTotal", "count"}}
		for _, c := range view.Countries {
			records = append(records, []string{c.Country, strconv.Itoa(c.AverageTotal), strconv.Itoa(c.Count)})
		}
	default:
		return unsupported("csv", report)
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	return nil
}

// scorecardRecords emits raw and weighted scores per criterion so a
// spreadsheet can recompute totals.
func scorecardRecords(rows []scoring.DerivedScorecard) [][]string {
	header := []string{"id", "country", "province", "valueChain"}
	for _, c := range scoring.Criteria {
		header = append(header, string(c))
	}
	for _, c := range scoring.Criteria {
		header = append(header, string(c)+"Points")
	}
	header = append(header, "total", "band")

	records := [][]string{header}
	for _, d := range rows {
		rec := []string{d.ID, d.Country, d.Province, d.ValueChain}
		for _, c := range scoring.Criteria {
			rec = append(rec, strconv.Itoa(d.Criteria.Get(c)))
		}
		for _, c := range scoring.Criteria {
			rec = append(rec, strconv.Itoa(d.Value(c)))
		}
		rec = append(rec, strconv.Itoa(d.Total), string(d.Band))
		records = append(records, rec)
	}
	return records
}
