package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dotcommander/basin/internal/explorer"
	"github.com/dotcommander/basin/internal/scoring"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	verbose bool
	now     func() time.Time
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(verbose bool) *MarkdownFormatter {
	return &MarkdownFormatter{
		verbose: verbose,
		now:     time.Now,
	}
}

// Format formats the view as Markdown
func (f *MarkdownFormatter) Format(w io.Writer, view *explorer.View, report Report) error {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("# %s\n\n", view.Title))
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", f.now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("**Filters:** %s\n\n", describeFilters(view.Filters)))

	switch report {
	case ReportDashboard:
		f.writeSummary(&builder, view)
		f.writeScorecardTable(&builder, "Top Scorecards", view.Top)
		f.writeCountries(&builder, view)
		f.writeRecommendations(&builder, view)
	case ReportScorecards:
		f.writeScorecardTable(&builder, "Scorecards", view.Scorecards)
	case ReportInterventions:
		f.writeInterventions(&builder, view)
	case ReportRecommendations:
		f.writeRecommendations(&builder, view)
	case ReportCountries:
		f.writeCountries(&builder, view)
	case ReportCrossCutting:
		f.writeCrossCutting(&builder, view)
	default:
		return unsupported("markdown", report)
	}

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return fmt.Errorf("error writing markdown: %w", err)
	}
	return nil
}

func (f *MarkdownFormatter) writeSummary(b *strings.Builder, view *explorer.View) {
	s := view.Summary
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Scorecards | %d |\n", s.Count))
	if s.Count > 0 {
		b.WriteString(fmt.Sprintf("| Average total | %d |\n", s.AverageTotal))
		b.WriteString(fmt.Sprintf("| High band | %d |\n", s.HighCount))
		if s.BestMatch != nil {
			b.WriteString(fmt.Sprintf("| Best match | %s, %s (%d) |\n", s.BestMatch.ValueChain, s.BestMatch.Province, s.BestMatch.Total))
		}
		b.WriteString(fmt.Sprintf("| Strongest criterion | %s |\n", s.Strongest.Label()))
		b.WriteString(fmt.Sprintf("| Weakest criterion | %s |\n", s.Weakest.Label()))
		b.WriteString(fmt.Sprintf("| Profile gap | %d |\n", s.ProfileGap))
	}
	b.WriteString("\n")

	if s.Count == 0 {
		return
	}
	b.WriteString("### Criterion Averages\n\n")
	b.WriteString("| Criterion | Weight | Average | Max |\n")
	b.WriteString("|-----------|--------|---------|-----|\n")
	for _, c := range scoring.Criteria {
		b.WriteString(fmt.Sprintf("| %s | %d%% | %d | %d |\n",
			c.Label(), view.Weights.Scheme.Percent(c), s.CriterionAverages.Get(c), view.Weights.MaxPoints.Get(c)))
	}
	b.WriteString("\n")
}

func (f *MarkdownFormatter) writeScorecardTable(b *strings.Builder, title string, rows []scoring.DerivedScorecard) {
	b.WriteString(fmt.Sprintf("## %s\n\n", title))
	if len(rows) == 0 {
		b.WriteString("*No scorecards match the current filters.*\n\n")
		return
	}
	b.WriteString("| Country | Province | Value Chain |")
	for _, c := range scoring.Criteria {
		b.WriteString(fmt.Sprintf(" %s |", c.Label()))
	}
	b.WriteString(" Total | Band |\n")
	b.WriteString("|---|---|---|")
	b.WriteString(strings.Repeat("---|", len(scoring.Criteria)))
	b.WriteString("---|---|\n")

	for _, d := range rows {
		b.WriteString(fmt.Sprintf("| %s | %s | %s |", escapeCell(d.Country), escapeCell(d.Province), escapeCell(d.ValueChain)))
		for _, c := range scoring.Criteria {
			if f.verbose {
				b.WriteString(fmt.Sprintf(" %d (%d) |", d.Value(c), d.Criteria.Get(c)))
			} else {
				b.WriteString(fmt.Sprintf(" %d |", d.Value(c)))
			}
		}
		b.WriteString(fmt.Sprintf(" %d | %s |\n", d.Total, d.Band))
	}
	b.WriteString("\n")
}

func (f *MarkdownFormatter) writeCountries(b *strings.Builder, view *explorer.View) {
	b.WriteString("## Countries\n\n")
	if len(view.Countries) == 0 {
		b.WriteString("*No scorecards match the current filters.*\n\n")
		return
	}
	b.WriteString("| Country | Average total | Scorecards |\n")
	b.WriteString("|---------|---------------|------------|\n")
	for _, c := range view.Countries {
		b.WriteString(fmt.Sprintf("| %s | %d | %d |\n", escapeCell(c.Country), c.AverageTotal, c.Count))
	}
	b.WriteString("\n")
}

func (f *MarkdownFormatter) writeInterventions(b *strings.Builder, view *explorer.View) {
	b.WriteString("## Interventions\n\n")
	if len(view.Interventions) == 0 {
		b.WriteString("*No interventions match the current filters.*\n\n")
	}
	for _, iv := range view.Interventions {
		b.WriteString(fmt.Sprintf("### %s\n\n", iv.Title))
		b.WriteString(fmt.Sprintf("%s, %s, %s\n\n", iv.ValueChain, iv.Province, iv.Country))
		if iv.Summary != "" {
			b.WriteString(iv.Summary + "\n\n")
		}
		if len(iv.Tags) > 0 {
			tags := make([]string, 0, len(iv.Tags))
			for _, t := range iv.Tags {
				tags = append(tags, "`"+t+"`")
			}
			b.WriteString("Tags: " + strings.Join(tags, " ") + "\n\n")
		}
	}
	if view.TopTag != nil {
		b.WriteString(fmt.Sprintf("**Most common tag:** %s (%d)\n\n", view.TopTag.Tag, view.TopTag.Count))
	}
}

func (f *MarkdownFormatter) writeRecommendations(b *strings.Builder, view *explorer.View) {
	b.WriteString("## Priority Recommendations\n\n")
	for i, p := range view.Recommendations {
		b.WriteString(fmt.Sprintf("%d. **%s** (%s) - priority %d\n", i+1, p.Recommendation.Title, p.Recommendation.Category, p.Priority))
		if f.verbose {
			for _, para := range p.Recommendation.Narrative {
				b.WriteString("   - " + para + "\n")
			}
		}
	}
	b.WriteString("\n")
}

func (f *MarkdownFormatter) writeCrossCutting(b *strings.Builder, view *explorer.View) {
	cc := view.CrossCutting
	b.WriteString("## Cross-cutting Analysis\n\n")
	if cc.Focus != "" {
		b.WriteString(fmt.Sprintf("**Focus:** %s\n\n", cc.Focus))
	}
	if sc := cc.SharedChallenge; sc.Title != "" {
		b.WriteString(fmt.Sprintf("### %s\n\n", sc.Title))
		if sc.Description != "" {
			b.WriteString(sc.Description + "\n\n")
		}
		if len(sc.Countries) > 0 {
			b.WriteString("Countries: " + strings.Join(sc.Countries, ", ") + "\n\n")
		}
		if len(sc.ValueChains) > 0 {
			b.WriteString("Value chains: " + strings.Join(sc.ValueChains, ", ") + "\n\n")
		}
	}
	if len(cc.DesignImplications) > 0 {
		b.WriteString("### Design Implications\n\n")
		for _, d := range cc.DesignImplications {
			b.WriteString("- " + d + "\n")
		}
		b.WriteString("\n")
	}
	if len(cc.Themes) > 0 {
		b.WriteString("### Themes\n\n")
		for _, t := range cc.Themes {
			b.WriteString(fmt.Sprintf("- **%s**: %s\n", t.Name, t.Summary))
		}
		b.WriteString("\n")
	}
	if len(cc.Findings) > 0 {
		b.WriteString("### Findings\n\n")
		for _, fd := range cc.Findings {
			b.WriteString(fmt.Sprintf("- **%s**: %s\n", fd.Title, fd.Detail))
		}
		b.WriteString("\n")
	}
}

// escapeCell keeps pipes from breaking table rows.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
