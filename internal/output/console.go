package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dotcommander/basin/internal/aggregate"
	"github.com/dotcommander/basin/internal/explorer"
	"github.com/dotcommander/basin/internal/filter"
	"github.com/dotcommander/basin/internal/scoring"
)

// ConsoleFormatter formats output for console display
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
	styles   printStyles
}

// NewConsoleFormatter creates a new ConsoleFormatter. Styling is dropped
// when colorize is false.
func NewConsoleFormatter(quiet, verbose, colorize bool) *ConsoleFormatter {
	f := &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: colorize,
	}
	f.styles = newPrintStyles(colorize)
	return f
}

// printStyles holds all the styles used in console reports.
type printStyles struct {
	header lipgloss.Style
	box    lipgloss.Style
	high   lipgloss.Style
	medium lipgloss.Style
	lower  lipgloss.Style
	dim    lipgloss.Style
	bold   lipgloss.Style
}

func newPrintStyles(colorize bool) printStyles {
	if !colorize {
		plain := lipgloss.NewStyle()
		return printStyles{
			header: plain, high: plain, medium: plain, lower: plain, dim: plain, bold: plain,
			box: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		}
	}
	return printStyles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		box: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).Padding(0, 1),
		high:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		medium: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		lower:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		bold:   lipgloss.NewStyle().Bold(true),
	}
}

func (s printStyles) band(b scoring.Band) lipgloss.Style {
	switch b {
	case scoring.BandHigh:
		return s.high
	case scoring.BandMedium:
		return s.medium
	default:
		return s.lower
	}
}

func bandColor(b scoring.Band) string {
	switch b {
	case scoring.BandHigh:
		return "10"
	case scoring.BandMedium:
		return "3"
	default:
		return "9"
	}
}

// Format writes the requested report
func (f *ConsoleFormatter) Format(w io.Writer, view *explorer.View, report Report) error {
	if f.quiet {
		return nil
	}

	switch report {
	case ReportDashboard:
		f.printHeader(w, view)
		f.printSummary(w, view)
		f.printCriterionAverages(w, view)
		f.printTop(w, view)
		f.printCountries(w, view.Countries)
		f.printRecommendations(w, view, 3)
	case ReportScorecards:
		f.printHeader(w, view)
		f.printScorecards(w, view.Scorecards, view.Filters.SortKey)
	case ReportInterventions:
		f.printHeader(w, view)
		f.printInterventions(w, view)
	case ReportRecommendations:
		f.printHeader(w, view)
		f.printRecommendations(w, view, 0)
	case ReportCountries:
		f.printHeader(w, view)
		f.printCountries(w, view.Countries)
	case ReportCrossCutting:
		f.printCrossCutting(w, view)
	default:
		return unsupported("console", report)
	}
	return nil
}

func (f *ConsoleFormatter) printHeader(w io.Writer, view *explorer.View) {
	lines := []string{f.styles.header.Render(view.Title)}
	lines = append(lines, f.styles.dim.Render("Filters: "+describeFilters(view.Filters)))
	fmt.Fprintln(w, f.styles.box.Render(strings.Join(lines, "\n")))
}

func (f *ConsoleFormatter) printSummary(w io.Writer, view *explorer.View) {
	s := view.Summary
	fmt.Fprintln(w)
	fmt.Fprintln(w, f.styles.header.Render("SUMMARY"))
	fmt.Fprintf(w, "  Scorecards:    %d\n", s.Count)
	if s.Count == 0 {
		fmt.Fprintln(w, f.styles.dim.Render("  No scorecards match the current filters."))
		return
	}
	fmt.Fprintf(w, "  Average total: %d\n", s.AverageTotal)
	fmt.Fprintf(w, "  High band:     %d\n", s.HighCount)
	if s.BestMatch != nil {
		b := s.BestMatch
		fmt.Fprintf(w, "  Best match:    %s, %s, %s %s\n",
			b.ValueChain, b.Province, b.Country,
			f.styles.band(b.Band).Render(fmt.Sprintf("(%d, %s)", b.Total, b.Band)))
	}
	fmt.Fprintf(w, "  Strongest:     %s\n", s.Strongest.Label())
	fmt.Fprintf(w, "  Weakest:       %s\n", s.Weakest.Label())
	fmt.Fprintf(w, "  Profile gap:   %+d\n", s.ProfileGap)

	fmt.Fprintln(w)
	fmt.Fprintln(w, f.styles.header.Render("BANDS"))
	for _, bc := range s.Bands {
		label := fmt.Sprintf("%-7s", bc.Band)
		fmt.Fprintf(w, "  %s %3d %s\n",
			f.styles.band(bc.Band).Render(label), bc.Count,
			f.renderBar(bc.Count, s.Count, bandColor(bc.Band)))
	}
}

func (f *ConsoleFormatter) printCriterionAverages(w io.Writer, view *explorer.View) {
	if view.Summary.Count == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, f.styles.header.Render("CRITERION AVERAGES (weighted points)"))
	for _, c := range scoring.Criteria {
		avg := view.Summary.CriterionAverages.Get(c)
		points := view.Weights.MaxPoints.Get(c)
		fmt.Fprintf(w, "  %-13s %3d / %-3d %s\n", c.Label(), avg, points, f.renderBar(avg, points, "12"))
	}
}

func (f *ConsoleFormatter) printTop(w io.Writer, view *explorer.View) {
	if len(view.Top) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, f.styles.header.Render(fmt.Sprintf("TOP %d", len(view.Top))))
	for i, d := range view.Top {
		fmt.Fprintf(w, "  %s %-34s %s\n",
			f.styles.dim.Render(fmt.Sprintf("%d.", i+1)),
			truncate(fmt.Sprintf("%s, %s", d.ValueChain, d.Province), 34),
			f.styles.band(d.Band).Render(fmt.Sprintf("%3d %s", d.Total, d.Band)))
	}
}

func (f *ConsoleFormatter) printCountries(w io.Writer, countries []aggregate.CountryStat) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, f.styles.header.Render("COUNTRIES"))
	if len(countries) == 0 {
		fmt.Fprintln(w, f.styles.dim.Render("  No scorecards match the current filters."))
		return
	}
	for _, c := range countries {
		band := scoring.BandFromTotal(c.AverageTotal)
		fmt.Fprintf(w, "  %-12s %s %s %s\n",
			c.Country,
			f.styles.band(band).Render(fmt.Sprintf("%3d", c.AverageTotal)),
			f.renderBar(c.AverageTotal, 100, bandColor(band)),
			f.styles.dim.Render(fmt.Sprintf("(%d scorecards)", c.Count)))
	}
}

func (f *ConsoleFormatter) printScorecards(w io.Writer, rows []scoring.DerivedScorecard, key filter.SortKey) {
	fmt.Fprintln(w)
	if key != "" {
		fmt.Fprintln(w, f.styles.dim.Render("Sorted by "+key.Label()))
	}

	head := fmt.Sprintf("%-10s %-12s %-14s", "Country", "Province", "Value Chain")
	for _, c := range scoring.Criteria {
		head += fmt.Sprintf(" %5s", abbreviate(c))
	}
	head += "  Total Band"
	fmt.Fprintln(w, f.styles.bold.Render(head))

	for _, d := range rows {
		line := fmt.Sprintf("%-10s %-12s %-14s",
			truncate(d.Country, 10), truncate(d.Province, 12), truncate(d.ValueChain, 14))
		for _, c := range scoring.Criteria {
			line += fmt.Sprintf(" %5d", d.Value(c))
		}
		fmt.Fprintf(w, "%s  %5d %s\n", line, d.Total, f.styles.band(d.Band).Render(string(d.Band)))
		if f.verbose {
			raw := "  raw:"
			for _, c := range scoring.Criteria {
				raw += fmt.Sprintf(" %s=%d", c, d.Criteria.Get(c))
			}
			fmt.Fprintln(w, f.styles.dim.Render(raw))
		}
	}
	fmt.Fprintf(w, "\n%d scorecards\n", len(rows))
}

func (f *ConsoleFormatter) printInterventions(w io.Writer, view *explorer.View) {
	fmt.Fprintln(w)
	for _, iv := range view.Interventions {
		fmt.Fprintf(w, "%s %s\n", f.styles.bold.Render(iv.Title),
			f.styles.dim.Render(fmt.Sprintf("(%s, %s, %s)", iv.ValueChain, iv.Province, iv.Country)))
		if iv.Summary != "" {
			fmt.Fprintf(w, "  %s\n", iv.Summary)
		}
		if len(iv.Tags) > 0 {
			fmt.Fprintf(w, "  %s\n", f.styles.dim.Render("tags: "+strings.Join(iv.Tags, ", ")))
		}
	}
	fmt.Fprintf(w, "\n%d interventions", len(view.Interventions))
	if view.TopTag != nil {
		fmt.Fprintf(w, ", most common tag: %s (%d)", view.TopTag.Tag, view.TopTag.Count)
	}
	fmt.Fprintln(w)

	f.printFacets(w, "BY COUNTRY", view.CountryFacets)
	f.printFacets(w, "BY VALUE CHAIN", view.ValueChainFacets)
}

func (f *ConsoleFormatter) printFacets(w io.Writer, title string, facets []filter.Facet) {
	if len(facets) == 0 {
		return
	}
	total := 0
	for _, fc := range facets {
		total += fc.Count
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, f.styles.header.Render(title))
	for _, fc := range facets {
		fmt.Fprintf(w, "  %-14s %3d %s\n", truncate(fc.Name, 14), fc.Count, f.renderBar(fc.Count, total, "12"))
	}
}

// printRecommendations prints up to limit recommendations; limit 0 prints all.
func (f *ConsoleFormatter) printRecommendations(w io.Writer, view *explorer.View, limit int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, f.styles.header.Render("PRIORITY RECOMMENDATIONS"))
	for i, p := range view.Recommendations {
		if limit > 0 && i >= limit {
			break
		}
		fmt.Fprintf(w, "  %s %3d  %s %s\n",
			f.styles.dim.Render(fmt.Sprintf("%d.", i+1)),
			p.Priority,
			p.Recommendation.Title,
			f.styles.dim.Render("["+string(p.Recommendation.Category)+"]"))
		if limit == 0 || f.verbose {
			if p.Mapped {
				fmt.Fprintln(w, f.styles.dim.Render(fmt.Sprintf("       gap %d, matching tags %d", p.GapSignal, p.TagSignal)))
			}
			for _, para := range p.Recommendation.Narrative {
				fmt.Fprintf(w, "       %s\n", para)
			}
		}
	}
}

func (f *ConsoleFormatter) printCrossCutting(w io.Writer, view *explorer.View) {
	cc := view.CrossCutting
	lines := []string{f.styles.header.Render("Cross-cutting analysis")}
	if cc.Focus != "" {
		lines = append(lines, cc.Focus)
	}
	fmt.Fprintln(w, f.styles.box.Render(strings.Join(lines, "\n")))

	if sc := cc.SharedChallenge; sc.Title != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, f.styles.header.Render("SHARED CHALLENGE"))
		fmt.Fprintf(w, "  %s\n", f.styles.bold.Render(sc.Title))
		if sc.Description != "" {
			fmt.Fprintf(w, "  %s\n", sc.Description)
		}
		if len(sc.Countries) > 0 {
			fmt.Fprintf(w, "  %s\n", f.styles.dim.Render("countries: "+strings.Join(sc.Countries, ", ")))
		}
		if len(sc.ValueChains) > 0 {
			fmt.Fprintf(w, "  %s\n", f.styles.dim.Render("value chains: "+strings.Join(sc.ValueChains, ", ")))
		}
	}

	if len(cc.DesignImplications) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, f.styles.header.Render("DESIGN IMPLICATIONS"))
		for _, d := range cc.DesignImplications {
			fmt.Fprintf(w, "  - %s\n", d)
		}
	}
	if len(cc.Themes) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, f.styles.header.Render("THEMES"))
		for _, t := range cc.Themes {
			fmt.Fprintf(w, "  %s: %s\n", f.styles.bold.Render(t.Name), t.Summary)
		}
	}
	if len(cc.Findings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, f.styles.header.Render("FINDINGS"))
		for _, fd := range cc.Findings {
			fmt.Fprintf(w, "  %s\n", f.styles.bold.Render(fd.Title))
			if fd.Detail != "" {
				fmt.Fprintf(w, "    %s\n", fd.Detail)
			}
		}
	}
}

// renderBar draws a ten-cell bar for count out of total.
func (f *ConsoleFormatter) renderBar(count, total int, color string) string {
	if total <= 0 {
		return ""
	}
	barWidth := 10
	filled := (count * barWidth) / total
	if count > 0 && filled == 0 {
		filled = 1
	}
	filled = min(filled, barWidth)

	style := lipgloss.NewStyle()
	dimStyle := lipgloss.NewStyle()
	if f.colorize {
		style = style.Foreground(lipgloss.Color(color))
		dimStyle = dimStyle.Foreground(lipgloss.Color("8"))
	}
	return style.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", barWidth-filled))
}

func describeFilters(f filter.Filters) string {
	var parts []string
	if f.Country != "" {
		parts = append(parts, "country="+f.Country)
	}
	if f.Province != "" {
		parts = append(parts, "province="+f.Province)
	}
	if f.ValueChain != "" {
		parts = append(parts, "value chain="+f.ValueChain)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		parts = append(parts, fmt.Sprintf("query=%q", q))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// abbreviate returns a column heading of at most five characters.
func abbreviate(c scoring.Criterion) string {
	switch c {
	case scoring.Economic:
		return "Econ"
	case scoring.ProPoor:
		return "Poor"
	case scoring.GreenGrowth:
		return "Green"
	case scoring.QuickWin:
		return "Quick"
	case scoring.Systemic:
		return "Syst"
	default:
		return c.Label()
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
