package cmd

import (
	"fmt"

	"github.com/dotcommander/basin/internal/output"
	"github.com/spf13/cobra"
)

var dashboardCmd = newReportCmd(output.ReportDashboard,
	"Show the summary dashboard",
	`The dashboard combines the scorecard summary, band distribution, criterion
averages, the top-ranked scorecards, the country comparison and the three
highest priority recommendations.

This is also what runs when basin is invoked without a subcommand.`)

var scorecardsCmd = newReportCmd(output.ReportScorecards,
	"List weighted scorecards",
	`The scorecards command lists every scorecard matching the filters with its
weighted criterion points, total and band.

Use --sort with "total" or a criterion name (economic, proPoor,
greenGrowth, wee, pwd, systemic, quickWin) and --asc to reverse the
order. --verbose adds the raw 0-100 scores.`)

var interventionsCmd = newReportCmd(output.ReportInterventions,
	"List candidate interventions",
	`The interventions command lists the interventions matching the filters,
with counts per country and per value chain and the most common tag.`)

var recommendationsCmd = newReportCmd(output.ReportRecommendations,
	"Rank recommendations by priority",
	`The recommendations command ranks the programme recommendations for the
current country, province and value chain.

Each priority blends the gap below the ideal on the criteria a category
addresses with how many scoped interventions carry that category's
keywords. --query and --sort do not change the ranking.`)

var countriesCmd = newReportCmd(output.ReportCountries,
	"Compare countries by average total",
	`The countries command compares the filtered scorecards country by country,
ordered by average weighted total.`)

var crossCuttingCmd = newReportCmd(output.ReportCrossCutting,
	"Show the cross-cutting analysis",
	`The crosscutting command prints the shared challenge, design implications,
themes and findings that apply across the whole assessment.`)

func newReportCmd(report output.Report, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:   string(report),
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runReport(report); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				exitFunc(1)
			}
		},
	}
}

func init() {
	rootCmd.AddCommand(dashboardCmd, scorecardsCmd, interventionsCmd,
		recommendationsCmd, countriesCmd, crossCuttingCmd)
}
