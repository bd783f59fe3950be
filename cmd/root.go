package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dotcommander/basin/internal/config"
	"github.com/dotcommander/basin/internal/dataset"
	"github.com/dotcommander/basin/internal/explorer"
	"github.com/dotcommander/basin/internal/output"
	"github.com/dotcommander/basin/internal/outputters"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is reported by --version.
var Version = output.Version

// exitFunc is swapped in tests.
var exitFunc = os.Exit

var (
	dataPath string
	stdout   io.Writer = os.Stdout
	stderr   io.Writer = os.Stderr
)

var rootCmd = &cobra.Command{
	Use:   "basin",
	Short: "Value chain scorecard explorer",
	Long: `Basin scores candidate value chains against seven weighted criteria and
explores the results: filtered scorecard tables, country comparisons,
intervention catalogues and prioritized recommendations.

The dataset is read from --data (a YAML/JSON file or a directory of
fragments). Without --data the embedded reference assessment is used.

EXAMPLES:
  basin                                  # dashboard of the reference dataset
  basin scorecards --country Laos --sort economic
  basin recommendations --province Kratie -v
  basin -d ./assessment -f csv -o scorecards.csv scorecards
  basin validate -d ./assessment`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runReport(output.ReportDashboard); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

// Execute runs the root command.
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&dataPath, "data", "d", "", "Dataset file or directory (embedded reference dataset if empty)")
	flags.StringP("format", "f", "console", "Output format (console|json|markdown|csv)")
	flags.StringP("output", "o", "", "Write the report to a file instead of stdout")
	flags.BoolP("quiet", "q", false, "Suppress non-essential output")
	flags.BoolP("verbose", "v", false, "Show raw scores, narratives and diagnostics")
	flags.String("country", "", "Only include this country")
	flags.String("province", "", "Only include this province")
	flags.String("value-chain", "", "Only include this value chain")
	flags.String("query", "", "Case-insensitive text search")
	flags.String("sort", "total", "Sort key (total or a criterion name)")
	flags.Bool("asc", false, "Sort ascending")
	flags.Int("limit", 5, "Number of scorecards in top-N rankings")
	flags.Bool("follow-symlinks", false, "Follow symlinks when reading a dataset directory")

	bindFlags()
}

// flagKeys maps persistent flags to configuration keys.
var flagKeys = map[string]string{
	"format":          "format",
	"output":          "output",
	"quiet":           "quiet",
	"verbose":         "verbose",
	"country":         "filters.country",
	"province":        "filters.province",
	"value-chain":     "filters.valueChain",
	"query":           "filters.query",
	"sort":            "sort",
	"asc":             "ascending",
	"limit":           "limit",
	"follow-symlinks": "followSymlinks",
}

func bindFlags() {
	for flag, key := range flagKeys {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}
}

// newLogger writes diagnostics to stderr; verbose enables debug records.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// runReport loads the configured dataset, applies the configured filters
// and renders report.
func runReport(report output.Report) error {
	cfg, err := config.LoadConfig(dataPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	logger := newLogger(cfg)

	loader, err := dataset.NewLoader(cfg.Patterns, cfg.FollowSymlinks, logger)
	if err != nil {
		return err
	}
	ds, err := loader.Load(cfg.Data)
	if err != nil {
		return fmt.Errorf("error loading dataset: %w", err)
	}

	filters, err := cfg.FilterState()
	if err != nil {
		return err
	}
	if err := filters.Validate(); err != nil {
		return err
	}

	view := explorer.New(ds, cfg.Limit).Apply(filters)
	logger.Debug("view built",
		"report", report,
		"scorecards", len(view.Scorecards),
		"interventions", len(view.Interventions))

	outputter := outputters.NewOutputter(cfg)
	outputter.SetStdout(stdout)
	if err := outputter.Format(view, report); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}
