package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dotcommander/basin/internal/config"
	"github.com/dotcommander/basin/internal/dataset"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a dataset against the schema",
	Long: `The validate command reads the dataset named by --data and reports every
schema violation across all of its documents, then checks that the
documents merge: exactly one weights block summing to 1 and unique ids.

Exits with status 1 when any problem is found.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ok, err := runValidate()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			exitFunc(1)
			return
		}
		if !ok {
			exitFunc(1)
		}
	},
}

var (
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate reports whether the dataset is valid. Schema issues are
// printed to stdout; load failures are returned.
func runValidate() (bool, error) {
	cfg, err := config.LoadConfig(dataPath)
	if err != nil {
		return false, fmt.Errorf("error loading configuration: %w", err)
	}

	loader, err := dataset.NewLoader(cfg.Patterns, cfg.FollowSymlinks, newLogger(cfg))
	if err != nil {
		return false, err
	}
	issues, err := loader.Check(cfg.Data)
	if err != nil {
		return false, err
	}

	source := cfg.Data
	if source == "" {
		source = dataset.EmbeddedName
	}
	if len(issues) > 0 {
		for _, issue := range issues {
			fmt.Fprintf(stdout, "  %s\n", issue.String())
		}
		fmt.Fprintln(stdout, invalidStyle.Render(fmt.Sprintf("✗ %s: %d schema issue(s)", source, len(issues))))
		return false, nil
	}
	if !cfg.Quiet {
		fmt.Fprintln(stdout, validStyle.Render(fmt.Sprintf("✓ %s is valid", source)))
	}
	return true, nil
}
