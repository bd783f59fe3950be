package cmd

import (
	"fmt"
	"os"

	"github.com/dotcommander/basin/internal/config"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the effective configuration to a file",
	Long: `The init command writes the configuration basin would use right now
(defaults, any existing config file, BASIN_* environment variables and
flags) as JSON, by default to .basinrc.json in the working directory.

An existing file is left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := config.ConfigFiles[0]
		if len(args) == 1 {
			path = args[0]
		}
		if err := runInit(path); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func runInit(path string) error {
	if _, err := os.Stat(path); err == nil && !forceInit {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg, err := config.LoadConfig(dataPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	if err := config.SaveConfig(cfg, path); err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Fprintf(stdout, "Wrote %s\n", path)
	}
	return nil
}
