package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dotcommander/basin/internal/discovery"
	"github.com/dotcommander/basin/internal/filter"
	"github.com/spf13/viper"
)

// Formats lists the accepted output formats.
var Formats = []string{"console", "json", "markdown", "csv"}

// ConfigFiles are tried in order; the first readable one wins.
var ConfigFiles = []string{".basinrc.json", ".basinrc.yaml", ".basinrc.yml"}

// Config represents the basin configuration
type Config struct {
	Data           string       `mapstructure:"data" json:"data"`
	Patterns       []string     `mapstructure:"patterns" json:"patterns"`
	FollowSymlinks bool         `mapstructure:"followSymlinks" json:"followSymlinks"`
	Format         string       `mapstructure:"format" json:"format"`
	Output         string       `mapstructure:"output" json:"output"`
	Quiet          bool         `mapstructure:"quiet" json:"quiet"`
	Verbose        bool         `mapstructure:"verbose" json:"verbose"`
	Sort           string       `mapstructure:"sort" json:"sort"`
	Ascending      bool         `mapstructure:"ascending" json:"ascending"`
	Limit          int          `mapstructure:"limit" json:"limit"`
	Filters        FilterConfig `mapstructure:"filters" json:"filters"`
}

// FilterConfig holds the initial filter predicates
type FilterConfig struct {
	Country    string `mapstructure:"country" json:"country"`
	Province   string `mapstructure:"province" json:"province"`
	ValueChain string `mapstructure:"valueChain" json:"valueChain"`
	Query      string `mapstructure:"query" json:"query"`
}

// LoadConfig loads configuration from defaults, the first config file
// found in the working directory, BASIN_* environment variables and any
// flags bound to viper. A non-empty dataPath overrides the data key.
func LoadConfig(dataPath string) (*Config, error) {
	viper.SetDefault("data", "")
	viper.SetDefault("patterns", discovery.DefaultPatterns)
	viper.SetDefault("followSymlinks", false)
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("sort", string(filter.SortTotal))
	viper.SetDefault("ascending", false)
	viper.SetDefault("limit", 5)
	viper.SetDefault("filters.country", "")
	viper.SetDefault("filters.province", "")
	viper.SetDefault("filters.valueChain", "")
	viper.SetDefault("filters.query", "")

	for _, path := range ConfigFiles {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	// BASIN_FILTERS_COUNTRY maps to filters.country
	viper.SetEnvPrefix("BASIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if dataPath != "" {
		config.Data = dataPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if !validFormat(config.Format) {
		return fmt.Errorf("invalid format: %s. Must be one of %s", config.Format, strings.Join(Formats, ", "))
	}

	if _, err := filter.ParseSortKey(config.Sort); err != nil {
		return err
	}

	if config.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}

	for _, p := range config.Patterns {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("patterns must not contain empty entries")
		}
	}

	return nil
}

func validFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// FilterState converts the configured predicates and sort settings into
// the explorer's filter value.
func (c *Config) FilterState() (filter.Filters, error) {
	key, err := filter.ParseSortKey(c.Sort)
	if err != nil {
		return filter.Filters{}, err
	}
	return filter.Filters{
		Country:    c.Filters.Country,
		Province:   c.Filters.Province,
		ValueChain: c.Filters.ValueChain,
		Query:      c.Filters.Query,
		SortKey:    key,
		Ascending:  c.Ascending,
	}, nil
}

// SaveConfig saves the current configuration to a file
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
