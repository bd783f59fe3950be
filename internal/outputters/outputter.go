package outputters

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/dotcommander/basin/internal/config"
	"github.com/dotcommander/basin/internal/explorer"
	"github.com/dotcommander/basin/internal/output"
)

// FormatterFactory creates formatters by format name
type FormatterFactory interface {
	CreateFormatter(format string) (output.Formatter, error)
}

// DefaultFormatterFactory builds the formatters in the output package
type DefaultFormatterFactory struct {
	config   *config.Config
	colorize bool
}

// NewDefaultFormatterFactory creates a factory. Console styling is used
// only when writing to a terminal.
func NewDefaultFormatterFactory(cfg *config.Config) *DefaultFormatterFactory {
	return &DefaultFormatterFactory{
		config:   cfg,
		colorize: cfg.Output == "" && term.IsTerminal(os.Stdout.Fd()),
	}
}

// CreateFormatter returns the formatter for format
func (f *DefaultFormatterFactory) CreateFormatter(format string) (output.Formatter, error) {
	switch format {
	case "console":
		return output.NewConsoleFormatter(f.config.Quiet, f.config.Verbose, f.colorize), nil
	case "json":
		return output.NewJSONFormatter(true), nil
	case "markdown":
		return output.NewMarkdownFormatter(f.config.Verbose), nil
	case "csv":
		return output.NewCSVFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Outputter handles output formatting
type Outputter struct {
	config  *config.Config
	factory FormatterFactory
	stdout  io.Writer
}

// NewOutputter creates a new Outputter
func NewOutputter(cfg *config.Config) *Outputter {
	return NewOutputterWithFactory(cfg, NewDefaultFormatterFactory(cfg))
}

// NewOutputterWithFactory creates an Outputter with a custom factory
func NewOutputterWithFactory(cfg *config.Config, factory FormatterFactory) *Outputter {
	return &Outputter{
		config:  cfg,
		factory: factory,
		stdout:  os.Stdout,
	}
}

// SetStdout redirects output that is not written to a file
func (o *Outputter) SetStdout(w io.Writer) {
	o.stdout = w
}

// Format renders report from view in the configured format, to the
// configured output file or stdout.
func (o *Outputter) Format(view *explorer.View, report output.Report) error {
	formatter, err := o.factory.CreateFormatter(o.config.Format)
	if err != nil {
		return err
	}

	if o.config.Output == "" {
		return formatter.Format(o.stdout, view, report)
	}

	file, err := os.Create(o.config.Output)
	if err != nil {
		return fmt.Errorf("error creating output file %s: %w", o.config.Output, err)
	}
	if err := formatter.Format(file, view, report); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error writing to file %s: %w", o.config.Output, err)
	}
	return nil
}
