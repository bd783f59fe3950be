// Package dataset loads the static basin dataset: weights, scorecards,
// interventions, recommendations and cross-cutting content.
//
// A dataset may be split across several YAML or JSON documents. Each
// document is checked against the embedded CUE schema before the
// fragments are merged.
package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dotcommander/basin/internal/cue"
	"github.com/dotcommander/basin/internal/discovery"
	"github.com/dotcommander/basin/internal/scoring"
	"github.com/dotcommander/basin/internal/types"
)

//go:embed data/basin.yaml
var embeddedDataset []byte

// EmbeddedName labels the built-in reference dataset in messages.
const EmbeddedName = "embedded:basin.yaml"

var (
	ErrNoFiles          = errors.New("no dataset documents found")
	ErrMissingWeights   = errors.New("dataset has no weights")
	ErrDuplicateWeights = errors.New("weights defined more than once")
	ErrDuplicateID      = errors.New("duplicate id")
)

// Dataset is the merged, immutable input of the explorer.
type Dataset struct {
	Title           string                  `json:"title"`
	Weights         scoring.WeightingScheme `json:"weights"`
	Scorecards      []scoring.RawScorecard  `json:"scorecards"`
	Interventions   []types.Intervention    `json:"interventions"`
	Recommendations []types.Recommendation  `json:"recommendations"`
	CrossCutting    types.CrossCutting      `json:"crossCutting"`
	Sources         []string                `json:"sources"`
}

// Loader reads and validates dataset documents.
type Loader struct {
	patterns       []string
	followSymlinks bool
	logger         *slog.Logger
	validator      *cue.Validator
}

// NewLoader compiles the dataset schema. A nil logger discards output.
func NewLoader(patterns []string, followSymlinks bool, logger *slog.Logger) (*Loader, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	v := cue.NewValidator()
	if err := v.LoadSchemas(); err != nil {
		return nil, fmt.Errorf("loading dataset schema: %w", err)
	}
	return &Loader{
		patterns:       patterns,
		followSymlinks: followSymlinks,
		logger:         logger,
		validator:      v,
	}, nil
}

// Load reads path (a file, a directory, or "" for the embedded reference
// dataset), validates every document and merges them. Schema violations
// across all documents are reported together as a *cue.Error.
func (l *Loader) Load(path string) (*Dataset, error) {
	docs, issues, err := l.read(path)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		return nil, &cue.Error{Issues: issues}
	}
	ds, err := merge(docs)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("dataset loaded",
		"sources", len(ds.Sources),
		"scorecards", len(ds.Scorecards),
		"interventions", len(ds.Interventions),
		"recommendations", len(ds.Recommendations))
	return ds, nil
}

// Check validates path without failing on the first problem. It returns
// all schema issues and, when the documents are schema-valid, the error
// from merging them.
func (l *Loader) Check(path string) ([]cue.ValidationError, error) {
	docs, issues, err := l.read(path)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		return issues, nil
	}
	_, err = merge(docs)
	return nil, err
}

// Default loads the embedded reference dataset.
func Default() (*Dataset, error) {
	l, err := NewLoader(nil, false, nil)
	if err != nil {
		return nil, err
	}
	return l.Load("")
}

func (l *Loader) read(path string) ([]document, []cue.ValidationError, error) {
	files, err := l.sources(path)
	if err != nil {
		return nil, nil, err
	}

	var (
		docs   []document
		issues []cue.ValidationError
	)
	for _, f := range files {
		doc, fileIssues, err := l.decode(f)
		if err != nil {
			return nil, nil, err
		}
		if len(fileIssues) > 0 {
			l.logger.Debug("schema violations", "file", f.RelPath, "count", len(fileIssues))
			issues = append(issues, fileIssues...)
			continue
		}
		if doc.skip {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, issues, nil
}

func (l *Loader) sources(path string) ([]discovery.File, error) {
	if path == "" {
		l.logger.Debug("using embedded dataset")
		return []discovery.File{{
			Path:     EmbeddedName,
			RelPath:  EmbeddedName,
			Size:     int64(len(embeddedDataset)),
			Type:     discovery.FileTypeYAML,
			Contents: embeddedDataset,
		}}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access dataset %s: %w", path, err)
	}
	if !info.IsDir() {
		f, err := discovery.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return []discovery.File{f}, nil
	}

	files, err := discovery.NewFileDiscovery(path, l.patterns, l.followSymlinks).DiscoverFiles()
	if err != nil {
		return nil, fmt.Errorf("discovering dataset documents in %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFiles, path)
	}
	for _, f := range files {
		l.logger.Debug("discovered dataset document", "file", f.RelPath, "type", f.Type, "bytes", f.Size)
	}
	return files, nil
}
