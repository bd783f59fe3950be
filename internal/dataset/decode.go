package dataset

import (
	"fmt"

	"github.com/dotcommander/basin/internal/cue"
	"github.com/dotcommander/basin/internal/discovery"
	"github.com/dotcommander/basin/internal/frontend"
	"github.com/dotcommander/basin/internal/scoring"
	"github.com/dotcommander/basin/internal/types"
	"gopkg.in/yaml.v3"
)

// fragment is one decoded document. Pointers distinguish "absent" from
// "zero" for the blocks that may only appear once.
type fragment struct {
	Title           string                   `yaml:"title"`
	Weights         *scoring.WeightingScheme `yaml:"weights"`
	Scorecards      []scoring.RawScorecard   `yaml:"scorecards"`
	Interventions   []types.Intervention     `yaml:"interventions"`
	Recommendations []types.Recommendation   `yaml:"recommendations"`
	CrossCutting    *types.CrossCutting      `yaml:"crossCutting"`
}

type document struct {
	name string
	// skip marks Markdown files without frontmatter, such as a README
	// kept next to the data.
	skip bool
	fragment
}

// decode parses a YAML or JSON document (JSON is read as YAML), validates
// the generic form against the schema, then decodes the typed fragment.
func (l *Loader) decode(f discovery.File) (document, []cue.ValidationError, error) {
	if f.Type == discovery.FileTypeMarkdown {
		return l.decodeMarkdown(f)
	}
	doc := document{name: f.RelPath}

	var root yaml.Node
	if err := yaml.Unmarshal(f.Contents, &root); err != nil {
		return doc, nil, fmt.Errorf("parsing %s: %w", f.RelPath, err)
	}
	// Empty document
	if root.Kind == 0 || len(root.Content) == 0 || root.Content[0].Tag == "!!null" {
		return doc, nil, nil
	}
	if root.Content[0].Kind != yaml.MappingNode {
		return doc, []cue.ValidationError{{File: f.RelPath, Message: "document root must be a mapping"}}, nil
	}

	var generic map[string]any
	if err := root.Decode(&generic); err != nil {
		return doc, nil, fmt.Errorf("decoding %s: %w", f.RelPath, err)
	}
	issues, err := l.validator.ValidateDataset(f.RelPath, generic)
	if err != nil {
		return doc, nil, fmt.Errorf("validating %s: %w", f.RelPath, err)
	}
	if len(issues) > 0 {
		return doc, issues, nil
	}

	if err := root.Decode(&doc.fragment); err != nil {
		return doc, nil, fmt.Errorf("decoding %s: %w", f.RelPath, err)
	}
	return doc, nil, nil
}

// decodeMarkdown reads a recommendation written as Markdown. The
// frontmatter carries the recommendation fields and, unless it already
// lists a narrative, the body paragraphs become the narrative.
func (l *Loader) decodeMarkdown(f discovery.File) (document, []cue.ValidationError, error) {
	doc := document{name: f.RelPath}

	fm, err := frontend.ParseYAMLFrontmatter(string(f.Contents))
	if err != nil {
		return doc, nil, fmt.Errorf("parsing frontmatter in %s: %w", f.RelPath, err)
	}
	if !fm.HasData() {
		l.logger.Debug("skipping markdown without frontmatter", "file", f.RelPath)
		doc.skip = true
		return doc, nil, nil
	}

	rec := fm.Data
	if _, ok := rec["narrative"]; !ok {
		var narrative []any
		for _, p := range frontend.Paragraphs(fm.Body) {
			narrative = append(narrative, p)
		}
		if narrative != nil {
			rec["narrative"] = narrative
		}
	}
	generic := map[string]any{"recommendations": []any{rec}}

	issues, err := l.validator.ValidateDataset(f.RelPath, generic)
	if err != nil {
		return doc, nil, fmt.Errorf("validating %s: %w", f.RelPath, err)
	}
	if len(issues) > 0 {
		return doc, issues, nil
	}

	data, err := yaml.Marshal(generic)
	if err != nil {
		return doc, nil, fmt.Errorf("decoding %s: %w", f.RelPath, err)
	}
	if err := yaml.Unmarshal(data, &doc.fragment); err != nil {
		return doc, nil, fmt.Errorf("decoding %s: %w", f.RelPath, err)
	}
	return doc, nil, nil
}
