package dataset

import (
	"fmt"

	"github.com/dotcommander/basin/internal/scoring"
	"github.com/dotcommander/basin/internal/types"
)

// merge concatenates fragments in document order. Weights must appear in
// exactly one document and ids must be unique within each collection. The
// first non-empty title and the first crossCutting block win.
func merge(docs []document) (*Dataset, error) {
	ds := &Dataset{
		Scorecards:      []scoring.RawScorecard{},
		Interventions:   []types.Intervention{},
		Recommendations: []types.Recommendation{},
	}

	var (
		weightsFrom      string
		crossCuttingSeen bool
		scorecardIDs     = make(map[string]string)
		interventionIDs  = make(map[string]string)
		recommendIDs     = make(map[string]string)
	)

	for _, doc := range docs {
		ds.Sources = append(ds.Sources, doc.name)

		if ds.Title == "" {
			ds.Title = doc.Title
		}
		if doc.Weights != nil {
			if weightsFrom != "" {
				return nil, fmt.Errorf("%w: %s and %s", ErrDuplicateWeights, weightsFrom, doc.name)
			}
			weightsFrom = doc.name
			ds.Weights = *doc.Weights
		}
		if doc.CrossCutting != nil && !crossCuttingSeen {
			crossCuttingSeen = true
			ds.CrossCutting = *doc.CrossCutting
		}

		for _, sc := range doc.Scorecards {
			if err := claim(scorecardIDs, "scorecard", sc.ID, doc.name); err != nil {
				return nil, err
			}
			ds.Scorecards = append(ds.Scorecards, sc)
		}
		for _, iv := range doc.Interventions {
			if err := claim(interventionIDs, "intervention", iv.ID, doc.name); err != nil {
				return nil, err
			}
			ds.Interventions = append(ds.Interventions, iv)
		}
		for _, rec := range doc.Recommendations {
			if err := claim(recommendIDs, "recommendation", rec.ID, doc.name); err != nil {
				return nil, err
			}
			ds.Recommendations = append(ds.Recommendations, rec)
		}
	}

	if weightsFrom == "" {
		return nil, ErrMissingWeights
	}
	if err := ds.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", weightsFrom, err)
	}
	return ds, nil
}

func claim(seen map[string]string, kind, id, source string) error {
	if prev, ok := seen[id]; ok {
		return fmt.Errorf("%w: %s %q in %s already defined in %s", ErrDuplicateID, kind, id, source, prev)
	}
	seen[id] = source
	return nil
}
