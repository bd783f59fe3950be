package aggregate

import (
	"testing"

	"github.com/dotcommander/basin/internal/scoring"
	"github.com/dotcommander/basin/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCompareCountries(t *testing.T) {
	rows := []scoring.DerivedScorecard{
		scored("a", "Cambodia", 60, scoring.Scores{}, scoring.Scores{}),
		scored("b", "Laos", 80, scoring.Scores{}, scoring.Scores{}),
		scored("c", "Cambodia", 71, scoring.Scores{}, scoring.Scores{}),
		scored("d", "Vietnam", 66, scoring.Scores{}, scoring.Scores{}),
		scored("e", "Vietnam", 65, scoring.Scores{}, scoring.Scores{}),
	}

	got := CompareCountries(rows)
	// Cambodia 65.5 -> 66 ties Vietnam 65.5 -> 66; Cambodia appeared first.
	assert.Equal(t, []CountryStat{
		{Country: "Laos", AverageTotal: 80, Count: 1},
		{Country: "Cambodia", AverageTotal: 66, Count: 2},
		{Country: "Vietnam", AverageTotal: 66, Count: 2},
	}, got)
}

func TestCompareCountries_Empty(t *testing.T) {
	got := CompareCountries(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTop(t *testing.T) {
	rows := []scoring.DerivedScorecard{
		scored("a", "X", 50, scoring.Scores{}, scoring.Scores{}),
		scored("b", "X", 90, scoring.Scores{}, scoring.Scores{}),
		scored("c", "X", 70, scoring.Scores{}, scoring.Scores{}),
		scored("d", "X", 90, scoring.Scores{}, scoring.Scores{}),
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"top two", 2, []string{"b", "d"}},
		{"more than available", 10, []string{"b", "d", "c", "a"}},
		{"zero means all", 0, []string{"b", "d", "c", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Top(rows, tt.n)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
	assert.Equal(t, "a", rows[0].ID, "input order untouched")
}

func TestTopTag(t *testing.T) {
	items := []types.Intervention{
		{Tags: []string{"processing", "export"}},
		{Tags: []string{"export", "women"}},
		{Tags: []string{"women"}},
	}
	got, ok := TopTag(items)
	assert.True(t, ok)
	// export and women both appear twice; export was seen first.
	assert.Equal(t, TagCount{Tag: "export", Count: 2}, got)

	_, ok = TopTag([]types.Intervention{{ID: "no tags"}})
	assert.False(t, ok)
	_, ok = TopTag(nil)
	assert.False(t, ok)
}
