package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRaw() RawScorecard {
	return RawScorecard{
		ID:         "kh-kratie-cashews",
		Country:    "Cambodia",
		Province:   "Kratie",
		ValueChain: "Cashews",
		Criteria: Scores{
			Economic:    80,
			ProPoor:     70,
			GreenGrowth: 60,
			WEE:         50,
			PWD:         40,
			Systemic:    90,
			QuickWin:    30,
		},
	}
}

func TestScore_ReferenceExample(t *testing.T) {
	got := Score(sampleRaw(), DefaultWeights())

	want := Scores{Economic: 20, ProPoor: 14, GreenGrowth: 12, WEE: 5, PWD: 2, Systemic: 9, QuickWin: 3}
	assert.Equal(t, want, got.Weighted)
	assert.Equal(t, 65, got.Total)
	assert.Equal(t, BandMedium, got.Band)
	assert.Equal(t, sampleRaw(), got.RawScorecard, "raw fields carried through")
}

func TestScore_TotalIsSumOfWeighted(t *testing.T) {
	weights := DefaultWeights()
	for economic := 0; economic <= 100; economic += 7 {
		for pwd := 0; pwd <= 100; pwd += 9 {
			raw := RawScorecard{Criteria: Scores{
				Economic:    economic,
				ProPoor:     100 - economic,
				GreenGrowth: pwd,
				WEE:         (economic + pwd) / 2,
				PWD:         pwd,
				Systemic:    economic % 50,
				QuickWin:    45,
			}}
			got := Score(raw, weights)
			if got.Total != got.Weighted.Sum() {
				t.Fatalf("Score(%+v).Total = %d, weighted sum %d", raw.Criteria, got.Total, got.Weighted.Sum())
			}
			if got.Band != BandFromTotal(got.Total) {
				t.Fatalf("band %s does not match total %d", got.Band, got.Total)
			}
		}
	}
}

func TestScore_RoundsHalfUp(t *testing.T) {
	// 45 * 0.10 = 4.5 and 30 * 0.05 = 1.5 both round up.
	raw := RawScorecard{Criteria: Scores{WEE: 45, PWD: 30}}
	got := Score(raw, DefaultWeights())
	assert.Equal(t, 5, got.Weighted.WEE)
	assert.Equal(t, 2, got.Weighted.PWD)
	assert.Equal(t, 7, got.Total)
}

func TestScore_Extremes(t *testing.T) {
	full := Scores{Economic: 100, ProPoor: 100, GreenGrowth: 100, WEE: 100, PWD: 100, Systemic: 100, QuickWin: 100}

	top := Score(RawScorecard{Criteria: full}, DefaultWeights())
	assert.Equal(t, 100, top.Total)
	assert.Equal(t, BandHigh, top.Band)
	assert.Equal(t, MaxPoints(DefaultWeights()), top.Weighted)

	zero := Score(RawScorecard{}, DefaultWeights())
	assert.Equal(t, 0, zero.Total)
	assert.Equal(t, BandLower, zero.Band)
}

func TestBandFromTotal(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  Band
	}{
		{"High - exact boundary", 75, BandHigh},
		{"High - perfect", 100, BandHigh},
		{"Medium - upper range", 74, BandMedium},
		{"Medium - exact boundary", 50, BandMedium},
		{"Lower - upper range", 49, BandLower},
		{"Lower - zero", 0, BandLower},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BandFromTotal(tt.total); got != tt.want {
				t.Errorf("BandFromTotal(%d) = %q, want %q", tt.total, got, tt.want)
			}
			if got := IsHigh(tt.total); got != (tt.want == BandHigh) {
				t.Errorf("IsHigh(%d) = %v, disagrees with band %q", tt.total, got, tt.want)
			}
		})
	}
}

func TestEnrich(t *testing.T) {
	raws := []RawScorecard{
		sampleRaw(),
		{ID: "b", Criteria: Scores{Economic: 100, ProPoor: 100, GreenGrowth: 100, WEE: 100, PWD: 100, Systemic: 100, QuickWin: 100}},
		{ID: "c"},
	}
	before := append([]RawScorecard(nil), raws...)

	first := Enrich(raws, DefaultWeights())
	second := Enrich(raws, DefaultWeights())

	require.Len(t, first, 3)
	assert.Equal(t, first, second, "enrich must be idempotent")
	assert.Equal(t, before, raws, "input must not be mutated")
	assert.Equal(t, []string{"kh-kratie-cashews", "b", "c"}, []string{first[0].ID, first[1].ID, first[2].ID})
	assert.Equal(t, []int{65, 100, 0}, []int{first[0].Total, first[1].Total, first[2].Total})
}

func TestEnrich_Empty(t *testing.T) {
	got := Enrich(nil, DefaultWeights())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRoundDiv(t *testing.T) {
	assert.Equal(t, 0, RoundDiv(10, 0))
	assert.Equal(t, 60, RoundDiv(180, 3))
	assert.Equal(t, 3, RoundDiv(5, 2))
	assert.Equal(t, 2, RoundDiv(7, 4)) // 1.75
}
