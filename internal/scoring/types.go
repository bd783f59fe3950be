package scoring

// Band is the coarse bucket a total falls into.
type Band string

const (
	BandHigh   Band = "High"
	BandMedium Band = "Medium"
	BandLower  Band = "Lower"
)

// Bands lists every band from best to worst.
var Bands = []Band{BandHigh, BandMedium, BandLower}

// Band thresholds on the 100-point total. Not configurable.
const (
	HighThreshold   = 75
	MediumThreshold = 50
)

// BandFromTotal returns the band for a total score.
func BandFromTotal(total int) Band {
	switch {
	case total >= HighThreshold:
		return BandHigh
	case total >= MediumThreshold:
		return BandMedium
	default:
		return BandLower
	}
}

// IsHigh reports whether total reaches the High band.
func IsHigh(total int) bool {
	return total >= HighThreshold
}

// RawScorecard is one value chain in one province, scored 0-100 per criterion.
type RawScorecard struct {
	ID         string `json:"id" yaml:"id"`
	Country    string `json:"country" yaml:"country"`
	Province   string `json:"province" yaml:"province"`
	ValueChain string `json:"valueChain" yaml:"valueChain"`
	Criteria   Scores `json:"criteria" yaml:"criteria"`
}

// DerivedScorecard is a RawScorecard with weighted points, total and band.
type DerivedScorecard struct {
	RawScorecard
	Weighted Scores `json:"weighted"`
	Total    int    `json:"total"`
	Band     Band   `json:"band"`
}

// Value returns the weighted points for c.
func (d DerivedScorecard) Value(c Criterion) int {
	return d.Weighted.Get(c)
}
