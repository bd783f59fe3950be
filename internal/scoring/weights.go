package scoring

import (
	"errors"
	"fmt"
	"math"
)

// WeightTolerance is how far the weight sum may drift from 1.0.
const WeightTolerance = 0.001

// ErrInvalidWeights is returned when a weighting scheme fails validation.
var ErrInvalidWeights = errors.New("invalid weighting scheme")

// WeightingScheme maps each criterion to a fraction of the 100-point total.
type WeightingScheme struct {
	Economic    float64 `json:"economic" yaml:"economic"`
	ProPoor     float64 `json:"proPoor" yaml:"proPoor"`
	GreenGrowth float64 `json:"greenGrowth" yaml:"greenGrowth"`
	WEE         float64 `json:"wee" yaml:"wee"`
	PWD         float64 `json:"pwd" yaml:"pwd"`
	Systemic    float64 `json:"systemic" yaml:"systemic"`
	QuickWin    float64 `json:"quickWin" yaml:"quickWin"`
}

// DefaultWeights returns the reference 25/20/20/10/5/10/10 split.
func DefaultWeights() WeightingScheme {
	return WeightingScheme{
		Economic:    0.25,
		ProPoor:     0.20,
		GreenGrowth: 0.20,
		WEE:         0.10,
		PWD:         0.05,
		Systemic:    0.10,
		QuickWin:    0.10,
	}
}

// Weight returns the fraction assigned to c.
func (w WeightingScheme) Weight(c Criterion) float64 {
	switch c {
	case Economic:
		return w.Economic
	case ProPoor:
		return w.ProPoor
	case GreenGrowth:
		return w.GreenGrowth
	case WEE:
		return w.WEE
	case PWD:
		return w.PWD
	case Systemic:
		return w.Systemic
	case QuickWin:
		return w.QuickWin
	default:
		return 0
	}
}

// Sum returns the total of all weights.
func (w WeightingScheme) Sum() float64 {
	var total float64
	for _, c := range Criteria {
		total += w.Weight(c)
	}
	return total
}

// Validate checks every weight is within [0, 1] and the weights sum to 1.0.
func (w WeightingScheme) Validate() error {
	for _, c := range Criteria {
		v := w.Weight(c)
		if v < 0 || v > 1 || math.IsNaN(v) {
			return fmt.Errorf("%w: %s weight %.4f outside [0, 1]", ErrInvalidWeights, c, v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > WeightTolerance {
		return fmt.Errorf("%w: weights sum to %.4f, must sum to 1.0", ErrInvalidWeights, sum)
	}
	return nil
}

// MaxPoints returns the most weighted points each criterion can contribute.
func MaxPoints(w WeightingScheme) Scores {
	var points Scores
	for _, c := range Criteria {
		points = points.With(c, roundInt(100*w.Weight(c)))
	}
	return points
}

// Percent returns the weight of c as a whole percentage, e.g. 25 for 0.25.
func (w WeightingScheme) Percent(c Criterion) int {
	return roundInt(100 * w.Weight(c))
}
