package scoring

import "fmt"

// Criterion identifies one of the seven scoring dimensions.
type Criterion string

const (
	Economic    Criterion = "economic"
	ProPoor     Criterion = "proPoor"
	GreenGrowth Criterion = "greenGrowth"
	WEE         Criterion = "wee"
	PWD         Criterion = "pwd"
	Systemic    Criterion = "systemic"
	QuickWin    Criterion = "quickWin"
)

// Criteria is the canonical criterion order. Every per-criterion loop in
// the module iterates this slice, so aggregate output order is fixed.
var Criteria = []Criterion{Economic, ProPoor, GreenGrowth, WEE, PWD, Systemic, QuickWin}

var criterionLabels = map[Criterion]string{
	Economic:    "Economic",
	ProPoor:     "Pro-Poor",
	GreenGrowth: "Green Growth",
	WEE:         "WEE",
	PWD:         "PWD",
	Systemic:    "Systemic",
	QuickWin:    "Quick Win",
}

// Label returns the display label for the criterion.
func (c Criterion) Label() string {
	if l, ok := criterionLabels[c]; ok {
		return l
	}
	return string(c)
}

// Valid reports whether c is one of the seven known criteria.
func (c Criterion) Valid() bool {
	_, ok := criterionLabels[c]
	return ok
}

// ParseCriterion converts a key such as "proPoor" into a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	c := Criterion(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown criterion: %q", s)
	}
	return c, nil
}

// Scores holds one integer per criterion. It carries both raw 0-100
// scores and weighted points.
type Scores struct {
	Economic    int `json:"economic" yaml:"economic"`
	ProPoor     int `json:"proPoor" yaml:"proPoor"`
	GreenGrowth int `json:"greenGrowth" yaml:"greenGrowth"`
	WEE         int `json:"wee" yaml:"wee"`
	PWD         int `json:"pwd" yaml:"pwd"`
	Systemic    int `json:"systemic" yaml:"systemic"`
	QuickWin    int `json:"quickWin" yaml:"quickWin"`
}

// Get returns the value stored for c. Unknown criteria read as 0.
func (s Scores) Get(c Criterion) int {
	switch c {
	case Economic:
		return s.Economic
	case ProPoor:
		return s.ProPoor
	case GreenGrowth:
		return s.GreenGrowth
	case WEE:
		return s.WEE
	case PWD:
		return s.PWD
	case Systemic:
		return s.Systemic
	case QuickWin:
		return s.QuickWin
	default:
		return 0
	}
}

// With returns a copy of s with c set to v.
func (s Scores) With(c Criterion, v int) Scores {
	switch c {
	case Economic:
		s.Economic = v
	case ProPoor:
		s.ProPoor = v
	case GreenGrowth:
		s.GreenGrowth = v
	case WEE:
		s.WEE = v
	case PWD:
		s.PWD = v
	case Systemic:
		s.Systemic = v
	case QuickWin:
		s.QuickWin = v
	}
	return s
}

// Sum adds up all seven values.
func (s Scores) Sum() int {
	total := 0
	for _, c := range Criteria {
		total += s.Get(c)
	}
	return total
}
