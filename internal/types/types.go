// Package types provides shared dataset types used across the basin codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Intervention is a proposed activity tied to a country, province and
// value chain. It relates to scorecards only through those keys.
type Intervention struct {
	ID         string   `json:"id" yaml:"id"`
	Country    string   `json:"country" yaml:"country"`
	Province   string   `json:"province" yaml:"province"`
	ValueChain string   `json:"valueChain" yaml:"valueChain"`
	Title      string   `json:"title" yaml:"title"`
	Summary    string   `json:"summary" yaml:"summary"`
	Tags       []string `json:"tags" yaml:"tags"`
}

// Category groups recommendations.
type Category string

// Recommendation category constants.
const (
	CategoryMarketSystems     Category = "Market Systems"
	CategoryFinance           Category = "Finance & Investment"
	CategoryWEE               Category = "Women's Economic Empowerment"
	CategoryGreenGrowth       Category = "Green Growth"
	CategorySystemicChange    Category = "Systemic Change"
	CategoryDisabilityInclude Category = "Disability Inclusion"
)

// Categories lists the known categories in display order.
var Categories = []Category{
	CategoryMarketSystems,
	CategoryFinance,
	CategoryWEE,
	CategoryGreenGrowth,
	CategorySystemicChange,
	CategoryDisabilityInclude,
}

// Known reports whether c is one of the enumerated categories.
func (c Category) Known() bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// Recommendation is an operational recommendation with a narrative.
type Recommendation struct {
	ID        string   `json:"id" yaml:"id"`
	Category  Category `json:"category" yaml:"category"`
	Title     string   `json:"title" yaml:"title"`
	Narrative []string `json:"narrative" yaml:"narrative"`
}

// SharedChallenge is the headline problem common to several locations.
type SharedChallenge struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Countries   []string `json:"countries" yaml:"countries"`
	ValueChains []string `json:"valueChains" yaml:"valueChains"`
}

// Theme is a cross-cutting theme.
type Theme struct {
	Name    string `json:"name" yaml:"name"`
	Summary string `json:"summary" yaml:"summary"`
}

// Finding is a qualitative finding from field work.
type Finding struct {
	Title  string `json:"title" yaml:"title"`
	Detail string `json:"detail" yaml:"detail"`
}

// CrossCutting is narrative content shown alongside the scorecards.
type CrossCutting struct {
	Focus              string          `json:"focus" yaml:"focus"`
	SharedChallenge    SharedChallenge `json:"sharedChallenge" yaml:"sharedChallenge"`
	DesignImplications []string        `json:"designImplications" yaml:"designImplications"`
	Themes             []Theme         `json:"themes" yaml:"themes"`
	Findings           []Finding       `json:"findings" yaml:"findings"`
}
