// Package filter narrows and orders derived scorecards and interventions.
//
// Every function here returns a new slice. Inputs are never reordered or
// modified, so the same derived dataset can back any number of views.
package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dotcommander/basin/internal/scoring"
)

// ErrUnknownSortKey is returned by ParseSortKey for keys that are neither a
// criterion nor "total".
var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKey selects the value scorecards are ordered by.
type SortKey string

// SortTotal orders by total score. The empty SortKey keeps input order.
const SortTotal SortKey = "total"

// ParseSortKey validates s. The empty string is accepted and means no sort.
func ParseSortKey(s string) (SortKey, error) {
	switch {
	case s == "":
		return "", nil
	case SortKey(s) == SortTotal:
		return SortTotal, nil
	case scoring.Criterion(s).Valid():
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("%w: %q (want total or one of %s)", ErrUnknownSortKey, s, criterionList())
	}
}

// Value returns the number a scorecard is ranked by under k.
func (k SortKey) Value(d scoring.DerivedScorecard) int {
	if k == SortTotal {
		return d.Total
	}
	return d.Value(scoring.Criterion(k))
}

// Label returns a display label, e.g. "Total" or "Pro-Poor".
func (k SortKey) Label() string {
	if k == SortTotal || k == "" {
		return "Total"
	}
	return scoring.Criterion(k).Label()
}

// Filters is the query state shared by every view. It is a comparable
// value; replace it rather than mutating a shared copy.
type Filters struct {
	Country    string  `json:"country,omitempty"`
	Province   string  `json:"province,omitempty"`
	ValueChain string  `json:"valueChain,omitempty"`
	Query      string  `json:"query,omitempty"`
	SortKey    SortKey `json:"sortKey,omitempty"`
	Ascending  bool    `json:"ascending,omitempty"`
}

// IsEmpty reports whether no predicate is set. Sort settings are ignored.
func (f Filters) IsEmpty() bool {
	return f.Country == "" && f.Province == "" && f.ValueChain == "" && strings.TrimSpace(f.Query) == ""
}

// Scope keeps only the location and value chain predicates.
func (f Filters) Scope() Filters {
	return Filters{Country: f.Country, Province: f.Province, ValueChain: f.ValueChain}
}

// Validate checks the sort key.
func (f Filters) Validate() error {
	_, err := ParseSortKey(string(f.SortKey))
	return err
}

// matchLocation applies the three exact-match predicates.
func (f Filters) matchLocation(country, province, valueChain string) bool {
	if f.Country != "" && country != f.Country {
		return false
	}
	if f.Province != "" && province != f.Province {
		return false
	}
	if f.ValueChain != "" && valueChain != f.ValueChain {
		return false
	}
	return true
}

// query returns the lowercased query with surrounding whitespace trimmed,
// so a trailing space typed after a word still matches it.
func (f Filters) query() string {
	return strings.ToLower(strings.TrimSpace(f.Query))
}

// containsAny reports whether any field contains q, case-insensitively.
// q must already be lowercased.
func containsAny(q string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func criterionList() string {
	keys := make([]string, 0, len(scoring.Criteria))
	for _, c := range scoring.Criteria {
		keys = append(keys, string(c))
	}
	return strings.Join(keys, ", ")
}
