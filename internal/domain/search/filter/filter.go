package filter

import (
	"fmt"
	"sort"
)

// MaxFacets is the maximum number of facet selections per filter.
const MaxFacets = 32

// Filter is an immutable bag of user search criteria. A nil *Filter means
// "no filtering requested" and is distinct from a non-nil Filter with no
// criteria set, which matches everything under default ranking.
type Filter struct {
	search string
	years  *YearRange
	color  string
	facets []FacetTerm
}

// New validates and creates a Filter. Empty criteria are not errors; each
// absent field simply adds no constraint. Facet pairs with an empty key or
// value are dropped, and the remainder is canonicalized by key so that equal
// filters always carry facets in the same order.
func New(search string, years *YearRange, color string, facets map[string]string) (Filter, error) {
	if len(facets) > MaxFacets {
		return Filter{}, fmt.Errorf("too many facets (max %d)", MaxFacets)
	}
	terms := make([]FacetTerm, 0, len(facets))
	for k, v := range facets {
		if k == "" || v == "" {
			continue
		}
		terms = append(terms, FacetTerm{key: k, value: v})
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].key < terms[j].key })
	if len(terms) == 0 {
		terms = nil
	}
	return Filter{search: search, years: years, color: color, facets: terms}, nil
}

// Search returns the free-text term, empty when unset.
func (f Filter) Search() string { return f.search }

// Years returns the requested dating range, nil when unset.
func (f Filter) Years() *YearRange { return f.years }

// Color returns the opaque color descriptor, empty when unset.
func (f Filter) Color() string { return f.color }

// Facets returns the categorical selections in canonical key order.
func (f Filter) Facets() []FacetTerm { return f.facets }

// IsZero reports whether no criterion is set.
func (f Filter) IsZero() bool {
	return f.search == "" && f.years == nil && f.color == "" && len(f.facets) == 0
}

// FacetTerm is one categorical key→value selection.
type FacetTerm struct {
	key   string
	value string
}

// Key returns the facet attribute name.
func (t FacetTerm) Key() string { return t.key }

// Value returns the selected facet value.
func (t FacetTerm) Value() string { return t.value }

// YearRange bounds an item's dating span. Either side may be nil (unbounded).
// The range matches items whose own [dateEarliest, dateLatest] span overlaps
// it, not only items fully contained in it.
type YearRange struct {
	from *int
	to   *int
}

// NewYearRange validates and creates a YearRange. At least one bound is
// required; a fully unbounded range should be expressed as no range at all.
func NewYearRange(from, to *int) (YearRange, error) {
	if from == nil && to == nil {
		return YearRange{}, fmt.Errorf("at least one year bound is required")
	}
	if from != nil && to != nil && *from > *to {
		return YearRange{}, fmt.Errorf("year range is inverted: %d > %d", *from, *to)
	}
	return YearRange{from: from, to: to}, nil
}

// From returns the inclusive lower bound.
func (r YearRange) From() *int { return r.from }

// To returns the inclusive upper bound.
func (r YearRange) To() *int { return r.to }
