package search

import (
	"github.com/theemack/webumenia.sk/internal/domain/search/filter"
	"github.com/theemack/webumenia.sk/internal/engine"
)

// synonymAnalyzer expands language-aware synonyms at query time. Each
// locale-qualified index supplies its own synonym set under this name.
const synonymAnalyzer = "synonym_analyzer"

// Color similarity scores against the indexed image descriptor.
const (
	descriptorField = "image.descriptor"
	descriptorHash  = "lsh"
)

// searchField is one entry of the free-text boost ladder.
type searchField struct {
	field    string
	boost    float64
	analyzer string
}

// searchFields is the ordered boost ladder for free-text search. Exact
// identifier lookups dominate, and the synonym-expanded variants trail
// their plain counterparts so broadened recall never outranks a precise
// match.
var searchFields = []searchField{
	{field: "identifier", boost: 10},
	{field: "author.folded", boost: 6},
	{field: "title", boost: 5},
	{field: "title.folded", boost: 5},
	{field: "title.stemmed", boost: 3, analyzer: synonymAnalyzer},
	{field: "tag.folded", boost: 4},
	{field: "tag.stemmed", boost: 2},
	{field: "place.folded", boost: 3},
	{field: "description", boost: 2},
	{field: "description.stemmed", boost: 1, analyzer: synonymAnalyzer},
}

// Compile translates a Filter into a boolean query document. A nil filter
// compiles to nil, meaning no query body at all; a non-nil filter with no
// criteria set compiles to an empty query object. The engine treats both
// as match-all, but the two stay distinguishable on the wire.
//
// The sub-builders run in fixed order. Clauses are additive, so the order
// does not change semantics; fixing it keeps compiled output deterministic.
func Compile(f *filter.Filter) *engine.BoolQuery {
	if f == nil {
		return nil
	}
	q := &engine.BoolQuery{}
	q = buildFacets(q, f)
	q = buildText(q, f)
	q = buildYears(q, f)
	q = buildColor(q, f)
	return q
}

// buildFacets adds one unscored exact-match clause per facet selection.
// Selections are conjunctive.
func buildFacets(q *engine.BoolQuery, f *filter.Filter) *engine.BoolQuery {
	for _, t := range f.Facets() {
		q.Filter = append(q.Filter, &engine.TermClause{Field: t.Key(), Value: t.Value()})
	}
	return q
}

// buildText adds the weighted should group for the free-text term. One
// matching field satisfies the group; MinimumShouldMatch pins the group to
// required so the text constraint can never silently become optional.
func buildText(q *engine.BoolQuery, f *filter.Filter) *engine.BoolQuery {
	term := f.Search()
	if term == "" {
		return q
	}
	for _, sf := range searchFields {
		q.Should = append(q.Should, &engine.MatchClause{
			Field:    sf.field,
			Query:    term,
			Boost:    sf.boost,
			Analyzer: sf.analyzer,
		})
	}
	q.MinimumShouldMatch = 1
	return q
}

// buildYears adds unscored range clauses with overlap semantics: an item
// matches when its own dating span intersects the requested range, so the
// lower bound tests date_latest and the upper bound tests date_earliest.
func buildYears(q *engine.BoolQuery, f *filter.Filter) *engine.BoolQuery {
	years := f.Years()
	if years == nil {
		return q
	}
	if from := years.From(); from != nil {
		q.Filter = append(q.Filter, &engine.RangeClause{Field: "date_latest", GTE: *from})
	}
	if to := years.To(); to != nil {
		q.Filter = append(q.Filter, &engine.RangeClause{Field: "date_earliest", LTE: *to})
	}
	return q
}

// buildColor adds a should clause scoring by perceptual closeness to the
// supplied descriptor. It joins any text should group additively, so a
// strong color match can substitute for a text match. MinimumShouldMatch
// is left alone here: color is a preference, not a hard constraint.
func buildColor(q *engine.BoolQuery, f *filter.Filter) *engine.BoolQuery {
	if f.Color() == "" {
		return q
	}
	q.Should = append(q.Should, &engine.DescriptorClause{
		Field:      descriptorField,
		Descriptor: f.Color(),
		Hash:       descriptorHash,
	})
	return q
}
