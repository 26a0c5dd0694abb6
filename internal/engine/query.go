package engine

import "encoding/json"

// Clause is one atomic condition of a boolean query. Every clause marshals
// to the engine's native JSON shape; clause names, boost keys and range
// operator names are part of the wire contract and must not drift.
type Clause interface {
	json.Marshaler
}

// BoolQuery is a boolean query tree. Clauses are partitioned into must
// (required, scored), should (optional, scored, counted toward
// MinimumShouldMatch) and filter (required, unscored). An empty BoolQuery
// marshals to {} which engines treat as match-all; this is distinct from
// no query at all.
type BoolQuery struct {
	Must               []Clause
	Should             []Clause
	Filter             []Clause
	MinimumShouldMatch int
}

// IsEmpty reports whether the query has no clauses.
func (q *BoolQuery) IsEmpty() bool {
	return len(q.Must) == 0 && len(q.Should) == 0 && len(q.Filter) == 0
}

func (q *BoolQuery) MarshalJSON() ([]byte, error) {
	if q.IsEmpty() {
		return []byte("{}"), nil
	}
	groups := map[string]any{}
	if len(q.Must) > 0 {
		groups["must"] = q.Must
	}
	if len(q.Should) > 0 {
		groups["should"] = q.Should
	}
	if len(q.Filter) > 0 {
		groups["filter"] = q.Filter
	}
	if q.MinimumShouldMatch > 0 {
		groups["minimum_should_match"] = q.MinimumShouldMatch
	}
	return json.Marshal(map[string]any{"bool": groups})
}

// TermClause is an exact-value condition, optionally boosted.
type TermClause struct {
	Field string
	Value any
	Boost float64
}

func (c *TermClause) MarshalJSON() ([]byte, error) {
	if c.Boost == 0 {
		return json.Marshal(map[string]any{"term": map[string]any{c.Field: c.Value}})
	}
	return json.Marshal(map[string]any{
		"term": map[string]any{c.Field: map[string]any{"value": c.Value, "boost": c.Boost}},
	})
}

// MatchClause is an analyzed full-text condition against one field.
type MatchClause struct {
	Field    string
	Query    string
	Boost    float64
	Analyzer string
}

func (c *MatchClause) MarshalJSON() ([]byte, error) {
	params := map[string]any{"query": c.Query}
	if c.Boost != 0 {
		params["boost"] = c.Boost
	}
	if c.Analyzer != "" {
		params["analyzer"] = c.Analyzer
	}
	return json.Marshal(map[string]any{"match": map[string]any{c.Field: params}})
}

// MultiMatchClause tests one query string against several fields at once.
type MultiMatchClause struct {
	Query    string
	Fields   []string
	Type     string
	Operator string
}

func (c *MultiMatchClause) MarshalJSON() ([]byte, error) {
	params := map[string]any{
		"query":  c.Query,
		"fields": c.Fields,
	}
	if c.Type != "" {
		params["type"] = c.Type
	}
	if c.Operator != "" {
		params["operator"] = c.Operator
	}
	return json.Marshal(map[string]any{"multi_match": params})
}

// RangeClause bounds one field. Only set operators are emitted; gte/lte are
// inclusive, gt/lt exclusive.
type RangeClause struct {
	Field string
	GTE   any
	GT    any
	LTE   any
	LT    any
}

func (c *RangeClause) MarshalJSON() ([]byte, error) {
	bounds := map[string]any{}
	if c.GTE != nil {
		bounds["gte"] = c.GTE
	}
	if c.GT != nil {
		bounds["gt"] = c.GT
	}
	if c.LTE != nil {
		bounds["lte"] = c.LTE
	}
	if c.LT != nil {
		bounds["lt"] = c.LT
	}
	return json.Marshal(map[string]any{"range": map[string]any{c.Field: bounds}})
}

// LikeDoc points more-like-this at an already indexed document.
type LikeDoc struct {
	Index string `json:"_index"`
	ID    string `json:"_id"`
}

// MoreLikeThisClause scores documents by textual similarity to the given
// seed documents over the listed fields.
type MoreLikeThisClause struct {
	Fields        []string
	Like          []LikeDoc
	MinTermFreq   int
	MinDocFreq    int
	MinWordLength int
}

func (c *MoreLikeThisClause) MarshalJSON() ([]byte, error) {
	params := map[string]any{
		"fields": c.Fields,
		"like":   c.Like,
	}
	if c.MinTermFreq > 0 {
		params["min_term_freq"] = c.MinTermFreq
	}
	if c.MinDocFreq > 0 {
		params["min_doc_freq"] = c.MinDocFreq
	}
	if c.MinWordLength > 0 {
		params["min_word_length"] = c.MinWordLength
	}
	return json.Marshal(map[string]any{"more_like_this": params})
}

// DescriptorClause scores documents by perceptual closeness of a stored
// image descriptor to the supplied one, using the engine's locality
// sensitive hashing support. The descriptor is opaque to this layer.
type DescriptorClause struct {
	Field      string
	Descriptor string
	Hash       string
}

func (c *DescriptorClause) MarshalJSON() ([]byte, error) {
	params := map[string]any{
		"field":      c.Field,
		"descriptor": c.Descriptor,
	}
	if c.Hash != "" {
		params["hash"] = c.Hash
	}
	return json.Marshal(map[string]any{"descriptor_similarity": params})
}

// TermsAgg requests a terms aggregation over one field.
type TermsAgg struct {
	Field string
	Size  int
}

func (a TermsAgg) MarshalJSON() ([]byte, error) {
	params := map[string]any{"field": a.Field}
	if a.Size > 0 {
		params["size"] = a.Size
	}
	return json.Marshal(map[string]any{"terms": params})
}
