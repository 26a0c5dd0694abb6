package engine

import "encoding/json"

// ScoreField is the engine's pseudo-field for relevance-score sorting.
const ScoreField = "_score"

// SortOrder is a sort direction.
type SortOrder string

// Sort directions.
const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// SortField is one (field, direction) sort directive.
type SortField struct {
	Field string
	Order SortOrder
}

// Sort is an ordered sequence of sort directives, evaluated left to right
// as tie-breakers.
type Sort []SortField

func (s Sort) MarshalJSON() ([]byte, error) {
	directives := make([]map[string]any, 0, len(s))
	for _, f := range s {
		directives = append(directives, map[string]any{
			f.Field: map[string]any{"order": string(f.Order)},
		})
	}
	return json.Marshal(directives)
}
