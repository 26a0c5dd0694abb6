package search

import "github.com/theemack/webumenia.sk/internal/engine"

// ascendingKeys are the explicit sort keys where callers expect ascending
// order (alphabetical or chronological-ascending reading).
var ascendingKeys = map[string]bool{
	"author": true,
	"title":  true,
	"oldest": true,
}

// BuildSort resolves a caller-facing sort key into an engine sort spec.
//
// With no key the default ranks by relevance and breaks ties toward
// visually rich, recently touched records. "newest" and "oldest" both sort
// the artifact's historical dating, not record bookkeeping times. Unknown
// keys pass through as literal field names sorted descending; a genuinely
// invalid field surfaces as an engine error at call time.
func BuildSort(key string) engine.Sort {
	if key == "" {
		return engine.Sort{
			{Field: engine.ScoreField, Order: engine.Desc},
			{Field: "has_image", Order: engine.Desc},
			{Field: "has_iip", Order: engine.Desc},
			{Field: "updated_at", Order: engine.Desc},
			{Field: "created_at", Order: engine.Desc},
		}
	}

	field := key
	switch key {
	case "newest", "oldest":
		field = "date_earliest"
	}

	order := engine.Desc
	if ascendingKeys[key] {
		order = engine.Asc
	}
	return engine.Sort{{Field: field, Order: order}}
}
