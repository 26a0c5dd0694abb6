package engine

import (
	"context"
	"encoding/json"
)

// Engine is the search engine facade combining all sub-interfaces.
// Consumers depend on the narrow sub-interfaces (ISP).
type Engine interface {
	Pinger
	Searcher
	Getter
	Close()
}

// Pinger checks engine connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Searcher runs read-only queries against an index.
type Searcher interface {
	Search(ctx context.Context, req *Request) (*Response, error)
}

// Getter fetches a single document by id.
type Getter interface {
	Get(ctx context.Context, index, id string) (*Hit, error)
}

// Request is one read query against a locale-qualified index. All fields
// except Index are optional; the zero value of each means "engine default".
type Request struct {
	Index        string
	Query        *BoolQuery // nil means match everything
	Size         int
	From         int
	Sort         Sort // nil leaves engine relevance order
	Aggregations map[string]TermsAgg
}

// MarshalJSON renders the request body sent to the engine. The index is
// addressed in the URL, never in the body. A nil query omits the "query"
// key entirely, which is distinct from an empty query object.
func (r *Request) MarshalJSON() ([]byte, error) {
	body := map[string]any{
		"size": r.Size,
		"from": r.From,
	}
	if r.Query != nil {
		body["query"] = r.Query
	}
	if len(r.Sort) > 0 {
		body["sort"] = r.Sort
	}
	if len(r.Aggregations) > 0 {
		body["aggregations"] = r.Aggregations
	}
	return json.Marshal(body)
}
