package engine

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Response is the raw engine reply to a search request.
type Response struct {
	Took         int                    `json:"took"`
	TimedOut     bool                   `json:"timed_out"`
	Hits         Hits                   `json:"hits"`
	Aggregations map[string]Aggregation `json:"aggregations"`

	// Raw is the undecoded response body, set by the driver.
	Raw json.RawMessage `json:"-"`
}

// Hits is the hit block of a response.
type Hits struct {
	Total Total `json:"total"`
	Hits  []Hit `json:"hits"`
}

// Total is the engine's full match count. Older engines return a bare
// integer, newer ones {"value": N, "relation": "eq"}; both decode here.
type Total struct {
	Value    int
	Relation string
}

func (t *Total) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		t.Value = n
		return nil
	}
	var obj struct {
		Value    int    `json:"value"`
		Relation string `json:"relation"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decode total: %w", err)
	}
	t.Value = obj.Value
	t.Relation = obj.Relation
	return nil
}

// Hit is a single returned document. Score is nil when the engine sorted
// without scoring.
type Hit struct {
	Index  string          `json:"_index"`
	ID     string          `json:"_id"`
	Score  *float64        `json:"_score"`
	Source json.RawMessage `json:"_source"`
}

// Aggregation is one named aggregation result.
type Aggregation struct {
	Buckets []Bucket `json:"buckets"`
}

// Bucket is one terms-aggregation entry. Keys arrive as strings or numbers
// depending on the field mapping; both normalize to the string form.
type Bucket struct {
	Key      string
	DocCount int64
}

func (b *Bucket) UnmarshalJSON(data []byte) error {
	var obj struct {
		Key         any    `json:"key"`
		KeyAsString string `json:"key_as_string"`
		DocCount    int64  `json:"doc_count"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decode bucket: %w", err)
	}
	b.DocCount = obj.DocCount
	if obj.KeyAsString != "" {
		b.Key = obj.KeyAsString
		return nil
	}
	switch key := obj.Key.(type) {
	case string:
		b.Key = key
	case float64:
		b.Key = strconv.FormatFloat(key, 'f', -1, 64)
	case bool:
		b.Key = strconv.FormatBool(key)
	case nil:
		b.Key = ""
	default:
		b.Key = fmt.Sprintf("%v", key)
	}
	return nil
}
