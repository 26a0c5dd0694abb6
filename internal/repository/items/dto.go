package items

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/theemack/webumenia.sk/internal/domain/item"
	"github.com/theemack/webumenia.sk/internal/engine"
)

// timeLayouts covers the timestamp forms the catalogue indexer writes.
var timeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// itemSource mirrors the engine document _source shape for catalogue items.
type itemSource struct {
	ID           string  `json:"id"`
	Identifier   string  `json:"identifier"`
	Title        string  `json:"title"`
	Author       strList `json:"author"`
	Description  string  `json:"description"`
	Technique    strList `json:"technique"`
	Medium       strList `json:"medium"`
	Place        strList `json:"place"`
	Gallery      string  `json:"gallery"`
	Tags         strList `json:"tag"`
	DateEarliest int     `json:"date_earliest"`
	DateLatest   int     `json:"date_latest"`
	HasImage     bool    `json:"has_image"`
	HasIIP       bool    `json:"has_iip"`
	AuthorityIDs []int64 `json:"authority_id"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// decodeHit hydrates a domain Item from one engine hit.
func decodeHit(hit *engine.Hit) (item.Item, error) {
	var src itemSource
	if err := json.Unmarshal(hit.Source, &src); err != nil {
		return item.Item{}, fmt.Errorf("decode source: %w", err)
	}
	id := src.ID
	if id == "" {
		id = hit.ID
	}
	if id == "" {
		return item.Item{}, fmt.Errorf("hit has no id")
	}
	return item.Reconstruct(
		id, src.Identifier, src.Title, src.Author.first(), src.Description,
		src.Technique.first(), src.Medium.first(), src.Place.first(), src.Gallery,
		[]string(src.Tags), src.DateEarliest, src.DateLatest,
		src.HasImage, src.HasIIP, src.AuthorityIDs,
		parseTime(src.CreatedAt), parseTime(src.UpdatedAt),
	), nil
}

// parseTime decodes an indexer timestamp, returning the zero time for
// values it cannot read. Missing timestamps are common on old records.
func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// strList accepts both a bare string and an array of strings; the catalogue
// mapping uses the two forms interchangeably for multi-valued fields.
type strList []string

func (s *strList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var arr []string
		if err := json.Unmarshal(data, &arr); err != nil {
			return err
		}
		*s = arr
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	if one == "" {
		*s = nil
		return nil
	}
	*s = strList{one}
	return nil
}

func (s strList) first() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
