package chi

import (
	"time"

	"github.com/theemack/webumenia.sk/internal/domain/item"
	"github.com/theemack/webumenia.sk/internal/domain/search/result"
)

// ErrorCode classifies an API error for clients.
type ErrorCode string

const (
	ErrorCodeBadRequest        ErrorCode = "bad_request"
	ErrorCodeValidationFailed  ErrorCode = "validation_failed"
	ErrorCodeItemNotFound      ErrorCode = "item_not_found"
	ErrorCodeEngineUnavailable ErrorCode = "engine_unavailable"
	ErrorCodeBadEngineResponse ErrorCode = "bad_engine_response"
	ErrorCodeInternalError     ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ItemResponse is the wire form of one catalogue item.
type ItemResponse struct {
	ID           string     `json:"id"`
	Identifier   string     `json:"identifier,omitempty"`
	Title        string     `json:"title,omitempty"`
	Author       string     `json:"author,omitempty"`
	Description  string     `json:"description,omitempty"`
	Technique    string     `json:"technique,omitempty"`
	Medium       string     `json:"medium,omitempty"`
	Place        string     `json:"place,omitempty"`
	Gallery      string     `json:"gallery,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	DateEarliest int        `json:"date_earliest,omitempty"`
	DateLatest   int        `json:"date_latest,omitempty"`
	HasImage     bool       `json:"has_image"`
	HasIIP       bool       `json:"has_iip"`
	AuthorityIDs []int64    `json:"authority_ids,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// ChoiceResponse is one facet bucket. Value is the raw bucket key and feeds
// back into the filter parameters unchanged; Label is display-ready.
type ChoiceResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PageResponse is one page of search results. Total counts all matches,
// not just the returned page.
type PageResponse struct {
	Items  []ItemResponse              `json:"items"`
	Total  int                         `json:"total"`
	Facets map[string][]ChoiceResponse `json:"facets,omitempty"`
}

// ItemListResponse carries a plain item list (authority previews).
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// HealthResponse reports service health per dependency.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func itemToDTO(it *item.Item) ItemResponse {
	resp := ItemResponse{
		ID:           it.ID(),
		Identifier:   it.Identifier(),
		Title:        it.Title(),
		Author:       it.Author(),
		Description:  it.Description(),
		Technique:    it.Technique(),
		Medium:       it.Medium(),
		Place:        it.Place(),
		Gallery:      it.Gallery(),
		Tags:         it.Tags(),
		DateEarliest: it.DateEarliest(),
		DateLatest:   it.DateLatest(),
		HasImage:     it.HasImage(),
		HasIIP:       it.HasIIP(),
		AuthorityIDs: it.AuthorityIDs(),
	}
	if !it.CreatedAt().IsZero() {
		t := it.CreatedAt()
		resp.CreatedAt = &t
	}
	if !it.UpdatedAt().IsZero() {
		t := it.UpdatedAt()
		resp.UpdatedAt = &t
	}
	return resp
}

func itemsToDTO(items []item.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = itemToDTO(&items[i])
	}
	return out
}

func pageToDTO(p *result.Page) PageResponse {
	resp := PageResponse{
		Items: itemsToDTO(p.Items()),
		Total: p.Total(),
	}
	if facets := p.Facets(); len(facets) > 0 {
		resp.Facets = make(map[string][]ChoiceResponse, len(facets))
		for attr, choices := range facets {
			cs := make([]ChoiceResponse, len(choices))
			for i, c := range choices {
				cs[i] = ChoiceResponse{Label: c.Label(), Value: c.Value()}
			}
			resp.Facets[attr] = cs
		}
	}
	return resp
}
