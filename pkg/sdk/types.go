package sdk

import "time"

// Item is one catalogue item as returned by the API.
type Item struct {
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

// Choice is one facet bucket. Value is the raw bucket key and feeds back
// into SearchParams unchanged; Label is display-ready.
type Choice struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Page is one page of search results. Total counts all matches, not just
// the returned page.
type Page struct {
	Items  []Item              `json:"items"`
	Total  int                 `json:"total"`
	Facets map[string][]Choice `json:"facets,omitempty"`
}

// ItemList carries a plain item list (authority previews).
type ItemList struct {
	Items []Item `json:"items"`
}

// Health reports service health per dependency.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
