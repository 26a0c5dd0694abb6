package webumenia

import (
	"time"

	"github.com/theemack/webumenia.sk/internal/domain/item"
	"github.com/theemack/webumenia.sk/internal/domain/search/result"
)

// Item is one catalogue record.
type Item struct {
	ID           string
	Identifier   string
	Title        string
	Author       string
	Description  string
	Technique    string
	Medium       string
	Place        string
	Gallery      string
	Tags         []string
	DateEarliest int
	DateLatest   int
	HasImage     bool
	HasIIP       bool
	AuthorityIDs []int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Choice is one facet bucket: a display label with a hit count baked in,
// and the raw value to filter by.
type Choice struct {
	Label string
	Value string
}

// Page is one page of search hits with facet aggregations.
type Page struct {
	Items  []Item
	Total  int
	Facets map[string][]Choice
}

func fromItem(it item.Item) Item {
	return Item{
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
		CreatedAt:    it.CreatedAt(),
		UpdatedAt:    it.UpdatedAt(),
	}
}

func fromItems(list []item.Item) []Item {
	out := make([]Item, len(list))
	for i := range list {
		out[i] = fromItem(list[i])
	}
	return out
}

func fromPage(p result.Page) Page {
	var facets map[string][]Choice
	if len(p.Facets()) > 0 {
		facets = make(map[string][]Choice, len(p.Facets()))
		for attr, choices := range p.Facets() {
			cs := make([]Choice, len(choices))
			for i, c := range choices {
				cs[i] = Choice{Label: c.Label(), Value: c.Value()}
			}
			facets[attr] = cs
		}
	}
	return Page{
		Items:  fromItems(p.Items()),
		Total:  p.Total(),
		Facets: facets,
	}
}
