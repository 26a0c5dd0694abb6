package result

import (
	"encoding/json"

	"github.com/theemack/webumenia.sk/internal/domain/item"
)

// Page is one page of normalized search results. Items preserve the order
// the engine returned them in; Total is the engine's full match count and
// may exceed len(Items) under pagination. Raw is a snapshot of the engine
// response body and does not track index state after the call returns.
type Page struct {
	items  []item.Item
	total  int
	facets map[string][]Choice
	raw    json.RawMessage
}

// NewPage creates a result page.
func NewPage(items []item.Item, total int, facets map[string][]Choice, raw json.RawMessage) Page {
	return Page{items: items, total: total, facets: facets, raw: raw}
}

// Items returns the page's items in engine order.
func (p *Page) Items() []item.Item { return p.items }

// Total returns the engine's full match count.
func (p *Page) Total() int { return p.total }

// Facets returns decoded facet choices keyed by attribute.
func (p *Page) Facets() map[string][]Choice { return p.facets }

// Raw returns the raw engine response body.
func (p *Page) Raw() json.RawMessage { return p.raw }

// Choice is one selectable facet value with a human-readable label
// ("value (count)"). Value stays the raw bucket key so it can be fed back
// into a Filter unchanged.
type Choice struct {
	label string
	value string
}

// NewChoice creates a facet choice.
func NewChoice(label, value string) Choice {
	return Choice{label: label, value: value}
}

// Label returns the display label.
func (c Choice) Label() string { return c.label }

// Value returns the raw facet key.
func (c Choice) Value() string { return c.value }
