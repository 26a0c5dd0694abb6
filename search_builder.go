package webumenia

import (
	"context"
	"fmt"
	"strconv"

	"github.com/theemack/webumenia.sk/internal/domain"
	"github.com/theemack/webumenia.sk/internal/domain/search/filter"
	searchuc "github.com/theemack/webumenia.sk/internal/usecase/search"
)

// SearchBuilder is a fluent builder for catalogue search queries.
// A builder with no criteria matches everything under default ranking.
type SearchBuilder struct {
	svc searchUseCase

	query    string
	facets   map[string]string
	yearFrom *int
	yearTo   *int
	color    string
	sort     string
	size     int
	from     int
	locale   string
}

// Query sets the fulltext search term.
func (b *SearchBuilder) Query(q string) *SearchBuilder {
	b.query = q
	return b
}

// Where adds an exact facet condition on an attribute.
func (b *SearchBuilder) Where(attr, value string) *SearchBuilder {
	if b.facets == nil {
		b.facets = make(map[string]string)
	}
	b.facets[attr] = value
	return b
}

// Author filters by the normalized "surname, given" author form.
func (b *SearchBuilder) Author(name string) *SearchBuilder {
	return b.Where("author", name)
}

// Gallery filters by the owning gallery.
func (b *SearchBuilder) Gallery(name string) *SearchBuilder {
	return b.Where("gallery", name)
}

// Technique filters by technique.
func (b *SearchBuilder) Technique(name string) *SearchBuilder {
	return b.Where("technique", name)
}

// Medium filters by medium.
func (b *SearchBuilder) Medium(name string) *SearchBuilder {
	return b.Where("medium", name)
}

// Tag filters by tag.
func (b *SearchBuilder) Tag(name string) *SearchBuilder {
	return b.Where("tag", name)
}

// HasImage filters on reproduction presence.
func (b *SearchBuilder) HasImage(v bool) *SearchBuilder {
	return b.Where("has_image", strconv.FormatBool(v))
}

// HasIIP filters on zoomable image presence.
func (b *SearchBuilder) HasIIP(v bool) *SearchBuilder {
	return b.Where("has_iip", strconv.FormatBool(v))
}

// FromYear keeps items whose dating span reaches y or later.
func (b *SearchBuilder) FromYear(y int) *SearchBuilder {
	b.yearFrom = &y
	return b
}

// ToYear keeps items whose dating span starts at y or earlier.
func (b *SearchBuilder) ToYear(y int) *SearchBuilder {
	b.yearTo = &y
	return b
}

// Color filters by the dominant color descriptor.
func (b *SearchBuilder) Color(hex string) *SearchBuilder {
	b.color = hex
	return b
}

// Sort sets the sort key: "newest", "oldest", "author", "title", or a
// literal field name. Empty keeps the default relevance ranking.
func (b *SearchBuilder) Sort(key string) *SearchBuilder {
	b.sort = key
	return b
}

// Size sets the page size.
func (b *SearchBuilder) Size(n int) *SearchBuilder {
	b.size = n
	return b
}

// From sets the pagination offset.
func (b *SearchBuilder) From(n int) *SearchBuilder {
	b.from = n
	return b
}

// Locale selects the catalogue locale for this query.
func (b *SearchBuilder) Locale(l string) *SearchBuilder {
	b.locale = l
	return b
}

// Do executes the search. Invalid criteria, an inverted year range for
// one, surface as ErrInvalidInput.
func (b *SearchBuilder) Do(ctx context.Context) (Page, error) {
	f, err := b.toFilter()
	if err != nil {
		return Page{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	page, err := b.svc.Search(ctx, f, searchuc.Params{
		Size:   b.size,
		From:   b.from,
		Sort:   b.sort,
		Locale: b.locale,
	})
	if err != nil {
		return Page{}, err
	}
	return fromPage(page), nil
}

func (b *SearchBuilder) toFilter() (*filter.Filter, error) {
	var years *filter.YearRange
	if b.yearFrom != nil || b.yearTo != nil {
		yr, err := filter.NewYearRange(b.yearFrom, b.yearTo)
		if err != nil {
			return nil, err
		}
		years = &yr
	}
	f, err := filter.New(b.query, years, b.color, b.facets)
	if err != nil {
		return nil, err
	}
	if f.IsZero() {
		return nil, nil
	}
	return &f, nil
}
