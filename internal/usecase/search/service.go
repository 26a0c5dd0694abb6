package search

import (
	"context"
	"fmt"

	"github.com/theemack/webumenia.sk/internal/domain"
	"github.com/theemack/webumenia.sk/internal/domain/authority"
	"github.com/theemack/webumenia.sk/internal/domain/item"
	"github.com/theemack/webumenia.sk/internal/domain/search/filter"
	"github.com/theemack/webumenia.sk/internal/domain/search/result"
	"github.com/theemack/webumenia.sk/internal/engine"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	defaultFacets   = 16
)

// suggestFields must all match the autocomplete term at once.
var suggestFields = []string{"identifier", "title.suggest", "author.suggest"}

// similarFields seed the more-like-this lookup from the reference document.
var similarFields = []string{
	"author", "title", "title.stemmed", "description.stemmed",
	"tag", "place", "technique",
}

// Visual completeness boosts. Both re-rank only; image presence never
// excludes an otherwise matching item.
const (
	hasImageBoost = 2
	hasIIPBoost   = 4
)

// Params tunes one catalogue search call.
type Params struct {
	Size   int
	From   int
	Sort   string // empty means the default relevance ranking
	Locale string // empty means the ambient default locale
}

// Config carries the index, paging and facet settings for the service.
type Config struct {
	BaseIndex       string   // physical index prefix, locale-qualified per call
	DefaultPageSize int      // hits per page when the caller passes none
	MaxPageSize     int      // hard cap on requested page size
	FacetAttrs      []string // attributes aggregated for the facet UI
	FacetSize       int      // buckets requested per facet attribute
}

// Service executes catalogue search, autocomplete, similarity and preview
// retrievals against locale-qualified indices. It is stateless; calls are
// independent and safe to issue concurrently.
type Service struct {
	repo       Repository
	locales    LocaleResolver
	base       string
	pageSize   int
	maxPage    int
	facetAttrs []string
	facetSize  int
}

// New creates a search service.
func New(repo Repository, locales LocaleResolver, cfg Config) *Service {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = defaultPageSize
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = maxPageSize
	}
	if cfg.FacetSize <= 0 {
		cfg.FacetSize = defaultFacets
	}
	return &Service{
		repo:       repo,
		locales:    locales,
		base:       cfg.BaseIndex,
		pageSize:   cfg.DefaultPageSize,
		maxPage:    cfg.MaxPageSize,
		facetAttrs: cfg.FacetAttrs,
		facetSize:  cfg.FacetSize,
	}
}

// Search runs a filtered catalogue search with facet aggregations. A nil
// filter matches everything under the default ranking.
func (s *Service) Search(ctx context.Context, f *filter.Filter, p Params) (result.Page, error) {
	req := &engine.Request{
		Index:        s.indexFor(p.Locale),
		Query:        Compile(f),
		Size:         s.clampSize(p.Size),
		From:         clampFrom(p.From),
		Sort:         BuildSort(p.Sort),
		Aggregations: s.aggregations(),
	}
	page, err := s.repo.Search(ctx, req)
	if err != nil {
		return result.Page{}, fmt.Errorf("search items: %w", err)
	}
	return page, nil
}

// Suggest runs the strict autocomplete lookup: the term must satisfy an
// AND-combination across the suggest fields simultaneously, trading recall
// for precision at small sizes. Engine relevance order is kept.
func (s *Service) Suggest(ctx context.Context, size int, term, loc string) (result.Page, error) {
	if term == "" {
		return result.Page{}, fmt.Errorf("%w: suggest term is required", domain.ErrInvalidInput)
	}
	req := &engine.Request{
		Index: s.indexFor(loc),
		Query: &engine.BoolQuery{
			Must: []engine.Clause{
				&engine.MultiMatchClause{
					Query:    term,
					Fields:   suggestFields,
					Type:     "cross_fields",
					Operator: "and",
				},
			},
		},
		Size: s.clampSize(size),
	}
	page, err := s.repo.Search(ctx, req)
	if err != nil {
		return result.Page{}, fmt.Errorf("suggest items: %w", err)
	}
	return page, nil
}

// Similar retrieves items textually close to the reference item, seeded by
// the indexed document itself rather than user text. Thresholds sit at the
// floor because the candidate pool is already constrained to similar.
func (s *Service) Similar(ctx context.Context, size int, ref item.Item, loc string) (result.Page, error) {
	if ref.ID() == "" {
		return result.Page{}, fmt.Errorf("%w: reference item is required", domain.ErrInvalidInput)
	}
	index := s.indexFor(loc)
	req := &engine.Request{
		Index: index,
		Query: &engine.BoolQuery{
			Must: []engine.Clause{
				&engine.MoreLikeThisClause{
					Fields:        similarFields,
					Like:          []engine.LikeDoc{{Index: index, ID: ref.ID()}},
					MinTermFreq:   1,
					MinDocFreq:    1,
					MinWordLength: 1,
				},
			},
			Should: []engine.Clause{
				&engine.TermClause{Field: "has_image", Value: true, Boost: hasImageBoost},
				&engine.TermClause{Field: "has_iip", Value: true, Boost: hasIIPBoost},
			},
		},
		Size: s.clampSize(size),
	}
	page, err := s.repo.Search(ctx, req)
	if err != nil {
		return result.Page{}, fmt.Errorf("similar to %s: %w", ref.ID(), err)
	}
	return page, nil
}

// PreviewFor samples representative items for one authority: exact match
// on the authority link, image-bearing items boosted, earliest-catalogued
// entries winning relevance ties.
func (s *Service) PreviewFor(ctx context.Context, size int, a authority.Authority, loc string) ([]item.Item, error) {
	req := &engine.Request{
		Index: s.indexFor(loc),
		Query: &engine.BoolQuery{
			Must: []engine.Clause{
				&engine.TermClause{Field: "authority_id", Value: a.ID()},
			},
			Should: []engine.Clause{
				&engine.TermClause{Field: "has_image", Value: true, Boost: hasImageBoost},
			},
		},
		Size: s.clampSize(size),
		Sort: engine.Sort{
			{Field: engine.ScoreField, Order: engine.Desc},
			{Field: "created_at", Order: engine.Asc},
		},
	}
	page, err := s.repo.Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("preview authority %d: %w", a.ID(), err)
	}
	return page.Items(), nil
}

// Get fetches one catalogue item by id.
func (s *Service) Get(ctx context.Context, id, loc string) (item.Item, error) {
	if id == "" {
		return item.Item{}, fmt.Errorf("%w: item id is required", domain.ErrInvalidInput)
	}
	it, err := s.repo.Get(ctx, s.indexFor(loc), id)
	if err != nil {
		return item.Item{}, fmt.Errorf("get item %s: %w", id, err)
	}
	return it, nil
}

func (s *Service) indexFor(loc string) string {
	return s.locales.IndexName(s.base, loc)
}

func (s *Service) aggregations() map[string]engine.TermsAgg {
	if len(s.facetAttrs) == 0 {
		return nil
	}
	aggs := make(map[string]engine.TermsAgg, len(s.facetAttrs))
	for _, attr := range s.facetAttrs {
		aggs[attr] = engine.TermsAgg{Field: attr, Size: s.facetSize}
	}
	return aggs
}

func (s *Service) clampSize(size int) int {
	switch {
	case size <= 0:
		return s.pageSize
	case size > s.maxPage:
		return s.maxPage
	default:
		return size
	}
}

func clampFrom(from int) int {
	if from < 0 {
		return 0
	}
	return from
}
