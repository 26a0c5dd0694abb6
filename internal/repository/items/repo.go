package items

import (
	"context"
	"errors"
	"fmt"

	"github.com/theemack/webumenia.sk/internal/domain"
	"github.com/theemack/webumenia.sk/internal/domain/item"
	"github.com/theemack/webumenia.sk/internal/domain/search/result"
	"github.com/theemack/webumenia.sk/internal/engine"
	"github.com/theemack/webumenia.sk/internal/names"
)

// store is the consumer interface for the search engine (ISP).
type store interface {
	Search(ctx context.Context, req *engine.Request) (*engine.Response, error)
	Get(ctx context.Context, index, id string) (*engine.Hit, error)
}

// Repo implements usecase/search.Repository over the engine query API.
type Repo struct {
	store store
	names *names.Formatter
}

// New creates an item repository.
func New(s store, f *names.Formatter) *Repo {
	return &Repo{store: s, names: f}
}

// Search executes the request and normalizes the reply into a result page.
// Engine failures propagate; they are never flattened into an empty page.
func (r *Repo) Search(ctx context.Context, req *engine.Request) (result.Page, error) {
	resp, err := r.store.Search(ctx, req)
	if err != nil {
		return result.Page{}, fmt.Errorf("search %s: %w", req.Index, err)
	}
	return r.normalize(resp)
}

// Get fetches one item by id.
func (r *Repo) Get(ctx context.Context, index, id string) (item.Item, error) {
	hit, err := r.store.Get(ctx, index, id)
	if err != nil {
		if errors.Is(err, engine.ErrNotFound) {
			return item.Item{}, domain.ErrItemNotFound
		}
		return item.Item{}, fmt.Errorf("get %s/%s: %w", index, id, err)
	}
	it, err := decodeHit(hit)
	if err != nil {
		return item.Item{}, domain.NewMalformedHit(hit.ID, err)
	}
	return it, nil
}

// normalize maps hits and aggregations onto domain types. Hit order is
// preserved, and a hit that cannot be hydrated fails the whole page: a
// silent skip would undercount against Total.
func (r *Repo) normalize(resp *engine.Response) (result.Page, error) {
	hydrated := make([]item.Item, 0, len(resp.Hits.Hits))
	for i := range resp.Hits.Hits {
		hit := &resp.Hits.Hits[i]
		it, err := decodeHit(hit)
		if err != nil {
			return result.Page{}, domain.NewMalformedHit(hit.ID, err)
		}
		hydrated = append(hydrated, it)
	}

	var facets map[string][]result.Choice
	if len(resp.Aggregations) > 0 {
		facets = make(map[string][]result.Choice, len(resp.Aggregations))
		for attr, agg := range resp.Aggregations {
			facets[attr] = r.DecodeBuckets(agg, attr)
		}
	}

	return result.NewPage(hydrated, resp.Hits.Total.Value, facets, resp.Raw), nil
}

// DecodeBuckets converts one terms aggregation into facet choices in bucket
// order, labeled "value (count)". Author keys pass through the display-name
// formatter for the label only; Value stays the raw key so it round-trips
// back into a Filter unchanged.
func (r *Repo) DecodeBuckets(agg engine.Aggregation, attribute string) []result.Choice {
	choices := make([]result.Choice, 0, len(agg.Buckets))
	for _, b := range agg.Buckets {
		label := b.Key
		if attribute == "author" {
			label = r.names.Format(b.Key)
		}
		choices = append(choices, result.NewChoice(fmt.Sprintf("%s (%d)", label, b.DocCount), b.Key))
	}
	return choices
}
