package webumenia

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/theemack/webumenia.sk/internal/domain"
	"github.com/theemack/webumenia.sk/internal/domain/authority"
	"github.com/theemack/webumenia.sk/internal/domain/item"
	"github.com/theemack/webumenia.sk/internal/domain/search/filter"
	"github.com/theemack/webumenia.sk/internal/domain/search/result"
	"github.com/theemack/webumenia.sk/internal/engine"
	"github.com/theemack/webumenia.sk/internal/engine/es"
	"github.com/theemack/webumenia.sk/internal/locale"
	"github.com/theemack/webumenia.sk/internal/metrics"
	"github.com/theemack/webumenia.sk/internal/names"
	"github.com/theemack/webumenia.sk/internal/repository/items"
	"github.com/theemack/webumenia.sk/internal/repository/rescache"
	redisstore "github.com/theemack/webumenia.sk/internal/store/redis"
	healthuc "github.com/theemack/webumenia.sk/internal/usecase/health"
	searchuc "github.com/theemack/webumenia.sk/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// searchUseCase is the internal search surface, an interface so tests
// can substitute the wired service.
type searchUseCase interface {
	Search(ctx context.Context, f *filter.Filter, p searchuc.Params) (result.Page, error)
	Suggest(ctx context.Context, size int, term, loc string) (result.Page, error)
	Similar(ctx context.Context, size int, ref item.Item, loc string) (result.Page, error)
	PreviewFor(ctx context.Context, size int, a authority.Authority, loc string) ([]item.Item, error)
	Get(ctx context.Context, id, loc string) (item.Item, error)
}

// Client is the webumenia catalogue entry point.
type Client struct {
	engine    *es.Client
	cache     *redisstore.Store
	searchSvc searchUseCase
	healthSvc healthUseCase
}

// New creates a catalogue Client and connects to the search engine.
func New(opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}

	if cfg.engineAddr == "" {
		return nil, errors.New("webumenia: engine address required (use WithEngineURL)")
	}

	esClient, err := es.NewClient(es.Config{
		Addr:     cfg.engineAddr,
		Username: cfg.username,
		Password: cfg.password,
		Timeout:  cfg.timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("webumenia: create engine client: %w", err)
	}

	ctx := context.Background()
	if err := esClient.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		esClient.Close()
		return nil, fmt.Errorf("webumenia: engine not ready: %w", err)
	}

	return wireClient(esClient, cfg)
}

func wireClient(esClient *es.Client, cfg *clientConfig) (*Client, error) {
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	searcher := engine.Searcher(esClient)
	var (
		cache       *redisstore.Store
		cachePinger healthuc.CachePinger
	)
	if len(cfg.cacheAddrs) > 0 {
		s, err := redisstore.NewStore(redisstore.Config{
			Addrs:    cfg.cacheAddrs,
			Username: cfg.cacheUsername,
			Password: cfg.cachePassword,
			DB:       cfg.cacheDB,
		})
		if err != nil {
			esClient.Close()
			return nil, fmt.Errorf("webumenia: create cache store: %w", err)
		}
		if err := s.WaitForReady(context.Background(), defaultReadinessTimeout); err != nil {
			s.Close()
			esClient.Close()
			return nil, fmt.Errorf("webumenia: cache not ready: %w", err)
		}
		searcher = rescache.New(esClient, s, cfg.cacheTTL, metrics.SearchCacheTotal, logger)
		cache = s
		cachePinger = s
	}

	resolver, err := locale.NewResolver(cfg.locales[0], cfg.locales)
	if err != nil {
		if cache != nil {
			cache.Close()
		}
		esClient.Close()
		return nil, fmt.Errorf("webumenia: %w", err)
	}

	formatter := names.NewFormatter(language.Make(cfg.locales[0]))
	repo := items.New(catalogueEngine{Searcher: searcher, Getter: esClient}, formatter)

	searchSvc := searchuc.New(repo, resolver, searchuc.Config{
		BaseIndex:       cfg.index,
		DefaultPageSize: cfg.pageSize,
		MaxPageSize:     cfg.maxPageSize,
		FacetAttrs:      cfg.facetAttrs,
		FacetSize:       cfg.facetSize,
	})

	return &Client{
		engine:    esClient,
		cache:     cache,
		searchSvc: searchSvc,
		healthSvc: healthuc.New(esClient, cachePinger),
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.cache != nil {
		c.cache.Close()
	}
	if c.engine != nil {
		c.engine.Close()
	}
}

// Ping checks engine connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.engine.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Search starts a fluent catalogue search.
func (c *Client) Search() *SearchBuilder {
	return &SearchBuilder{svc: c.searchSvc}
}

// Get fetches one catalogue item by id. An empty locale uses the default.
func (c *Client) Get(ctx context.Context, id, locale string) (Item, error) {
	it, err := c.searchSvc.Get(ctx, id, locale)
	if err != nil {
		return Item{}, err
	}
	return fromItem(it), nil
}

// Suggest returns autocomplete candidates for a partial term.
func (c *Client) Suggest(ctx context.Context, term string, size int, locale string) ([]Item, error) {
	page, err := c.searchSvc.Suggest(ctx, size, term, locale)
	if err != nil {
		return nil, err
	}
	return fromItems(page.Items()), nil
}

// Similar returns items textually close to the item with the given id.
// The reference item is fetched first, so a missing id surfaces as
// ErrItemNotFound.
func (c *Client) Similar(ctx context.Context, id string, size int, locale string) ([]Item, error) {
	ref, err := c.searchSvc.Get(ctx, id, locale)
	if err != nil {
		return nil, err
	}
	page, err := c.searchSvc.Similar(ctx, size, ref, locale)
	if err != nil {
		return nil, err
	}
	return fromItems(page.Items()), nil
}

// AuthorityItems returns representative works linked to an authority
// record, image-bearing works first.
func (c *Client) AuthorityItems(ctx context.Context, authorityID int64, size int, locale string) ([]Item, error) {
	a, err := authority.New(authorityID, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	list, err := c.searchSvc.PreviewFor(ctx, size, a, locale)
	if err != nil {
		return nil, err
	}
	return fromItems(list), nil
}

// catalogueEngine pairs the possibly-cached search path with the direct
// document fetch path behind the items repository.
type catalogueEngine struct {
	engine.Searcher
	engine.Getter
}
