package rescache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/theemack/webumenia.sk/internal/engine"
	"github.com/theemack/webumenia.sk/internal/store"
)

const cacheKeyPrefix = "webumenia:res_cache:"

const defaultTTL = time.Hour

// Compile-time check: CachedSearcher implements engine.Searcher.
var _ engine.Searcher = (*CachedSearcher)(nil)

// kv is the consumer interface for the result cache (ISP).
type kv interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedSearcher caches raw engine responses in a key-value store. Search
// results are read-only snapshots, so a TTL bounds staleness against
// reindexing rather than invalidation.
type CachedSearcher struct {
	inner      engine.Searcher
	store      kv
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator around a searcher.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner engine.Searcher,
	s kv,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedSearcher {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &CachedSearcher{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Search returns a cached response or calls the inner searcher. Equal
// filters compile to byte-identical request bodies, so the body hash is a
// stable cache key. Cache faults degrade to a miss, never to a failure.
func (c *CachedSearcher) Search(ctx context.Context, req *engine.Request) (*engine.Response, error) {
	key, err := c.cacheKey(req)
	if err != nil {
		return nil, err
	}

	if resp, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return resp, nil
	}
	c.incCache("miss")

	resp, err := c.inner.Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", req.Index, err)
	}

	c.putToCache(ctx, key, resp.Raw)
	return resp, nil
}

func (c *CachedSearcher) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedSearcher) cacheKey(req *engine.Request) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	h := sha256.Sum256(append([]byte(req.Index+"\n"), body...))
	return cacheKeyPrefix + hex.EncodeToString(h[:]), nil
}

func (c *CachedSearcher) getFromCache(ctx context.Context, key string) (*engine.Response, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached response", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}

	var resp engine.Response
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Warn("Failed to parse cached response", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	resp.Raw = data
	return &resp, true
}

func (c *CachedSearcher) putToCache(ctx context.Context, key string, raw []byte) {
	if len(raw) == 0 {
		return
	}
	if err := c.store.SetWithTTL(ctx, key, raw, c.ttl); err != nil {
		c.logger.Warn("Failed to cache response", zap.String("key", key), zap.Error(err))
	}
}
