package webumenia

import (
	"time"

	"go.uber.org/zap"
)

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	engineAddr string
	username   string
	password   string
	timeout    time.Duration

	index       string
	locales     []string
	pageSize    int
	maxPageSize int
	facetAttrs  []string
	facetSize   int

	cacheAddrs    []string
	cacheUsername string
	cachePassword string
	cacheDB       int
	cacheTTL      time.Duration

	logger *zap.Logger
}

func defaultConfig() *clientConfig {
	return &clientConfig{
		index:      "art_works",
		locales:    []string{"sk"},
		facetAttrs: []string{"author", "gallery", "technique", "medium", "tag"},
	}
}

// WithEngineURL sets the search engine base URL. Required.
func WithEngineURL(addr string) Option {
	return func(c *clientConfig) {
		c.engineAddr = addr
	}
}

// WithBasicAuth sets HTTP basic credentials for the engine.
func WithBasicAuth(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithTimeout caps a single engine call. Defaults to 10 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithIndex sets the physical index name prefix. Each locale gets its
// own index named prefix_locale. Defaults to "art_works".
func WithIndex(name string) Option {
	return func(c *clientConfig) {
		c.index = name
	}
}

// WithLocales sets the catalogue locales. The first locale is the
// default used when a call passes none. Defaults to "sk" only.
func WithLocales(locales ...string) Option {
	return func(c *clientConfig) {
		if len(locales) > 0 {
			c.locales = locales
		}
	}
}

// WithPageSize sets the default and maximum page sizes.
// Defaults: 20 and 100.
func WithPageSize(def, max int) Option {
	return func(c *clientConfig) {
		c.pageSize = def
		c.maxPageSize = max
	}
}

// WithFacets sets the attributes aggregated into facet choices on
// search responses. Defaults to author, gallery, technique, medium
// and tag.
func WithFacets(attrs ...string) Option {
	return func(c *clientConfig) {
		c.facetAttrs = attrs
	}
}

// WithFacetSize sets the bucket count per facet attribute.
// Defaults to 16.
func WithFacetSize(n int) Option {
	return func(c *clientConfig) {
		c.facetSize = n
	}
}

// WithCache enables Redis response caching for search calls with the
// given TTL. Disabled by default.
func WithCache(ttl time.Duration, addrs ...string) Option {
	return func(c *clientConfig) {
		c.cacheTTL = ttl
		c.cacheAddrs = addrs
	}
}

// WithCacheAuth sets Redis credentials for the response cache.
func WithCacheAuth(username, password string) Option {
	return func(c *clientConfig) {
		c.cacheUsername = username
		c.cachePassword = password
	}
}

// WithCacheDB selects the Redis logical database for the response cache.
func WithCacheDB(db int) Option {
	return func(c *clientConfig) {
		c.cacheDB = db
	}
}

// WithLogger enables structured logging of non-fatal client events,
// cache faults mostly. Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}
