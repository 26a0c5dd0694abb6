package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "webumenia-go-sdk"
	apiPrefix        = "/api/v1"
)

// Client is a typed HTTP client for the catalogue API.
type Client struct {
	base      *url.URL
	httpc     *http.Client
	apiKey    string
	userAgent string
	obs       *observer
}

// New creates a catalogue API client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("sdk: base URL required")
	}
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("sdk: parse base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("sdk: base URL must be http or https, got %q", baseURL)
	}

	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	httpc := cfg.httpc
	if httpc == nil {
		timeout := cfg.timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpc = &http.Client{Timeout: timeout}
	}

	userAgent := cfg.userAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		base:      base,
		httpc:     httpc,
		apiKey:    cfg.apiKey,
		userAgent: userAgent,
		obs:       obs,
	}, nil
}

// SearchParams configures one catalogue search call. Zero values add no
// constraint; pointer fields distinguish "unset" from an explicit false
// or zero.
type SearchParams struct {
	Query     string
	Author    string
	Gallery   string
	Technique string
	Medium    string
	Tag       string
	HasImage  *bool
	HasIIP    *bool
	YearFrom  *int
	YearTo    *int
	Color     string
	Sort      string
	Size      int
	From      int
	Locale    string
}

func (p SearchParams) values() url.Values {
	q := url.Values{}
	setString := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	setString("q", p.Query)
	setString("author", p.Author)
	setString("gallery", p.Gallery)
	setString("technique", p.Technique)
	setString("medium", p.Medium)
	setString("tag", p.Tag)
	if p.HasImage != nil {
		q.Set("has_image", strconv.FormatBool(*p.HasImage))
	}
	if p.HasIIP != nil {
		q.Set("has_iip", strconv.FormatBool(*p.HasIIP))
	}
	if p.YearFrom != nil {
		q.Set("year_from", strconv.Itoa(*p.YearFrom))
	}
	if p.YearTo != nil {
		q.Set("year_to", strconv.Itoa(*p.YearTo))
	}
	setString("color", p.Color)
	setString("sort", p.Sort)
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.From > 0 {
		q.Set("from", strconv.Itoa(p.From))
	}
	setString("locale", p.Locale)
	return q
}

// SearchItems runs a filtered catalogue search.
func (c *Client) SearchItems(ctx context.Context, p SearchParams) (page Page, err error) {
	start := time.Now()
	defer func() { c.obs.observe("items.search", start, err) }()

	err = c.get(ctx, apiPrefix+"/items", p.values(), &page)
	return page, err
}

// GetItem fetches one catalogue item by id. An empty locale uses the
// service default.
func (c *Client) GetItem(ctx context.Context, id, locale string) (it Item, err error) {
	start := time.Now()
	defer func() { c.obs.observe("items.get", start, err) }()

	if id == "" {
		return Item{}, errors.New("sdk: item id required")
	}
	err = c.get(ctx, apiPrefix+"/items/"+url.PathEscape(id), localeValues(locale), &it)
	return it, err
}

// SimilarItems returns items similar to the one with the given id.
func (c *Client) SimilarItems(ctx context.Context, id string, size int, locale string) (page Page, err error) {
	start := time.Now()
	defer func() { c.obs.observe("items.similar", start, err) }()

	if id == "" {
		return Page{}, errors.New("sdk: item id required")
	}
	path := apiPrefix + "/items/" + url.PathEscape(id) + "/similar"
	err = c.get(ctx, path, listValues(size, locale), &page)
	return page, err
}

// Suggest returns autocomplete candidates for a partial term.
func (c *Client) Suggest(ctx context.Context, term string, size int, locale string) (page Page, err error) {
	start := time.Now()
	defer func() { c.obs.observe("suggestions", start, err) }()

	q := listValues(size, locale)
	if term != "" {
		q.Set("q", term)
	}
	err = c.get(ctx, apiPrefix+"/suggestions", q, &page)
	return page, err
}

// AuthorityItems returns representative works linked to an authority.
func (c *Client) AuthorityItems(ctx context.Context, authorityID int64, size int, locale string) (items []Item, err error) {
	start := time.Now()
	defer func() { c.obs.observe("authorities.items", start, err) }()

	var resp ItemList
	path := fmt.Sprintf("%s/authorities/%d/items", apiPrefix, authorityID)
	if err = c.get(ctx, path, listValues(size, locale), &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Health reports service health. A degraded service answers 503 with the
// same body shape, so both outcomes decode without error.
func (c *Client) Health(ctx context.Context) (h Health, err error) {
	start := time.Now()
	defer func() { c.obs.observe("health", start, err) }()

	req, err := c.newRequest(ctx, "/health", nil)
	if err != nil {
		return Health{}, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return Health{}, fmt.Errorf("sdk: health: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusServiceUnavailable {
		return Health{}, decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return Health{}, fmt.Errorf("sdk: decode health response: %w", err)
	}
	return h, nil
}

func localeValues(locale string) url.Values {
	q := url.Values{}
	if locale != "" {
		q.Set("locale", locale)
	}
	return q
}

func listValues(size int, locale string) url.Values {
	q := localeValues(locale)
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}
	return q
}

func (c *Client) newRequest(ctx context.Context, path string, q url.Values) (*http.Request, error) {
	// Concatenation keeps pre-escaped id segments intact; url.URL.Path
	// would re-decode them.
	u := c.base.String() + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("sdk: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, dest any) error {
	req, err := c.newRequest(ctx, path, q)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("sdk: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("sdk: decode response: %w", err)
	}
	return nil
}
