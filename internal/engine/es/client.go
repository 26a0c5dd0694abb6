package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/theemack/webumenia.sk/internal/engine"
	"github.com/theemack/webumenia.sk/internal/metrics"
)

// Compile-time check: Client implements engine.Engine.
var _ engine.Engine = (*Client)(nil)

const defaultTimeout = 10 * time.Second

// Config holds connection parameters for the search engine.
type Config struct {
	Addr     string
	Username string
	Password string
	Timeout  time.Duration
}

// Client implements engine.Engine over the engine's HTTP query API.
// It never writes documents; every call here is read-only.
type Client struct {
	base     string
	username string
	password string
	httpc    *http.Client
}

// NewClient creates an engine client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("addr is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base:     strings.TrimRight(cfg.Addr, "/"),
		username: cfg.Username,
		password: cfg.Password,
		httpc:    &http.Client{Timeout: timeout},
	}, nil
}

// Search posts the request body to {index}/_search and decodes the reply.
func (c *Client) Search(ctx context.Context, req *engine.Request) (*engine.Response, error) {
	if req == nil || req.Index == "" {
		return nil, fmt.Errorf("index name is required")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &engine.Error{Op: engine.OpSearch, Err: fmt.Errorf("encode request: %w", err)}
	}

	endpoint := c.base + "/" + url.PathEscape(req.Index) + "/_search"
	start := time.Now()
	raw, err := c.send(ctx, http.MethodPost, endpoint, body, engine.OpSearch)
	if err != nil {
		metrics.EngineRequestsTotal.WithLabelValues(engine.OpSearch, req.Index, "error").Inc()
		return nil, err
	}
	metrics.EngineRequestsTotal.WithLabelValues(engine.OpSearch, req.Index, "success").Inc()
	metrics.EngineRequestDuration.WithLabelValues(engine.OpSearch, req.Index).Observe(time.Since(start).Seconds())

	var resp engine.Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &engine.Error{Op: engine.OpSearch, Err: fmt.Errorf("decode response: %w", err)}
	}
	resp.Raw = raw
	return &resp, nil
}

// Get fetches one document by id from {index}/_doc/{id}.
func (c *Client) Get(ctx context.Context, index, id string) (*engine.Hit, error) {
	if index == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if id == "" {
		return nil, fmt.Errorf("document id is required")
	}

	endpoint := c.base + "/" + url.PathEscape(index) + "/_doc/" + url.PathEscape(id)
	start := time.Now()
	raw, err := c.send(ctx, http.MethodGet, endpoint, nil, engine.OpGet)
	if err != nil {
		metrics.EngineRequestsTotal.WithLabelValues(engine.OpGet, index, "error").Inc()
		return nil, err
	}
	metrics.EngineRequestsTotal.WithLabelValues(engine.OpGet, index, "success").Inc()
	metrics.EngineRequestDuration.WithLabelValues(engine.OpGet, index).Observe(time.Since(start).Seconds())

	var doc struct {
		Index  string          `json:"_index"`
		ID     string          `json:"_id"`
		Found  bool            `json:"found"`
		Source json.RawMessage `json:"_source"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &engine.Error{Op: engine.OpGet, Err: fmt.Errorf("decode response: %w", err)}
	}
	if !doc.Found {
		return nil, &engine.Error{Op: engine.OpGet, Err: engine.ErrNotFound}
	}
	return &engine.Hit{Index: doc.Index, ID: doc.ID, Source: doc.Source}, nil
}

// Ping checks engine connectivity.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.base+"/", nil)
	if err != nil {
		return &engine.Error{Op: engine.OpPing, Err: err}
	}
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &engine.Error{Op: engine.OpPing, Err: fmt.Errorf("%w: %w", engine.ErrUnavailable, err)}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for connection reuse

	if resp.StatusCode >= 300 {
		return &engine.Error{Op: engine.OpPing, Err: fmt.Errorf("%w: status %d", engine.ErrUnavailable, resp.StatusCode)}
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpc.CloseIdleConnections()
}

// WaitForReady polls Ping until the engine responds or timeout expires.
func (c *Client) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for engine: %w", ctx.Err())
		case <-ticker.C:
			if err := c.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// send runs one HTTP exchange and maps transport and status failures onto
// the engine sentinels. Network-level failures and 5xx are transient
// (ErrUnavailable); 4xx means the engine rejected the query.
func (c *Client) send(ctx context.Context, method, endpoint string, body []byte, op string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, &engine.Error{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &engine.Error{Op: op, Err: fmt.Errorf("%w: %w", engine.ErrUnavailable, err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &engine.Error{Op: op, Err: fmt.Errorf("%w: read response: %w", engine.ErrUnavailable, err)}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil
	case resp.StatusCode == http.StatusNotFound && op == engine.OpGet:
		// document GET reports missing ids with a 404 and found:false
		return raw, nil
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, &engine.Error{Op: op, Err: fmt.Errorf("%w: status %d: %s", engine.ErrUnavailable, resp.StatusCode, reason(raw))}
	default:
		return nil, &engine.Error{Op: op, Err: fmt.Errorf("%w: status %d: %s", engine.ErrBadRequest, resp.StatusCode, reason(raw))}
	}
}

func (c *Client) authorize(req *http.Request) {
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
}

// reason extracts the engine's error reason from a failure body,
// falling back to the raw body.
func reason(raw []byte) string {
	var body struct {
		Error struct {
			Reason string `json:"reason"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Reason != "" {
		return body.Error.Reason
	}
	if len(raw) > 200 {
		raw = raw[:200]
	}
	return string(raw)
}
