package rescache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/theemack/webumenia.sk/internal/engine"
	"github.com/theemack/webumenia.sk/internal/store"
)

// mockSearcher counts calls and returns a canned response.
type mockSearcher struct {
	resp  *engine.Response
	err   error
	calls int
}

func (m *mockSearcher) Search(_ context.Context, _ *engine.Request) (*engine.Response, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, store.ErrKeyNotFound
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func newTestCachedSearcher(t *testing.T, inner *mockSearcher) (*CachedSearcher, *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{}
	cs := New(inner, ms, time.Minute, nil, zap.NewNop())
	return cs, ms
}

func testResponse() *engine.Response {
	raw := []byte(`{"took":3,"hits":{"total":{"value":1},"hits":[{"_id":"doc-1"}]}}`)
	return &engine.Response{
		Took: 3,
		Hits: engine.Hits{Total: engine.Total{Value: 1}, Hits: []engine.Hit{{ID: "doc-1"}}},
		Raw:  raw,
	}
}
