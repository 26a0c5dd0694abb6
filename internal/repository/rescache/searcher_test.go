package rescache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/theemack/webumenia.sk/internal/engine"
	"github.com/theemack/webumenia.sk/internal/store"
)

func TestSearch_CacheMiss(t *testing.T) {
	inner := &mockSearcher{resp: testResponse()}
	cs, ms := newTestCachedSearcher(t, inner)
	ctx := context.Background()

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, store.ErrKeyNotFound
	}

	var setKey string
	var setTTL time.Duration
	ms.setFn = func(_ context.Context, key string, value []byte, ttl time.Duration) error {
		setKey = key
		setTTL = ttl
		if string(value) != string(testResponse().Raw) {
			t.Errorf("expected raw body to be cached, got %s", value)
		}
		return nil
	}

	resp, err := cs.Search(ctx, &engine.Request{Index: "art_works_sk", Size: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Hits.Total.Value != 1 {
		t.Fatalf("unexpected total: %d", resp.Hits.Total.Value)
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 inner call, got %d", inner.calls)
	}
	if !strings.HasPrefix(setKey, cacheKeyPrefix) {
		t.Fatalf("expected prefixed cache key, got %q", setKey)
	}
	if setTTL != time.Minute {
		t.Fatalf("expected ttl 1m, got %v", setTTL)
	}
}

func TestSearch_CacheHit(t *testing.T) {
	inner := &mockSearcher{resp: testResponse()}
	cs, ms := newTestCachedSearcher(t, inner)
	ctx := context.Background()

	cached := []byte(`{"took":1,"hits":{"total":{"value":7},"hits":[]}}`)
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return cached, nil
	}

	resp, err := cs.Search(ctx, &engine.Request{Index: "art_works_sk", Size: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 0 {
		t.Fatalf("expected no inner calls on hit, got %d", inner.calls)
	}
	if resp.Hits.Total.Value != 7 {
		t.Fatalf("expected cached total 7, got %d", resp.Hits.Total.Value)
	}
	if string(resp.Raw) != string(cached) {
		t.Fatal("expected Raw to be the cached body")
	}
}

func TestSearch_InnerError(t *testing.T) {
	inner := &mockSearcher{err: errors.New("engine down")}
	cs, ms := newTestCachedSearcher(t, inner)
	ctx := context.Background()

	var setCalled bool
	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		setCalled = true
		return nil
	}

	_, err := cs.Search(ctx, &engine.Request{Index: "art_works_sk"})
	if err == nil {
		t.Fatal("expected error from inner searcher")
	}
	if setCalled {
		t.Fatal("expected no cache put after inner failure")
	}
}

func TestSearch_StoreFaultDegradesToMiss(t *testing.T) {
	inner := &mockSearcher{resp: testResponse()}
	cs, ms := newTestCachedSearcher(t, inner)
	ctx := context.Background()

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, &store.Error{Op: store.OpGet, Err: errors.New("connection reset")}
	}
	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		return errors.New("connection reset")
	}

	resp, err := cs.Search(ctx, &engine.Request{Index: "art_works_sk"})
	if err != nil {
		t.Fatalf("expected cache faults to be non-fatal, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected fallthrough to inner, got %d calls", inner.calls)
	}
	if resp.Hits.Total.Value != 1 {
		t.Fatalf("unexpected total: %d", resp.Hits.Total.Value)
	}
}

func TestSearch_CorruptCacheEntryDegradesToMiss(t *testing.T) {
	inner := &mockSearcher{resp: testResponse()}
	cs, ms := newTestCachedSearcher(t, inner)
	ctx := context.Background()

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return []byte(`{"hits":`), nil
	}

	resp, err := cs.Search(ctx, &engine.Request{Index: "art_works_sk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected inner call on corrupt entry, got %d", inner.calls)
	}
	if resp.Hits.Total.Value != 1 {
		t.Fatalf("unexpected total: %d", resp.Hits.Total.Value)
	}
}

func TestSearch_KeyIsStablePerRequest(t *testing.T) {
	inner := &mockSearcher{resp: testResponse()}
	cs, ms := newTestCachedSearcher(t, inner)
	ctx := context.Background()

	var keys []string
	ms.getFn = func(_ context.Context, key string) ([]byte, error) {
		keys = append(keys, key)
		return nil, store.ErrKeyNotFound
	}

	reqA := &engine.Request{Index: "art_works_sk", Size: 10}
	reqB := &engine.Request{Index: "art_works_sk", Size: 10}
	reqC := &engine.Request{Index: "art_works_en", Size: 10}

	for _, req := range []*engine.Request{reqA, reqB, reqC} {
		if _, err := cs.Search(ctx, req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if keys[0] != keys[1] {
		t.Fatalf("equal requests must share a key: %q vs %q", keys[0], keys[1])
	}
	if keys[0] == keys[2] {
		t.Fatal("different indices must not share a key")
	}
}
