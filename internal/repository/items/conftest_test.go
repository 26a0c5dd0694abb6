package items

import (
	"context"
	"testing"

	"golang.org/x/text/language"

	"github.com/theemack/webumenia.sk/internal/engine"
	"github.com/theemack/webumenia.sk/internal/names"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchFn func(ctx context.Context, req *engine.Request) (*engine.Response, error)
	getFn    func(ctx context.Context, index, id string) (*engine.Hit, error)
}

func (m *mockStore) Search(ctx context.Context, req *engine.Request) (*engine.Response, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, req)
	}
	return &engine.Response{}, nil
}

func (m *mockStore) Get(ctx context.Context, index, id string) (*engine.Hit, error) {
	if m.getFn != nil {
		return m.getFn(ctx, index, id)
	}
	return &engine.Hit{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms, names.NewFormatter(language.Slovak))
	return repo, ms
}

func testHit(id, source string) engine.Hit {
	return engine.Hit{Index: "art_works_sk", ID: id, Source: []byte(source)}
}
