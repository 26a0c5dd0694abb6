package search

import (
	"context"
	"testing"
	"time"

	"github.com/theemack/webumenia.sk/internal/domain/item"
	"github.com/theemack/webumenia.sk/internal/domain/search/filter"
	"github.com/theemack/webumenia.sk/internal/domain/search/result"
	"github.com/theemack/webumenia.sk/internal/engine"
	"github.com/theemack/webumenia.sk/internal/locale"
)

// mockRepo implements Repository and records the last engine request.
type mockRepo struct {
	page   result.Page
	err    error
	item   item.Item
	getErr error

	lastReq   *engine.Request
	lastIndex string
	lastID    string
}

func (m *mockRepo) Search(_ context.Context, req *engine.Request) (result.Page, error) {
	m.lastReq = req
	if m.err != nil {
		return result.Page{}, m.err
	}
	return m.page, nil
}

func (m *mockRepo) Get(_ context.Context, index, id string) (item.Item, error) {
	m.lastIndex, m.lastID = index, id
	if m.getErr != nil {
		return item.Item{}, m.getErr
	}
	return m.item, nil
}

func newTestService(t *testing.T) (*Service, *mockRepo) {
	t.Helper()
	repo := &mockRepo{}
	resolver, err := locale.NewResolver("sk", []string{"sk", "en", "cs"})
	if err != nil {
		t.Fatalf("locale.NewResolver: %v", err)
	}
	svc := New(repo, resolver, Config{
		BaseIndex:  "art_works",
		FacetAttrs: []string{"author", "technique"},
		FacetSize:  16,
	})
	return svc, repo
}

func testItem(t *testing.T, id string) item.Item {
	t.Helper()
	return item.Reconstruct(
		id, "O 184", "Zima", "galanda, mikuláš", "Zasnežená krajina",
		"olejomaľba", "plátno", "Slovensko", "SNG",
		[]string{"zima", "krajina"}, 1930, 1935, true, true,
		[]int64{951}, time.Time{}, time.Time{},
	)
}

// mustFilter builds a Filter or fails the test.
func mustFilter(t *testing.T, search string, years *filter.YearRange, color string, facets map[string]string) filter.Filter {
	t.Helper()
	f, err := filter.New(search, years, color, facets)
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}
	return f
}

func yearRange(t *testing.T, from, to *int) *filter.YearRange {
	t.Helper()
	r, err := filter.NewYearRange(from, to)
	if err != nil {
		t.Fatalf("filter.NewYearRange: %v", err)
	}
	return &r
}

func intp(v int) *int { return &v }
