package webumenia

import (
	"context"
	"time"

	"github.com/theemack/webumenia.sk/internal/domain/authority"
	"github.com/theemack/webumenia.sk/internal/domain/item"
	"github.com/theemack/webumenia.sk/internal/domain/search/filter"
	"github.com/theemack/webumenia.sk/internal/domain/search/result"
	healthuc "github.com/theemack/webumenia.sk/internal/usecase/health"
	searchuc "github.com/theemack/webumenia.sk/internal/usecase/search"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn  func(ctx context.Context, f *filter.Filter, p searchuc.Params) (result.Page, error)
	suggestFn func(ctx context.Context, size int, term, loc string) (result.Page, error)
	similarFn func(ctx context.Context, size int, ref item.Item, loc string) (result.Page, error)
	previewFn func(ctx context.Context, size int, a authority.Authority, loc string) ([]item.Item, error)
	getFn     func(ctx context.Context, id, loc string) (item.Item, error)
}

func (m *mockSearchUC) Search(
	ctx context.Context, f *filter.Filter, p searchuc.Params,
) (result.Page, error) {
	return m.searchFn(ctx, f, p)
}

func (m *mockSearchUC) Suggest(ctx context.Context, size int, term, loc string) (result.Page, error) {
	return m.suggestFn(ctx, size, term, loc)
}

func (m *mockSearchUC) Similar(
	ctx context.Context, size int, ref item.Item, loc string,
) (result.Page, error) {
	return m.similarFn(ctx, size, ref, loc)
}

func (m *mockSearchUC) PreviewFor(
	ctx context.Context, size int, a authority.Authority, loc string,
) ([]item.Item, error) {
	return m.previewFn(ctx, size, a, loc)
}

func (m *mockSearchUC) Get(ctx context.Context, id, loc string) (item.Item, error) {
	return m.getFn(ctx, id, loc)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	checkFn func(ctx context.Context) healthuc.Report
}

func (m *mockHealthUC) Check(ctx context.Context) healthuc.Report {
	return m.checkFn(ctx)
}

// --- helpers ---

func testClient(searchSvc searchUseCase, healthSvc healthUseCase) *Client {
	return &Client{searchSvc: searchSvc, healthSvc: healthSvc}
}

func testDomainItem(id string) item.Item {
	return item.Reconstruct(
		id, "O 184", "Zima", "Mikuláš Galanda", "", "olejomaľba", "plátno",
		"", "SNG", []string{"zima"}, 1930, 1935, true, false, []int64{951},
		time.Time{}, time.Time{},
	)
}

func testDomainPage(total int, ids ...string) result.Page {
	list := make([]item.Item, len(ids))
	for i, id := range ids {
		list[i] = testDomainItem(id)
	}
	facets := map[string][]result.Choice{
		"author": {result.NewChoice("Mikuláš Galanda (3)", "galanda, mikuláš")},
	}
	return result.NewPage(list, total, facets, nil)
}
