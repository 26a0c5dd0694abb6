package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/theemack/webumenia.sk/internal/domain/item"
	"github.com/theemack/webumenia.sk/internal/domain/search/result"
	"github.com/theemack/webumenia.sk/internal/engine"
	"github.com/theemack/webumenia.sk/internal/locale"
	healthuc "github.com/theemack/webumenia.sk/internal/usecase/health"
	searchuc "github.com/theemack/webumenia.sk/internal/usecase/search"
)

// mockSearchRepo implements searchuc.Repository and records the last call.
type mockSearchRepo struct {
	page    result.Page
	err     error
	getItem item.Item
	getErr  error

	lastReq   *engine.Request
	lastIndex string
	lastID    string
}

func (m *mockSearchRepo) Search(_ context.Context, req *engine.Request) (result.Page, error) {
	m.lastReq = req
	if m.err != nil {
		return result.Page{}, m.err
	}
	return m.page, nil
}

func (m *mockSearchRepo) Get(_ context.Context, index, id string) (item.Item, error) {
	m.lastIndex = index
	m.lastID = id
	if m.getErr != nil {
		return item.Item{}, m.getErr
	}
	return m.getItem, nil
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

// newTestRouter builds the full route tree over a mocked repository.
func newTestRouter(t *testing.T, repo *mockSearchRepo, engineErr error) *chi.Mux {
	t.Helper()

	resolver, err := locale.NewResolver("sk", []string{"sk", "en"})
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	svc := searchuc.New(repo, resolver, searchuc.Config{
		BaseIndex:  "art_works",
		FacetAttrs: []string{"author"},
	})
	health := healthuc.New(&mockPinger{err: engineErr}, nil)

	r := chi.NewRouter()
	NewServer(svc, health, zap.NewNop()).Routes(r)
	return r
}

func testPageItem(id string) item.Item {
	return item.Reconstruct(
		id, "O 184", "Zima", "galanda, mikuláš", "", "olejomaľba", "", "", "SNG",
		[]string{"zima"}, 1930, 1935, true, false, []int64{951},
		time.Time{}, time.Time{},
	)
}

func testPage(total int, ids ...string) result.Page {
	items := make([]item.Item, len(ids))
	for i, id := range ids {
		items[i] = testPageItem(id)
	}
	facets := map[string][]result.Choice{
		"author": {result.NewChoice("Mikuláš Galanda (3)", "galanda, mikuláš")},
	}
	return result.NewPage(items, total, facets, nil)
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodePage(t *testing.T, rr *httptest.ResponseRecorder) PageResponse {
	t.Helper()
	var page PageResponse
	if err := json.NewDecoder(rr.Body).Decode(&page); err != nil {
		t.Fatalf("decode page response: %v", err)
	}
	return page
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var errResp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return errResp
}
