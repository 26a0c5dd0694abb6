package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/theemack/webumenia.sk/internal/domain"
	"github.com/theemack/webumenia.sk/internal/domain/authority"
	"github.com/theemack/webumenia.sk/internal/domain/search/filter"
	"github.com/theemack/webumenia.sk/internal/engine"
	healthuc "github.com/theemack/webumenia.sk/internal/usecase/health"
	searchuc "github.com/theemack/webumenia.sk/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the catalogue read operations over HTTP.
type Server struct {
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		search: search,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrItemNotFound, http.StatusNotFound, ErrorCodeItemNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeItemNotFound),
		sentinelHandler(domain.ErrMalformedHit, http.StatusBadGateway, ErrorCodeBadEngineResponse),
		sentinelHandler(engine.ErrUnavailable, http.StatusServiceUnavailable, ErrorCodeEngineUnavailable),
	}
	return s
}

// Routes mounts every endpoint on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/items", s.SearchItems)
		api.Get("/items/{id}", s.GetItem)
		api.Get("/items/{id}/similar", s.SimilarItems)
		api.Get("/suggestions", s.Suggest)
		api.Get("/authorities/{id}/items", s.AuthorityItems)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// searchParams are the decoded query parameters of GET /api/v1/items.
// Nil means the parameter was absent.
type searchParams struct {
	Q         *string
	Author    *string
	Gallery   *string
	Technique *string
	Medium    *string
	Tag       *string
	HasImage  *bool
	HasIIP    *bool
	YearFrom  *int
	YearTo    *int
	Color     *string
	Sort      *string
	Size      *int
	From      *int
	Locale    *string
}

// listParams are the shared query parameters of the list-shaped endpoints.
type listParams struct {
	Size   *int
	Locale *string
}

func bindQuery(q url.Values, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, q, dest); err != nil {
		return fmt.Errorf("invalid parameter %q: %w", name, err)
	}
	return nil
}

func bindSearchParams(r *http.Request) (searchParams, error) {
	var p searchParams
	q := r.URL.Query()

	bindings := []struct {
		name string
		dest any
	}{
		{"q", &p.Q},
		{"author", &p.Author},
		{"gallery", &p.Gallery},
		{"technique", &p.Technique},
		{"medium", &p.Medium},
		{"tag", &p.Tag},
		{"has_image", &p.HasImage},
		{"has_iip", &p.HasIIP},
		{"year_from", &p.YearFrom},
		{"year_to", &p.YearTo},
		{"color", &p.Color},
		{"sort", &p.Sort},
		{"size", &p.Size},
		{"from", &p.From},
		{"locale", &p.Locale},
	}
	for _, b := range bindings {
		if err := bindQuery(q, b.name, b.dest); err != nil {
			return searchParams{}, err
		}
	}
	return p, nil
}

func bindListParams(r *http.Request) (listParams, error) {
	var p listParams
	q := r.URL.Query()
	if err := bindQuery(q, "size", &p.Size); err != nil {
		return listParams{}, err
	}
	if err := bindQuery(q, "locale", &p.Locale); err != nil {
		return listParams{}, err
	}
	return p, nil
}

// filterFromParams maps query parameters onto a domain filter. A request
// with no filtering criteria yields nil, which searches everything under
// the default ranking.
func filterFromParams(p searchParams) (*filter.Filter, error) {
	facets := make(map[string]string)
	setFacet := func(key string, v *string) {
		if v != nil && *v != "" {
			facets[key] = *v
		}
	}
	setFacet("author", p.Author)
	setFacet("gallery", p.Gallery)
	setFacet("technique", p.Technique)
	setFacet("medium", p.Medium)
	setFacet("tag", p.Tag)
	if p.HasImage != nil {
		facets["has_image"] = strconv.FormatBool(*p.HasImage)
	}
	if p.HasIIP != nil {
		facets["has_iip"] = strconv.FormatBool(*p.HasIIP)
	}

	var years *filter.YearRange
	if p.YearFrom != nil || p.YearTo != nil {
		yr, err := filter.NewYearRange(p.YearFrom, p.YearTo)
		if err != nil {
			return nil, err
		}
		years = &yr
	}

	f, err := filter.New(derefString(p.Q), years, derefString(p.Color), facets)
	if err != nil {
		return nil, err
	}
	if f.IsZero() {
		return nil, nil
	}
	return &f, nil
}

// SearchItems handles GET /api/v1/items.
func (s *Server) SearchItems(w http.ResponseWriter, r *http.Request) {
	p, err := bindSearchParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}

	f, err := filterFromParams(p)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
		return
	}

	page, err := s.search.Search(r.Context(), f, searchuc.Params{
		Size:   derefInt(p.Size),
		From:   derefInt(p.From),
		Sort:   derefString(p.Sort),
		Locale: derefString(p.Locale),
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToDTO(&page))
}

// GetItem handles GET /api/v1/items/{id}.
func (s *Server) GetItem(w http.ResponseWriter, r *http.Request) {
	var loc *string
	if err := bindQuery(r.URL.Query(), "locale", &loc); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}

	it, err := s.search.Get(r.Context(), chi.URLParam(r, "id"), derefString(loc))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, itemToDTO(&it))
}

// SimilarItems handles GET /api/v1/items/{id}/similar. The reference item
// must exist; similarity is seeded from its indexed document.
func (s *Server) SimilarItems(w http.ResponseWriter, r *http.Request) {
	p, err := bindListParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}
	loc := derefString(p.Locale)

	ref, err := s.search.Get(r.Context(), chi.URLParam(r, "id"), loc)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	page, err := s.search.Similar(r.Context(), derefInt(p.Size), ref, loc)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToDTO(&page))
}

// Suggest handles GET /api/v1/suggestions.
func (s *Server) Suggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var term, loc *string
	var size *int
	for _, b := range []struct {
		name string
		dest any
	}{
		{"q", &term},
		{"size", &size},
		{"locale", &loc},
	} {
		if err := bindQuery(q, b.name, b.dest); err != nil {
			writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
			return
		}
	}

	page, err := s.search.Suggest(r.Context(), derefInt(size), derefString(term), derefString(loc))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToDTO(&page))
}

// AuthorityItems handles GET /api/v1/authorities/{id}/items.
func (s *Server) AuthorityItems(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "authority id must be an integer")
		return
	}

	p, err := bindListParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}

	auth, err := authority.New(id, "")
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
		return
	}

	items, err := s.search.PreviewFor(r.Context(), derefInt(p.Size), auth, derefString(p.Locale))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ItemListResponse{Items: itemsToDTO(items)})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidInput,
		domain.ErrItemNotFound,
		domain.ErrNotFound,
		domain.ErrUnknownLocale,
		domain.ErrMalformedHit,
		engine.ErrUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
