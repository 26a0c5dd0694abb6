package webumenia

import (
	"context"
	"errors"
	"testing"

	"github.com/theemack/webumenia.sk/internal/domain/search/filter"
	"github.com/theemack/webumenia.sk/internal/domain/search/result"
	searchuc "github.com/theemack/webumenia.sk/internal/usecase/search"
)

func TestSearchBuilder_Do_TranslatesCriteria(t *testing.T) {
	var (
		gotFilter *filter.Filter
		gotParams searchuc.Params
	)
	mock := &mockSearchUC{
		searchFn: func(_ context.Context, f *filter.Filter, p searchuc.Params) (result.Page, error) {
			gotFilter = f
			gotParams = p
			return testDomainPage(42, "SVK:SNG.O_184"), nil
		},
	}
	c := testClient(mock, nil)

	page, err := c.Search().
		Query("zima").
		Author("galanda, mikuláš").
		Gallery("SNG").
		HasImage(true).
		FromYear(1900).
		ToYear(1950).
		Color("#1d2129").
		Sort("newest").
		Size(24).
		From(48).
		Locale("en").
		Do(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotFilter == nil {
		t.Fatal("expected a non-nil filter")
	}
	if gotFilter.Search() != "zima" {
		t.Errorf("search = %q, want zima", gotFilter.Search())
	}
	if gotFilter.Color() != "#1d2129" {
		t.Errorf("color = %q, want #1d2129", gotFilter.Color())
	}
	years := gotFilter.Years()
	if years == nil || *years.From() != 1900 || *years.To() != 1950 {
		t.Errorf("years = %v, want [1900, 1950]", years)
	}

	// Facets come back canonicalized by key.
	facets := gotFilter.Facets()
	if len(facets) != 3 {
		t.Fatalf("facet count = %d, want 3", len(facets))
	}
	if facets[0].Key() != "author" || facets[0].Value() != "galanda, mikuláš" {
		t.Errorf("facet[0] = %s=%s, want author=galanda, mikuláš", facets[0].Key(), facets[0].Value())
	}
	if facets[1].Key() != "gallery" || facets[1].Value() != "SNG" {
		t.Errorf("facet[1] = %s=%s, want gallery=SNG", facets[1].Key(), facets[1].Value())
	}
	if facets[2].Key() != "has_image" || facets[2].Value() != "true" {
		t.Errorf("facet[2] = %s=%s, want has_image=true", facets[2].Key(), facets[2].Value())
	}

	want := searchuc.Params{Size: 24, From: 48, Sort: "newest", Locale: "en"}
	if gotParams != want {
		t.Errorf("params = %+v, want %+v", gotParams, want)
	}

	if page.Total != 42 {
		t.Errorf("total = %d, want 42", page.Total)
	}
	if len(page.Items) != 1 || page.Items[0].ID != "SVK:SNG.O_184" {
		t.Errorf("items = %+v, want the single fixture hit", page.Items)
	}
}

func TestSearchBuilder_Do_NoCriteriaMatchesEverything(t *testing.T) {
	var gotFilter *filter.Filter
	called := false
	mock := &mockSearchUC{
		searchFn: func(_ context.Context, f *filter.Filter, _ searchuc.Params) (result.Page, error) {
			called = true
			gotFilter = f
			return result.Page{}, nil
		},
	}
	c := testClient(mock, nil)

	if _, err := c.Search().Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("search was not executed")
	}
	if gotFilter != nil {
		t.Errorf("filter = %+v, want nil for an empty builder", gotFilter)
	}
}

func TestSearchBuilder_Do_InvertedYears(t *testing.T) {
	called := false
	mock := &mockSearchUC{
		searchFn: func(_ context.Context, _ *filter.Filter, _ searchuc.Params) (result.Page, error) {
			called = true
			return result.Page{}, nil
		},
	}
	c := testClient(mock, nil)

	_, err := c.Search().FromYear(1950).ToYear(1900).Do(context.Background())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
	if called {
		t.Error("search must not execute with an invalid year range")
	}
}

func TestSearchBuilder_Do_PropagatesSearchError(t *testing.T) {
	mock := &mockSearchUC{
		searchFn: func(_ context.Context, _ *filter.Filter, _ searchuc.Params) (result.Page, error) {
			return result.Page{}, ErrEngineUnavailable
		},
	}
	c := testClient(mock, nil)

	_, err := c.Search().Query("zima").Do(context.Background())
	if !errors.Is(err, ErrEngineUnavailable) {
		t.Fatalf("error = %v, want ErrEngineUnavailable", err)
	}
}

func TestSearchBuilder_FacetHelpers(t *testing.T) {
	var gotFilter *filter.Filter
	mock := &mockSearchUC{
		searchFn: func(_ context.Context, f *filter.Filter, _ searchuc.Params) (result.Page, error) {
			gotFilter = f
			return result.Page{}, nil
		},
	}
	c := testClient(mock, nil)

	_, err := c.Search().
		Technique("olejomaľba").
		Medium("plátno").
		Tag("zima").
		HasIIP(false).
		Do(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	facets := gotFilter.Facets()
	if len(facets) != 4 {
		t.Fatalf("facet count = %d, want 4", len(facets))
	}
	if facets[0].Key() != "has_iip" || facets[0].Value() != "false" {
		t.Errorf("facet[0] = %s=%s, want has_iip=false", facets[0].Key(), facets[0].Value())
	}
}
