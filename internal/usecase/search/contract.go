package search

import (
	"context"

	"github.com/theemack/webumenia.sk/internal/domain/item"
	"github.com/theemack/webumenia.sk/internal/domain/search/result"
	"github.com/theemack/webumenia.sk/internal/engine"
)

// Repository defines the engine-backed contract for catalogue retrieval.
type Repository interface {
	Search(ctx context.Context, req *engine.Request) (result.Page, error)
	Get(ctx context.Context, index, id string) (item.Item, error)
}

// LocaleResolver picks the locale-qualified physical index. Current reports
// the ambient default used when callers omit the locale.
type LocaleResolver interface {
	Current() string
	IndexName(base, locale string) string
}
