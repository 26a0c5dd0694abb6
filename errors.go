package webumenia

import (
	"github.com/theemack/webumenia.sk/internal/domain"
	"github.com/theemack/webumenia.sk/internal/engine"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrItemNotFound      = domain.ErrItemNotFound
	ErrInvalidInput      = domain.ErrInvalidInput
	ErrMalformedHit      = domain.ErrMalformedHit
	ErrUnknownLocale     = domain.ErrUnknownLocale
	ErrEngineUnavailable = engine.ErrUnavailable
)
