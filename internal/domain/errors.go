package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrItemNotFound signals a missing catalogue item.
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidInput signals a caller-supplied value that fails domain validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMalformedHit signals an engine hit that cannot be resolved to a domain item.
	ErrMalformedHit = errors.New("malformed search hit")
	// ErrUnknownLocale signals a locale with no configured index.
	ErrUnknownLocale = errors.New("unknown locale")
)

// MalformedHitError wraps ErrMalformedHit with the offending hit id.
type MalformedHitError struct {
	ID    string
	Cause error
}

func (e *MalformedHitError) Error() string {
	return fmt.Sprintf("%s: hit %q: %v", ErrMalformedHit.Error(), e.ID, e.Cause)
}

func (e *MalformedHitError) Unwrap() error { return ErrMalformedHit }

// NewMalformedHit creates a malformed hit error for the given hit id.
func NewMalformedHit(id string, cause error) error {
	return &MalformedHitError{ID: id, Cause: cause}
}
