package engine

import "errors"

// Sentinel errors for engine operations. An unavailable engine must stay
// distinguishable from an empty result at every layer above.
var (
	ErrUnavailable = errors.New("engine: unavailable")
	ErrNotFound    = errors.New("engine: document not found")
	ErrBadRequest  = errors.New("engine: query rejected")
)

// Op constants map to engine endpoints for error context.
const (
	OpSearch = "_search"
	OpGet    = "_doc"
	OpPing   = "ping"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
