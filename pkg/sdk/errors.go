package sdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error codes reported by the API.
const (
	CodeBadRequest        = "bad_request"
	CodeValidationFailed  = "validation_failed"
	CodeItemNotFound      = "item_not_found"
	CodeEngineUnavailable = "engine_unavailable"
	CodeBadEngineResponse = "bad_engine_response"
	CodeInternalError     = "internal_error"
)

// APIError is a server-reported failure.
type APIError struct {
	StatusCode int    // HTTP status
	Code       string // machine-readable error code, empty for non-API bodies
	Message    string // human-readable detail
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("webumenia api: %s (http %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("webumenia api: %s (%s, http %d)", e.Message, e.Code, e.StatusCode)
}

// IsNotFound reports whether err is the API's item-not-found failure.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == CodeItemNotFound
}

// decodeError turns a non-OK response into an *APIError. Proxies and
// load balancers answer with plain text or HTML, so a body that does not
// parse as the API error shape is carried verbatim.
func decodeError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    "unreadable error body",
		}
	}

	var wire struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &wire); err == nil && wire.Code != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       wire.Code,
			Message:    wire.Message,
		}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
