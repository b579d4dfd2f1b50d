package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is a collaborator-reported failure: a 4xx/5xx response whose body
// may carry a detail message. The detail is surfaced verbatim to the user
// when present; Message falls back to a generic phrase otherwise.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed: %s", http.StatusText(e.StatusCode))
}

// newError decodes the backend's {"detail": "..."} error body. A body
// that is not JSON, or has no detail field, yields a generic Error.
func newError(status int, body []byte) *Error {
	var payload struct {
		Detail string `json:"detail"`
	}
	// Decoding failures are deliberate no-ops: Detail stays empty.
	_ = json.Unmarshal(body, &payload)
	return &Error{StatusCode: status, Detail: payload.Detail}
}
