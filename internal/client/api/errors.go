package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrUnavailable wraps transport-level failures: the service could not
	// be reached at all (DNS, connection refused, timeout).
	ErrUnavailable = errors.New("service unavailable")
)

// Error is a non-2xx response from the account service. Message carries the
// server-provided description when the body contained one; callers decide
// whether to surface it verbatim or replace it with a generic message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// errorBody is the error payload shape used by the account service.
type errorBody struct {
	Error string `json:"error"`
}

// responseError builds an *Error from a non-2xx response body.
// A body that is not JSON, or has no "error" field, yields an empty Message.
func responseError(resp *http.Response, body []byte) error {
	apiErr := &Error{Status: resp.StatusCode}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		apiErr.Message = eb.Error
	}

	return apiErr
}

// decodeJSON reads the full response body, converts non-2xx statuses into
// *Error, and unmarshals a successful body into target (which may be nil
// when the caller only cares about the status).
func decodeJSON(resp *http.Response, target any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp, body)
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
