package infrabed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingCredentials = errors.New("infrabed: API key and secret are required")
	ErrInvalidInput       = errors.New("infrabed: input must be a sentence or a list of sentences")
	ErrInvalidResponse    = errors.New("infrabed: response body is not valid JSON")
)

// APIError is returned for every response whose status is not 2xx.
// Response.Body has already been drained into Body.
type APIError struct {
	Code       string
	Message    string
	StatusCode int
	Body       []byte
	Response   *http.Response
	Request    *http.Request
}

func (e *APIError) Error() string {
	return fmt.Sprintf("infrabed API error %d: %s", e.StatusCode, e.Message)
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	return &APIError{
		Message:    errorMessage(body),
		StatusCode: resp.StatusCode,
		Body:       body,
		Response:   resp,
		Request:    resp.Request,
	}
}

// errorMessage prefers a JSON "detail" field and falls back to the raw body.
func errorMessage(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return DefaultErrorMessage
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}

	if obj, ok := parsed.(map[string]any); ok {
		if detail, ok := obj["detail"]; ok {
			if s, ok := detail.(string); ok {
				return s
			}
			if b, err := json.Marshal(detail); err == nil {
				return string(b)
			}
		}
	}
	return string(body)
}

// StatusCode returns the HTTP status carried by an *APIError in err's
// chain, or 0.
func StatusCode(err error) int {
	var e *APIError
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	code := StatusCode(err)
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

func IsRateLimited(err error) bool {
	return StatusCode(err) == http.StatusTooManyRequests
}
