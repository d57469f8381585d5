package arcane

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// APIError is returned for every non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorBody is the error shape the backend returns.
type errorBody struct {
	Detail string `json:"detail"`
}

// newAPIError builds an APIError from a failed response. An unreadable body
// or a missing detail falls back to the reason phrase the server sent, then
// to the standard status text.
func newAPIError(status int, reason string, body []byte) *APIError {
	msg := reason
	if msg == "" {
		msg = http.StatusText(status)
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Detail != "" {
		msg = eb.Detail
	}

	return &APIError{Status: status, Message: msg}
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not
// an APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// reasonPhrase returns the text after the code in a status line such as
// "404 Not Found".
func reasonPhrase(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}
