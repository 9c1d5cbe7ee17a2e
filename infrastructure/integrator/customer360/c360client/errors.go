package c360client

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrorResponse is the body the backend sends with a non-2xx status.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// APIError is returned when the backend answers with a non-2xx status.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
	Body       string
}

func newAPIError(op string, status int, body []byte) *APIError {
	e := &APIError{Op: op, StatusCode: status, Body: string(body)}

	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != "" {
		e.Message = resp.Error
	} else {
		e.Message = http.StatusText(status)
	}

	return e
}

func (e *APIError) Error() string {
	return fmt.Sprintf("c360: %s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ClientError is true for 4xx answers, which a retry will not fix.
func (e *APIError) ClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

func (e *APIError) ServerError() bool {
	return e.StatusCode >= 500
}

// AsAPIError unwraps err into an *APIError when the backend answered.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
