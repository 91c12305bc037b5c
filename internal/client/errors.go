package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrTimeout is returned when the commerce API does not answer in time
var ErrTimeout = errors.New("square API request timed out")

// ErrorDetail is one entry of the commerce API error envelope
type ErrorDetail struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail,omitempty"`
	Field    string `json:"field,omitempty"`
}

func (d ErrorDetail) String() string {
	var b strings.Builder
	b.WriteString(d.Code)
	if d.Detail != "" {
		b.WriteString(": ")
		b.WriteString(d.Detail)
	}
	if d.Field != "" {
		fmt.Fprintf(&b, " (field %s)", d.Field)
	}
	return b.String()
}

// squareResponse is the error list any commerce API response body may carry
type squareResponse struct {
	Errors []ErrorDetail `json:"errors,omitempty"`
}

func (r *squareResponse) errorDetails() []ErrorDetail {
	return r.Errors
}

type errorCarrier interface {
	errorDetails() []ErrorDetail
}

// APIError is a rejection reported by the commerce API
type APIError struct {
	StatusCode int
	Errors     []ErrorDetail
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("square API error: status %d", e.StatusCode)
	}
	details := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		details = append(details, d.String())
	}
	return fmt.Sprintf("square API error: status %d: %s", e.StatusCode, strings.Join(details, "; "))
}

// NotFound reports whether the API rejected the call because the target does not exist
func (e *APIError) NotFound() bool {
	if e.StatusCode == http.StatusNotFound {
		return true
	}
	for _, d := range e.Errors {
		if d.Code == "NOT_FOUND" {
			return true
		}
	}
	return false
}
