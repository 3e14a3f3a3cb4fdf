package clients

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"medvirkning/pkg/platform/sentinel"
)

// Category is the normalized failure taxonomy for outbound calls.
type Category string

const (
	// CategoryTimeout indicates the collaborator took too long to respond
	CategoryTimeout Category = "timeout"

	// CategoryBadData indicates the collaborator returned a malformed or empty payload
	CategoryBadData Category = "bad_data"

	// CategoryAuthentication indicates the system token was rejected
	CategoryAuthentication Category = "authentication"

	// CategoryOutage indicates the collaborator is unavailable
	CategoryOutage Category = "outage"

	// CategoryRejected indicates the collaborator refused the request as invalid
	CategoryRejected Category = "rejected"

	// CategoryNotFound indicates the requested record doesn't exist
	CategoryNotFound Category = "not_found"

	// CategoryRateLimited indicates too many requests
	CategoryRateLimited Category = "rate_limited"

	// CategoryInternal indicates an unexpected local error
	CategoryInternal Category = "internal"
)

// Error wraps collaborator failures with normalized categorization.
type Error struct {
	Collaborator string
	Category     Category
	Message      string
	StatusCode   int
	Underlying   error
	Retryable    bool
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s [%s]: %s", e.Collaborator, e.Category, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Underlying)
	}
	return msg
}

// Unwrap exposes the underlying cause and, for transient failures,
// sentinel.ErrUnavailable.
func (e *Error) Unwrap() []error {
	var errs []error
	if e.Underlying != nil {
		errs = append(errs, e.Underlying)
	}
	if e.Retryable {
		errs = append(errs, sentinel.ErrUnavailable)
	}
	return errs
}

// NewError creates a categorized collaborator error.
func NewError(collaborator string, category Category, message string, underlying error) *Error {
	retryable := category == CategoryTimeout ||
		category == CategoryOutage ||
		category == CategoryRateLimited

	return &Error{
		Collaborator: collaborator,
		Category:     category,
		Message:      message,
		Underlying:   underlying,
		Retryable:    retryable,
	}
}

// FromStatus categorizes a non-success HTTP response.
func FromStatus(collaborator string, status int, body string) *Error {
	var category Category
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		category = CategoryAuthentication
	case status == http.StatusNotFound:
		category = CategoryNotFound
	case status == http.StatusTooManyRequests:
		category = CategoryRateLimited
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		category = CategoryTimeout
	case status >= 500:
		category = CategoryOutage
	default:
		category = CategoryRejected
	}
	e := NewError(collaborator, category, truncate(body, 512), nil)
	e.StatusCode = status
	return e
}

// FromTransport categorizes an error returned by the HTTP round trip itself.
func FromTransport(collaborator string, err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return NewError(collaborator, CategoryTimeout, "request timed out", err)
	}
	return NewError(collaborator, CategoryOutage, "request failed", err)
}

// IsRetryable checks if an error is worth retrying.
func IsRetryable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Retryable
	}
	return false
}

// CategoryOf extracts the category from an error.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return CategoryInternal
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
