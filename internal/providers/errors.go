package providers

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
)

var (
	// ErrMissingField marks a response that lacks a nested object the mapper cannot do without.
	ErrMissingField = errors.New("required field missing")
	// ErrUnexpectedStatus marks a non-2xx upstream response.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrProviderUnavailable is returned when a provider was not configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// UpstreamError describes a failed call to a third-party provider.
type UpstreamError struct {
	Provider   string
	URL        string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: request to %s failed (status=%d): %v", e.Provider, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: request to %s failed: %v", e.Provider, e.URL, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// MissingField reports that a required nested object was absent from a provider payload.
func MissingField(provider, field string) error {
	return &UpstreamError{
		Provider: provider,
		Err:      errors.Wrapf(ErrMissingField, "%s", field),
	}
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
