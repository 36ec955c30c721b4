package providers

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(err)
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestUpstreamErrorUnwrapsRateLimit(t *testing.T) {
	err := error(&UpstreamError{
		Provider:   "mlbstats",
		URL:        "http://example.com/x",
		StatusCode: 429,
		Err:        &RateLimitError{Provider: "mlbstats", StatusCode: 429},
	})
	wrapped := errors.Wrap(err, "standings")

	if _, ok := AsRateLimitError(wrapped); !ok {
		t.Fatal("expected rate limit error through upstream error")
	}
	up, ok := AsUpstreamError(wrapped)
	if !ok || up.StatusCode != 429 {
		t.Fatalf("expected upstream error with status, got %+v", up)
	}
}

func TestMissingFieldIsMarked(t *testing.T) {
	err := MissingField("sportsdata", "Conference")

	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	up, ok := AsUpstreamError(err)
	if !ok || up.Provider != "sportsdata" {
		t.Fatalf("expected upstream error for provider, got %+v", up)
	}
}

func TestUpstreamErrorStringIncludesStatus(t *testing.T) {
	withStatus := &UpstreamError{Provider: "p", URL: "u", StatusCode: 502, Err: errors.New("boom")}
	if got := withStatus.Error(); got != "p: request to u failed (status=502): boom" {
		t.Fatalf("unexpected message %q", got)
	}
	noStatus := &UpstreamError{Provider: "p", URL: "u", Err: errors.New("boom")}
	if got := noStatus.Error(); got != "p: request to u failed: boom" {
		t.Fatalf("unexpected message %q", got)
	}
}
