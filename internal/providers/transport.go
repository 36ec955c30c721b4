package providers

import (
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultHTTPTimeout = 15 * time.Second

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient builds the shared upstream client. Outbound calls are traced and timed by otelhttp.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return NewHTTPClient(defaultHTTPTimeout)
}

// NormalizeBaseURL trims a trailing slash and falls back to def when raw is empty.
func NormalizeBaseURL(raw, def string) string {
	if strings.TrimSpace(raw) == "" {
		raw = def
	}
	return strings.TrimSuffix(strings.TrimSpace(raw), "/")
}
