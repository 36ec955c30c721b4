package providers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/sports-data-service/internal/logging"
	"github.com/preston-bernstein/sports-data-service/internal/metrics"
)

const (
	maxBodyBytes  = 32 << 20
	maxErrorBytes = 512
)

// Request describes one GET against a provider.
type Request struct {
	Provider string
	BaseURL  string
	Path     string
	Query    url.Values
	Header   http.Header
}

// URL renders the full request URL.
func (r Request) URL() string {
	u := strings.TrimSuffix(r.BaseURL, "/") + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}

// JSONFetcher performs a GET and decodes the JSON body into target.
type JSONFetcher interface {
	FetchJSON(ctx context.Context, req Request, target any) error
}

// Fetcher is the single upstream client shared by every provider. It never retries.
type Fetcher struct {
	client  httpDoer
	metrics *metrics.Recorder
	logger  *slog.Logger
	now     func() time.Time
}

// NewFetcher builds a Fetcher. A nil client gets the default instrumented client.
func NewFetcher(client *http.Client, recorder *metrics.Recorder, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client:  resolveHTTPClient(client),
		metrics: recorder,
		logger:  logger,
		now:     time.Now,
	}
}

// FetchJSON performs the request and decodes the response. Any failure is an *UpstreamError.
func (f *Fetcher) FetchJSON(ctx context.Context, req Request, target any) error {
	targetURL := req.URL()
	start := f.now()

	err := f.do(ctx, req, targetURL, target)

	f.metrics.RecordProviderAttempt(req.Provider, f.now().Sub(start), err)
	logger := logging.FromContext(ctx, f.logger)
	if err != nil {
		if rl, ok := AsRateLimitError(err); ok {
			f.metrics.RecordRateLimit(req.Provider, rl.RetryAfter)
		}
		logWithProvider(ctx, logger, slog.LevelWarn, req.Provider, "upstream fetch failed",
			slog.String(logging.FieldURL, targetURL),
			slog.Any(logging.FieldError, err),
		)
		return err
	}
	logWithProvider(ctx, logger, slog.LevelDebug, req.Provider, "upstream fetch ok",
		slog.String(logging.FieldURL, targetURL),
		slog.Int64(logging.FieldDurationMS, f.now().Sub(start).Milliseconds()),
	)
	return nil
}

func (f *Fetcher) do(ctx context.Context, req Request, targetURL string, target any) error {
	fail := func(status int, cause error) error {
		return &UpstreamError{Provider: req.Provider, URL: targetURL, StatusCode: status, Err: cause}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return fail(0, errors.Wrap(err, "build request"))
	}
	httpReq.Header.Set("Accept", "application/json")
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return fail(0, errors.Wrap(err, "send request"))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		return fail(resp.StatusCode, &RateLimitError{
			Provider:   req.Provider,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), f.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    strings.TrimSpace(string(body)),
		})
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		return fail(resp.StatusCode, errors.Wrapf(ErrUnexpectedStatus, "%d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fail(resp.StatusCode, errors.Wrap(err, "read body"))
	}
	if err := sonic.Unmarshal(body, target); err != nil {
		return fail(resp.StatusCode, errors.Wrap(err, "decode body"))
	}
	return nil
}

// parseRetryAfter accepts both delta-seconds and HTTP-date forms.
func parseRetryAfter(raw string, now time.Time) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
