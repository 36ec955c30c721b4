package metrics

import (
	"sync"
	"time"
)

// Snapshot is a point-in-time copy of one provider's call stats.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Recorder keeps in-memory provider and envelope stats and mirrors every event to the OTel
// instruments when telemetry is enabled. A nil *Recorder is a valid no-op.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*Snapshot
	failures  map[string]int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*Snapshot),
		failures:  make(map[string]int),
		otel:      otel,
	}
}

// RecordProviderAttempt counts one upstream call and keeps its latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.update(provider, func(s *Snapshot) {
		s.Calls++
		s.LastCallLatency = duration
		if err != nil {
			s.Errors++
		}
	})
	r.otel.recordProviderAttempt(provider, duration, err)
}

// RecordRateLimit counts a 429 from the provider and keeps the advertised Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}
	r.update(provider, func(s *Snapshot) {
		s.RateLimitHits++
		if retryAfter > 0 {
			s.LastRetryAfter = retryAfter
		}
	})
	r.otel.recordRateLimit(provider, retryAfter)
}

// RecordHTTPRequest tracks inbound requests. Only exported through OTel.
func (r *Recorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.otel.recordHTTPRequest(method, route, status, duration)
}

// RecordFailedResponse counts envelopes that were answered with ok=false.
func (r *Recorder) RecordFailedResponse(league, resource string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.failures[failureKey(league, resource)]++
	r.mu.Unlock()
	r.otel.recordFailedResponse(league, resource)
}

// FailedResponses returns how many failure envelopes were served for a league/resource pair.
func (r *Recorder) FailedResponses(league, resource string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failures[failureKey(league, resource)]
}

// Snapshot returns a copy of the current stats for the provider.
func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.providers[provider]; ok {
		return *s
	}
	return Snapshot{}
}

func (r *Recorder) ProviderCalls(provider string) int { return r.Snapshot(provider).Calls }

func (r *Recorder) ProviderErrors(provider string) int { return r.Snapshot(provider).Errors }

func (r *Recorder) RateLimitHits(provider string) int { return r.Snapshot(provider).RateLimitHits }

func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

func (r *Recorder) update(provider string, fn func(*Snapshot)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.providers[provider]
	if !ok {
		s = &Snapshot{}
		r.providers[provider] = s
	}
	fn(s)
}

func failureKey(league, resource string) string {
	return league + "/" + resource
}
