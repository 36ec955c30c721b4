package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("mlbstats", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("mlbstats", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("mlbstats"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("mlbstats"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("mlbstats"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("mlbstats")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("mlbstats", 5*time.Second)
	rec.RecordRateLimit("mlbstats", 0)

	if got := rec.RateLimitHits("mlbstats"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("mlbstats"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderCountsFailedResponses(t *testing.T) {
	rec := NewRecorder()
	rec.RecordFailedResponse("MLB", "players")
	rec.RecordFailedResponse("MLB", "players")
	rec.RecordFailedResponse("SOCCER", "players")

	if got := rec.FailedResponses("MLB", "players"); got != 2 {
		t.Fatalf("expected 2 MLB failures, got %d", got)
	}
	if got := rec.FailedResponses("NBA", "players"); got != 0 {
		t.Fatalf("expected no NBA failures, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("x", time.Millisecond, nil)
	rec.RecordRateLimit("x", time.Second)
	rec.RecordHTTPRequest("GET", "/api", 200, time.Millisecond)
	rec.RecordFailedResponse("NBA", "schedules")
	if rec.FailedResponses("NBA", "schedules") != 0 || rec.ProviderCalls("x") != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}

func TestRecorderIsSafeForConcurrentHandlers(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.RecordProviderAttempt("footballdata", time.Millisecond, nil)
			rec.RecordFailedResponse("SOCCER", "standings")
		}()
	}
	wg.Wait()

	if rec.ProviderCalls("footballdata") != 50 || rec.FailedResponses("SOCCER", "standings") != 50 {
		t.Fatalf("unexpected counts %+v", rec.Snapshot("footballdata"))
	}
}
