package server

import (
	"testing"
	"time"
)

func TestWriteTimeoutCoversSequentialUpstreamCalls(t *testing.T) {
	if got := writeTimeoutFor(10 * time.Second); got != 45*time.Second {
		t.Fatalf("expected 45s, got %s", got)
	}
	if got := writeTimeoutFor(0); got != 65*time.Second {
		t.Fatalf("expected fallback-based 65s, got %s", got)
	}
}
