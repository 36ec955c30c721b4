package server

import "time"

const (
	readTimeout = 10 * time.Second
	idleTimeout = 60 * time.Second

	// MLB players is the longest chain: players, teams, then one final-vote call per league.
	maxSequentialUpstreamCalls = 4
	fallbackUpstreamTimeout    = 15 * time.Second
	writeSlack                 = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor leaves room for the slowest handler to exhaust every upstream timeout
// and still write its failure envelope.
func writeTimeoutFor(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		upstream = fallbackUpstreamTimeout
	}
	return maxSequentialUpstreamCalls*upstream + writeSlack
}
