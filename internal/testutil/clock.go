package testutil

import "time"

// NowAt pins a now-func to t, for code that takes func() time.Time instead of a clockwork.Clock.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseRFC3339 parses v or panics.
func MustParseRFC3339(v string) time.Time {
	parsed, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return parsed
}
