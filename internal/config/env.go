package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// envOrDefault returns the trimmed variable, or defaultValue when it is unset or blank.
func envOrDefault(key, defaultValue string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultValue
}

// parsedEnvOrDefault falls back to defaultValue when the variable is blank or parse rejects it.
func parsedEnvOrDefault[T any](key string, defaultValue T, parse func(string) (T, bool)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	if val, ok := parse(raw); ok {
		return val
	}
	return defaultValue
}

func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	return parsedEnvOrDefault(key, defaultValue, func(raw string) (time.Duration, bool) {
		d, err := time.ParseDuration(raw)
		return d, err == nil && d > 0
	})
}

func intEnvOrDefault(key string, defaultValue int) int {
	return parsedEnvOrDefault(key, defaultValue, func(raw string) (int, bool) {
		n, err := strconv.Atoi(raw)
		return n, err == nil && n > 0
	})
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	return parsedEnvOrDefault(key, defaultValue, func(raw string) (bool, bool) {
		switch strings.ToLower(raw) {
		case "1", "true", "yes":
			return true, true
		case "0", "false", "no":
			return false, true
		}
		return false, false
	})
}
