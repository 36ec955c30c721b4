package config

import "strings"

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	LogLevel        string
	LogFormat       string
	UpstreamTimeout Duration
	CORSOrigins     []string
	SportsData      SportsDataConfig
	MLBStats        MLBStatsConfig
	FootballData    FootballDataConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		LogLevel:        envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:       envOrDefault(envLogFormat, defaultLogFormat),
		UpstreamTimeout: durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
		CORSOrigins:     splitCSV(envOrDefault(envCORSOrigins, defaultCORSOrigins)),
		SportsData:      loadSportsData(),
		MLBStats:        loadMLBStats(),
		FootballData:    loadFootballData(),
		Metrics:         loadMetrics(),
	}
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{defaultCORSOrigins}
	}
	return out
}
