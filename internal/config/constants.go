package config

import "time"

const (
	envPort            = "PORT"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envUpstreamTimeout = "UPSTREAM_TIMEOUT"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	envSportsDataURL      = "SPORTSDATA_URL"
	envSportsDataStatsURL = "SPORTSDATA_STATS_URL"
	envSportsDataAPIKey   = "SPORTSDATA_APIKEY"
	envMLBStatsURL        = "MLB_STATS_URL"
	envFootballDataURL    = "FOOTBALL_DATA_URL"
	envFootballDataAPIKey = "FOOTBALL_DATA_APIKEY"
	envFootballDataComp   = "FOOTBALL_DATA_COMPETITION"

	defaultPort        = "4000"
	defaultLogFormat   = "text"
	defaultLogLevel    = "info"
	defaultMetricsPort = "9090"
	defaultServiceName = "sports-data-service"
	defaultCORSOrigins = "*"
	// Bounds every upstream round trip.
	defaultUpstreamTimeout = 15 * Duration(time.Second)

	defaultSportsDataURL      = "https://api.sportsdata.io/v3/nba/scores/json"
	defaultSportsDataStatsURL = "https://api.sportsdata.io/v3/nba/stats/json"
	defaultMLBStatsURL        = "https://statsapi.mlb.com/api/v1"
	defaultFootballDataURL    = "https://api.football-data.org/v4"
	// Premier League.
	defaultFootballDataComp = 2021
)
