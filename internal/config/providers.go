package config

// SportsDataConfig controls how we talk to the SportsDataIO NBA feeds.
// Scores and stats live under different base paths upstream.
type SportsDataConfig struct {
	BaseURL      string
	StatsBaseURL string
	APIKey       string
}

// MLBStatsConfig points at the public MLB Stats API (no key required).
type MLBStatsConfig struct {
	BaseURL string
}

// FootballDataConfig controls the football-data.org client.
type FootballDataConfig struct {
	BaseURL       string
	APIKey        string
	CompetitionID int
}

func loadSportsData() SportsDataConfig {
	return SportsDataConfig{
		BaseURL:      envOrDefault(envSportsDataURL, defaultSportsDataURL),
		StatsBaseURL: envOrDefault(envSportsDataStatsURL, defaultSportsDataStatsURL),
		APIKey:       envOrDefault(envSportsDataAPIKey, ""),
	}
}

func loadMLBStats() MLBStatsConfig {
	return MLBStatsConfig{
		BaseURL: envOrDefault(envMLBStatsURL, defaultMLBStatsURL),
	}
}

func loadFootballData() FootballDataConfig {
	return FootballDataConfig{
		BaseURL:       envOrDefault(envFootballDataURL, defaultFootballDataURL),
		APIKey:        envOrDefault(envFootballDataAPIKey, ""),
		CompetitionID: intEnvOrDefault(envFootballDataComp, defaultFootballDataComp),
	}
}
