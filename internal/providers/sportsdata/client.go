package sportsdata

import (
	"context"
	"fmt"
	"net/http"

	"github.com/preston-bernstein/sports-data-service/internal/domain/players"
	"github.com/preston-bernstein/sports-data-service/internal/domain/schedules"
	"github.com/preston-bernstein/sports-data-service/internal/domain/standings"
	"github.com/preston-bernstein/sports-data-service/internal/providers"
)

const (
	defaultBaseURL      = "https://api.sportsdata.io/v3/nba/scores/json"
	defaultStatsBaseURL = "https://api.sportsdata.io/v3/nba/stats/json"
	apiKeyHeader        = "Ocp-Apim-Subscription-Key"
)

var _ providers.BasketballProvider = (*Client)(nil)

// Config controls how the client reaches SportsDataIO.
type Config struct {
	BaseURL      string
	StatsBaseURL string
	APIKey       string
}

// Client fetches NBA feeds from SportsDataIO and maps them to domain models.
type Client struct {
	baseURL      string
	statsBaseURL string
	apiKey       string
	fetcher      providers.JSONFetcher
}

// NewClient constructs a SportsDataIO client backed by the shared fetcher.
func NewClient(cfg Config, fetcher providers.JSONFetcher) *Client {
	return &Client{
		baseURL:      providers.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		statsBaseURL: providers.NormalizeBaseURL(cfg.StatsBaseURL, defaultStatsBaseURL),
		apiKey:       cfg.APIKey,
		fetcher:      fetcher,
	}
}

// Schedules returns the season schedule grouped into consecutive game days.
func (c *Client) Schedules(ctx context.Context, season int) ([]schedules.Day, error) {
	var games []scheduleGame
	if err := c.get(ctx, c.baseURL, fmt.Sprintf("/SchedulesBasic/%d", season), &games); err != nil {
		return nil, err
	}
	return mapSchedule(games), nil
}

// Standings returns the season standings bucketed by conference.
func (c *Client) Standings(ctx context.Context, season int) (standings.Conferences, error) {
	teams, err := c.teams(ctx, season)
	if err != nil {
		return standings.Conferences{}, err
	}
	var rows []standing
	if err := c.get(ctx, c.baseURL, fmt.Sprintf("/Standings/%d", season), &rows); err != nil {
		return standings.Conferences{}, err
	}
	return mapStandings(teams, rows)
}

// Players returns the season leaderboard.
func (c *Client) Players(ctx context.Context, season int) ([]players.BasketballPlayer, error) {
	teams, err := c.teams(ctx, season)
	if err != nil {
		return nil, err
	}
	var rows []playerSeason
	if err := c.get(ctx, c.statsBaseURL, fmt.Sprintf("/PlayerSeasonStats/%d", season), &rows); err != nil {
		return nil, err
	}
	return mapPlayers(teams, rows), nil
}

func (c *Client) teams(ctx context.Context, season int) ([]team, error) {
	var teams []team
	if err := c.get(ctx, c.baseURL, fmt.Sprintf("/teams/%d", season), &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *Client) get(ctx context.Context, baseURL, path string, target any) error {
	if c == nil || c.fetcher == nil {
		return providers.ErrProviderUnavailable
	}
	header := make(http.Header)
	if c.apiKey != "" {
		header.Set(apiKeyHeader, c.apiKey)
	}
	return c.fetcher.FetchJSON(ctx, providers.Request{
		Provider: providerName,
		BaseURL:  baseURL,
		Path:     path,
		Header:   header,
	}, target)
}
