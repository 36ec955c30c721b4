package footballdata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/preston-bernstein/sports-data-service/internal/domain/players"
	"github.com/preston-bernstein/sports-data-service/internal/domain/schedules"
	"github.com/preston-bernstein/sports-data-service/internal/domain/standings"
	"github.com/preston-bernstein/sports-data-service/internal/providers"
)

const (
	defaultBaseURL       = "https://api.football-data.org/v4"
	defaultCompetitionID = 2021
	scorersLimit         = 20
	authHeader           = "X-Auth-Token"
)

var _ providers.SoccerProvider = (*Client)(nil)

// Config controls how the client reaches football-data.org.
type Config struct {
	BaseURL       string
	APIKey        string
	CompetitionID int
}

// Client fetches one competition's data from football-data.org.
type Client struct {
	baseURL       string
	apiKey        string
	competitionID int
	fetcher       providers.JSONFetcher
}

// NewClient constructs a football-data client backed by the shared fetcher.
func NewClient(cfg Config, fetcher providers.JSONFetcher) *Client {
	competition := cfg.CompetitionID
	if competition <= 0 {
		competition = defaultCompetitionID
	}
	return &Client{
		baseURL:       providers.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		apiKey:        cfg.APIKey,
		competitionID: competition,
		fetcher:       fetcher,
	}
}

// Schedules returns the season's matches grouped into consecutive match days.
func (c *Client) Schedules(ctx context.Context, season int) ([]schedules.Day, error) {
	var resp matchesResponse
	if err := c.get(ctx, "matches", seasonQuery(season), &resp); err != nil {
		return nil, err
	}
	return mapMatches(resp.Matches)
}

// Standings returns the first table of the season's standings.
func (c *Client) Standings(ctx context.Context, season int) ([]standings.SoccerTeam, error) {
	var resp standingsResponse
	if err := c.get(ctx, "standings", seasonQuery(season), &resp); err != nil {
		return nil, err
	}
	return mapStandings(resp)
}

// Scorers returns the season's top scorers.
func (c *Client) Scorers(ctx context.Context, season int) ([]players.Scorer, error) {
	var resp scorersResponse
	query := seasonQuery(season)
	query.Set("limit", strconv.Itoa(scorersLimit))
	if err := c.get(ctx, "scorers", query, &resp); err != nil {
		return nil, err
	}
	return mapScorers(resp.Scorers)
}

func (c *Client) get(ctx context.Context, resource string, query url.Values, target any) error {
	if c == nil || c.fetcher == nil {
		return providers.ErrProviderUnavailable
	}
	header := make(http.Header)
	if c.apiKey != "" {
		header.Set(authHeader, c.apiKey)
	}
	return c.fetcher.FetchJSON(ctx, providers.Request{
		Provider: providerName,
		BaseURL:  c.baseURL,
		Path:     fmt.Sprintf("/competitions/%d/%s", c.competitionID, resource),
		Query:    query,
		Header:   header,
	}, target)
}

func seasonQuery(season int) url.Values {
	return url.Values{"season": {strconv.Itoa(season)}}
}
