package mlbstats

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/preston-bernstein/sports-data-service/internal/domain/players"
	"github.com/preston-bernstein/sports-data-service/internal/domain/schedules"
	"github.com/preston-bernstein/sports-data-service/internal/domain/standings"
	"github.com/preston-bernstein/sports-data-service/internal/providers"
	"github.com/preston-bernstein/sports-data-service/internal/timeutil"
)

const (
	defaultBaseURL = "https://statsapi.mlb.com/api/v1"
	sportMLB       = "1"
)

var _ providers.BaseballProvider = (*Client)(nil)

// Config controls how the client reaches the MLB Stats API. The API is keyless.
type Config struct {
	BaseURL string
}

// Client fetches MLB data from the public Stats API.
type Client struct {
	baseURL string
	fetcher providers.JSONFetcher
}

// NewClient constructs an MLB Stats client backed by the shared fetcher.
func NewClient(cfg Config, fetcher providers.JSONFetcher) *Client {
	return &Client{
		baseURL: providers.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		fetcher: fetcher,
	}
}

// Season returns the boundaries of the given season. ok is false when the API does not list it yet.
func (c *Client) Season(ctx context.Context, year int) (schedules.Season, bool, error) {
	var resp seasonsResponse
	query := url.Values{"sportId": {sportMLB}}
	if err := c.get(ctx, fmt.Sprintf("/seasons/%d", year), query, &resp); err != nil {
		return schedules.Season{}, false, err
	}
	if len(resp.Seasons) == 0 {
		return schedules.Season{}, false, nil
	}
	season, err := mapSeason(resp.Seasons[0])
	if err != nil {
		return schedules.Season{}, false, err
	}
	return season, true, nil
}

// Schedule returns every game in the window, one day per date, sorted ascending.
func (c *Client) Schedule(ctx context.Context, window schedules.Window) ([]schedules.Day, error) {
	var resp scheduleResponse
	query := url.Values{
		"sportId":   {sportMLB},
		"startDate": {timeutil.FormatDate(window.Start)},
		"endDate":   {timeutil.FormatDate(window.End)},
	}
	if err := c.get(ctx, "/schedule", query, &resp); err != nil {
		return nil, err
	}
	return mapSchedule(resp)
}

// Standings returns both leagues' standings for the season.
func (c *Client) Standings(ctx context.Context, season int) (standings.Leagues, error) {
	var resp standingsResponse
	query := url.Values{
		"leagueId": {fmt.Sprintf("%d,%d", americanLeagueID, nationalLeagueID)},
		"season":   {strconv.Itoa(season)},
	}
	if err := c.get(ctx, "/standings", query, &resp); err != nil {
		return standings.Leagues{}, err
	}
	teams, err := c.teams(ctx, season)
	if err != nil {
		return standings.Leagues{}, err
	}
	return mapStandings(teams, resp)
}

// AllStars returns the final-vote candidates of both leagues, interleaved NL first.
func (c *Client) AllStars(ctx context.Context, season int) ([]players.AllStar, error) {
	var people peopleResponse
	if err := c.get(ctx, "/sports/"+sportMLB+"/players", seasonQuery(season), &people); err != nil {
		return nil, err
	}
	teams, err := c.teams(ctx, season)
	if err != nil {
		return nil, err
	}
	american, err := c.finalVote(ctx, americanLeagueID, season)
	if err != nil {
		return nil, err
	}
	national, err := c.finalVote(ctx, nationalLeagueID, season)
	if err != nil {
		return nil, err
	}
	return mapAllStars(people.People, teams, american, national)
}

func (c *Client) finalVote(ctx context.Context, leagueID, season int) ([]allStarCandidate, error) {
	var resp allStarResponse
	if err := c.get(ctx, fmt.Sprintf("/league/%d/allStarFinalVote", leagueID), seasonQuery(season), &resp); err != nil {
		return nil, err
	}
	return resp.People, nil
}

func (c *Client) teams(ctx context.Context, season int) ([]team, error) {
	var resp teamsResponse
	query := seasonQuery(season)
	query.Set("sportId", sportMLB)
	if err := c.get(ctx, "/teams", query, &resp); err != nil {
		return nil, err
	}
	return resp.Teams, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, target any) error {
	if c == nil || c.fetcher == nil {
		return providers.ErrProviderUnavailable
	}
	return c.fetcher.FetchJSON(ctx, providers.Request{
		Provider: providerName,
		BaseURL:  c.baseURL,
		Path:     path,
		Query:    query,
	}, target)
}

func seasonQuery(season int) url.Values {
	return url.Values{"season": {strconv.Itoa(season)}}
}
