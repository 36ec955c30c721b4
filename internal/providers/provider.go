package providers

import (
	"context"

	"github.com/preston-bernstein/sports-data-service/internal/domain/players"
	"github.com/preston-bernstein/sports-data-service/internal/domain/schedules"
	"github.com/preston-bernstein/sports-data-service/internal/domain/standings"
)

// BasketballProvider fetches normalized NBA data for a season.
type BasketballProvider interface {
	Schedules(ctx context.Context, season int) ([]schedules.Day, error)
	Standings(ctx context.Context, season int) (standings.Conferences, error)
	Players(ctx context.Context, season int) ([]players.BasketballPlayer, error)
}

// BaseballProvider fetches normalized MLB data.
// Season reports ok=false when the provider does not list the requested year yet.
type BaseballProvider interface {
	Season(ctx context.Context, year int) (season schedules.Season, ok bool, err error)
	Schedule(ctx context.Context, window schedules.Window) ([]schedules.Day, error)
	Standings(ctx context.Context, season int) (standings.Leagues, error)
	AllStars(ctx context.Context, season int) ([]players.AllStar, error)
}

// SoccerProvider fetches normalized football competition data for a season.
type SoccerProvider interface {
	Schedules(ctx context.Context, season int) ([]schedules.Day, error)
	Standings(ctx context.Context, season int) ([]standings.SoccerTeam, error)
	Scorers(ctx context.Context, season int) ([]players.Scorer, error)
}
