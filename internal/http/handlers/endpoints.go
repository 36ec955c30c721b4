package handlers

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/sports-data-service/internal/domain/players"
	"github.com/preston-bernstein/sports-data-service/internal/domain/schedules"
	"github.com/preston-bernstein/sports-data-service/internal/domain/standings"
)

// Leagues as they appear in the URL.
const (
	LeagueNBA    = "NBA"
	LeagueMLB    = "MLB"
	LeagueSoccer = "SOCCER"
)

// Resources as they appear in the URL.
const (
	ResourceSchedules = "schedules"
	ResourceStandings = "standings"
	ResourcePlayers   = "players"
)

// Shared-cache lifetimes in seconds, per resource.
const (
	maxAgeSchedules = 31536000
	maxAgeStandings = 3600
	maxAgePlayers   = 84600
)

// ScheduleService serves every league's schedule.
type ScheduleService interface {
	NBA(ctx context.Context) ([]schedules.Day, error)
	MLB(ctx context.Context) ([]schedules.Day, error)
	Soccer(ctx context.Context) ([]schedules.Day, error)
}

// StandingsService serves every league's standings.
type StandingsService interface {
	NBA(ctx context.Context) (standings.Conferences, error)
	MLB(ctx context.Context) (standings.Leagues, error)
	Soccer(ctx context.Context) ([]standings.SoccerTeam, error)
}

// PlayersService serves every league's player listing.
type PlayersService interface {
	NBA(ctx context.Context) ([]players.BasketballPlayer, error)
	MLB(ctx context.Context) ([]players.AllStar, error)
	Soccer(ctx context.Context) ([]players.Scorer, error)
}

type fetchFunc func(ctx context.Context) (any, error)

type endpointKey struct {
	league   string
	resource string
}

type endpoint struct {
	cacheControl string
	fetch        fetchFunc
}

func cacheControl(maxAge int) string {
	return fmt.Sprintf("public, s-maxage=%d", maxAge)
}

func adapt[T any](fn func(ctx context.Context) (T, error)) fetchFunc {
	return func(ctx context.Context) (any, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func buildEndpoints(sched ScheduleService, stand StandingsService, play PlayersService) map[endpointKey]endpoint {
	out := make(map[endpointKey]endpoint, 9)
	add := func(league, resource string, maxAge int, fn fetchFunc) {
		out[endpointKey{league: league, resource: resource}] = endpoint{cacheControl: cacheControl(maxAge), fetch: fn}
	}
	if sched != nil {
		add(LeagueNBA, ResourceSchedules, maxAgeSchedules, adapt(sched.NBA))
		add(LeagueMLB, ResourceSchedules, maxAgeSchedules, adapt(sched.MLB))
		add(LeagueSoccer, ResourceSchedules, maxAgeSchedules, adapt(sched.Soccer))
	}
	if stand != nil {
		add(LeagueNBA, ResourceStandings, maxAgeStandings, adapt(stand.NBA))
		add(LeagueMLB, ResourceStandings, maxAgeStandings, adapt(stand.MLB))
		add(LeagueSoccer, ResourceStandings, maxAgeStandings, adapt(stand.Soccer))
	}
	if play != nil {
		add(LeagueNBA, ResourcePlayers, maxAgePlayers, adapt(play.NBA))
		add(LeagueMLB, ResourcePlayers, maxAgePlayers, adapt(play.MLB))
		add(LeagueSoccer, ResourcePlayers, maxAgePlayers, adapt(play.Soccer))
	}
	return out
}
