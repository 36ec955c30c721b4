package schedules

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"

	domain "github.com/preston-bernstein/sports-data-service/internal/domain/schedules"
)

// ErrSeasonUnknown is returned when the baseball provider does not list the current season.
var ErrSeasonUnknown = errors.New("current season not listed")

// BasketballSource fetches a season's NBA schedule.
type BasketballSource interface {
	Schedules(ctx context.Context, season int) ([]domain.Day, error)
}

// BaseballSource resolves season boundaries and fetches games in a date window.
type BaseballSource interface {
	Season(ctx context.Context, year int) (domain.Season, bool, error)
	Schedule(ctx context.Context, window domain.Window) ([]domain.Day, error)
}

// SoccerSource fetches a season's match schedule.
type SoccerSource interface {
	Schedules(ctx context.Context, season int) ([]domain.Day, error)
}

// Service picks the season (and for baseball, the window) to show and delegates to providers.
type Service struct {
	clock      clockwork.Clock
	basketball BasketballSource
	baseball   BaseballSource
	soccer     SoccerSource
}

// NewService constructs a Service. A nil clock uses the real clock.
func NewService(clock clockwork.Clock, basketball BasketballSource, baseball BaseballSource, soccer SoccerSource) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		clock:      clock,
		basketball: basketball,
		baseball:   baseball,
		soccer:     soccer,
	}
}

// NBA returns the upcoming NBA season schedule. The season is named after the year it ends.
func (s *Service) NBA(ctx context.Context) ([]domain.Day, error) {
	return s.basketball.Schedules(ctx, s.now().Year()+1)
}

// MLB returns games around today, or the tail of the last season during the off-season.
func (s *Service) MLB(ctx context.Context) ([]domain.Day, error) {
	now := s.now()
	year := now.Year()

	current, ok, err := s.baseball.Season(ctx, year)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrapf(ErrSeasonUnknown, "season %d", year)
	}
	next, ok, err := s.baseball.Season(ctx, year+1)
	if err != nil {
		return nil, err
	}
	nextStart := next.Start
	if !ok {
		nextStart = time.Time{}
	}

	return s.baseball.Schedule(ctx, domain.SelectWindow(now, current.End, nextStart))
}

// Soccer returns the current football season's matches.
func (s *Service) Soccer(ctx context.Context) ([]domain.Day, error) {
	return s.soccer.Schedules(ctx, s.now().Year())
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC()
}
