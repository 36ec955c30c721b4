package standings

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	domain "github.com/preston-bernstein/sports-data-service/internal/domain/standings"
)

// BasketballSource fetches NBA conference standings.
type BasketballSource interface {
	Standings(ctx context.Context, season int) (domain.Conferences, error)
}

// BaseballSource fetches MLB league standings.
type BaseballSource interface {
	Standings(ctx context.Context, season int) (domain.Leagues, error)
}

// SoccerSource fetches a football competition table.
type SoccerSource interface {
	Standings(ctx context.Context, season int) ([]domain.SoccerTeam, error)
}

// Service resolves the season for each league and delegates to its provider.
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

func (s *Service) NBA(ctx context.Context) (domain.Conferences, error) {
	return s.basketball.Standings(ctx, s.now().Year()+1)
}

func (s *Service) MLB(ctx context.Context) (domain.Leagues, error) {
	return s.baseball.Standings(ctx, s.now().Year())
}

func (s *Service) Soccer(ctx context.Context) ([]domain.SoccerTeam, error) {
	return s.soccer.Standings(ctx, s.now().Year())
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC()
}
