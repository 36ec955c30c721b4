package players

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	domain "github.com/preston-bernstein/sports-data-service/internal/domain/players"
)

// BasketballSource fetches the NBA leaderboard.
type BasketballSource interface {
	Players(ctx context.Context, season int) ([]domain.BasketballPlayer, error)
}

// BaseballSource fetches the MLB all-star final vote.
type BaseballSource interface {
	AllStars(ctx context.Context, season int) ([]domain.AllStar, error)
}

// SoccerSource fetches a football competition's top scorers.
type SoccerSource interface {
	Scorers(ctx context.Context, season int) ([]domain.Scorer, error)
}

// Service resolves the season for each league's player listing.
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

// NBA returns the top players of the upcoming NBA season by weighted score.
func (s *Service) NBA(ctx context.Context) ([]domain.BasketballPlayer, error) {
	return s.basketball.Players(ctx, s.now().Year()+1)
}

// MLB returns the interleaved all-star final-vote candidates.
func (s *Service) MLB(ctx context.Context) ([]domain.AllStar, error) {
	return s.baseball.AllStars(ctx, s.now().Year())
}

// Soccer returns the season's top scorers.
func (s *Service) Soccer(ctx context.Context) ([]domain.Scorer, error) {
	return s.soccer.Scorers(ctx, s.now().Year())
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC()
}
