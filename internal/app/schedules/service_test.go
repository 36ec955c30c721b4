package schedules

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"

	domain "github.com/preston-bernstein/sports-data-service/internal/domain/schedules"
)

type stubSeasonal struct {
	seasons map[int]domain.Season
	err     error

	seasonCalls []int
	seasonArg   int
	window      domain.Window
}

func (s *stubSeasonal) Schedules(ctx context.Context, season int) ([]domain.Day, error) {
	s.seasonArg = season
	return []domain.Day{}, s.err
}

func (s *stubSeasonal) Season(ctx context.Context, year int) (domain.Season, bool, error) {
	s.seasonCalls = append(s.seasonCalls, year)
	if s.err != nil {
		return domain.Season{}, false, s.err
	}
	season, ok := s.seasons[year]
	return season, ok, nil
}

func (s *stubSeasonal) Schedule(ctx context.Context, window domain.Window) ([]domain.Day, error) {
	s.window = window
	return []domain.Day{}, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNBAUsesNextYearAsSeason(t *testing.T) {
	nba := &stubSeasonal{}
	svc := NewService(clockwork.NewFakeClockAt(day(2024, time.November, 3)), nba, nil, nil)

	if _, err := svc.NBA(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if nba.seasonArg != 2025 {
		t.Fatalf("expected season 2025, got %d", nba.seasonArg)
	}
}

func TestSoccerUsesCurrentYear(t *testing.T) {
	soccer := &stubSeasonal{}
	svc := NewService(clockwork.NewFakeClockAt(day(2024, time.November, 3)), nil, nil, soccer)

	if _, err := svc.Soccer(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if soccer.seasonArg != 2024 {
		t.Fatalf("expected season 2024, got %d", soccer.seasonArg)
	}
}

func TestMLBDuringSeasonCentersOnToday(t *testing.T) {
	mlb := &stubSeasonal{seasons: map[int]domain.Season{
		2024: {Start: day(2024, time.February, 22), End: day(2024, time.October, 30)},
	}}
	svc := NewService(clockwork.NewFakeClockAt(day(2024, time.July, 15)), nil, mlb, nil)

	if _, err := svc.MLB(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mlb.seasonCalls) != 2 || mlb.seasonCalls[0] != 2024 || mlb.seasonCalls[1] != 2025 {
		t.Fatalf("expected current and next season lookups, got %v", mlb.seasonCalls)
	}
	if !mlb.window.Start.Equal(day(2024, time.July, 5)) || !mlb.window.End.Equal(day(2024, time.July, 25)) {
		t.Fatalf("unexpected window %+v", mlb.window)
	}
}

func TestMLBOffSeasonShowsTailOfLastSeason(t *testing.T) {
	mlb := &stubSeasonal{seasons: map[int]domain.Season{
		2024: {Start: day(2024, time.February, 22), End: day(2024, time.October, 30)},
		2025: {Start: day(2025, time.February, 20), End: day(2025, time.September, 28)},
	}}
	svc := NewService(clockwork.NewFakeClockAt(day(2024, time.December, 1)), nil, mlb, nil)

	if _, err := svc.MLB(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !mlb.window.Start.Equal(day(2024, time.October, 20)) || !mlb.window.End.Equal(day(2024, time.October, 30)) {
		t.Fatalf("unexpected window %+v", mlb.window)
	}
}

func TestMLBUnlistedNextSeasonCountsAsNotStarted(t *testing.T) {
	mlb := &stubSeasonal{seasons: map[int]domain.Season{
		2024: {Start: day(2024, time.February, 22), End: day(2024, time.October, 30)},
	}}
	svc := NewService(clockwork.NewFakeClockAt(day(2024, time.November, 15)), nil, mlb, nil)

	if _, err := svc.MLB(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !mlb.window.End.Equal(day(2024, time.October, 30)) {
		t.Fatalf("expected off-season window, got %+v", mlb.window)
	}
}

func TestMLBUnknownCurrentSeasonFails(t *testing.T) {
	mlb := &stubSeasonal{seasons: map[int]domain.Season{}}
	svc := NewService(clockwork.NewFakeClockAt(day(2024, time.July, 1)), nil, mlb, nil)

	if _, err := svc.MLB(context.Background()); !errors.Is(err, ErrSeasonUnknown) {
		t.Fatalf("expected ErrSeasonUnknown, got %v", err)
	}
}

func TestMLBSeasonLookupErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	mlb := &stubSeasonal{err: boom}
	svc := NewService(clockwork.NewFakeClockAt(day(2024, time.July, 1)), nil, mlb, nil)

	if _, err := svc.MLB(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}
