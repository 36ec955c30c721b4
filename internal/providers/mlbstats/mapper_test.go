package mlbstats

import (
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/sports-data-service/internal/domain/players"
	"github.com/preston-bernstein/sports-data-service/internal/providers"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestMapAllStarsLengthFollowsPools(t *testing.T) {
	national := make([]allStarCandidate, 0, 20)
	for i := 0; i < 20; i++ {
		national = append(national, allStarCandidate{ID: i, PrimaryPosition: &position{Name: strPtr("P")}})
	}
	american := []allStarCandidate{
		{ID: 100, PrimaryPosition: &position{Name: strPtr("C")}},
		{ID: 101, PrimaryPosition: &position{Name: strPtr("1B")}},
		{ID: 102, PrimaryPosition: &position{Name: strPtr("2B")}},
	}

	got, err := mapAllStars(nil, nil, american, national)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// min(17, 20) + min(17, 3)
	if len(got) != 20 {
		t.Fatalf("expected 20 entries, got %d", len(got))
	}
	if len(got) > players.AllStarSlots {
		t.Fatal("interleave overflowed slots")
	}
	if got[0].PlayerID != 0 || got[1].PlayerID != 100 || got[6].PlayerID != 3 || got[7].PlayerID != 4 {
		t.Fatalf("unexpected order %d %d %d %d", got[0].PlayerID, got[1].PlayerID, got[6].PlayerID, got[7].PlayerID)
	}
}

func TestMapStandingsRequiresLeague(t *testing.T) {
	_, err := mapStandings([]team{{ID: 1}}, standingsResponse{})
	if !errors.Is(err, providers.ErrMissingField) {
		t.Fatalf("expected missing field error, got %v", err)
	}
}

func TestMapStandingsUnrankedTeamsGoLast(t *testing.T) {
	al := &ref{ID: intPtr(americanLeagueID), Name: strPtr(americanLeagueName)}
	div := &ref{ID: intPtr(201)}
	teams := []team{{ID: 1, League: al, Division: div}, {ID: 2, League: al, Division: div}, {ID: 3, League: al, Division: div}}
	resp := standingsResponse{Records: []divisionRecord{{
		Division: div,
		TeamRecords: []teamRecord{
			{Team: &ref{ID: intPtr(1)}, LeagueRank: strPtr("-")},
			{Team: &ref{ID: intPtr(2)}, LeagueRank: strPtr("10")},
			{Team: &ref{ID: intPtr(3)}, LeagueRank: strPtr("9")},
		},
	}}}

	got, err := mapStandings(teams, resp)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.American[0].TeamID != 3 || got.American[1].TeamID != 2 || got.American[2].TeamID != 1 {
		t.Fatalf("unexpected order %+v", got.American)
	}
	if len(got.National) != 0 || got.National == nil {
		t.Fatal("expected empty national bucket")
	}
}

func TestTimeOf(t *testing.T) {
	if got := timeOf(strPtr("2024-04-01T17:10:00Z")); got == nil || *got != "17:10:00" {
		t.Fatalf("unexpected time %v", got)
	}
	if timeOf(strPtr("2024-04-01")) != nil || timeOf(nil) != nil {
		t.Fatal("expected nil time without a time part")
	}
}
