package standings

import "testing"

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestRecordFormatsWinsAndLosses(t *testing.T) {
	got := Record(intPtr(30), intPtr(12))
	if got == nil || *got != "30-12" {
		t.Fatalf("expected 30-12, got %v", got)
	}
	if Record(nil, intPtr(1)) != nil || Record(intPtr(1), nil) != nil {
		t.Fatal("expected nil record when a side is missing")
	}
}

func TestSortByWinPctDescendingWithMissingLast(t *testing.T) {
	teams := []BasketballTeam{
		{TeamKey: strPtr("A"), WinPct: floatPtr(0.4)},
		{TeamKey: strPtr("B")},
		{TeamKey: strPtr("C"), WinPct: floatPtr(0.75)},
		{TeamKey: strPtr("D"), WinPct: floatPtr(0.5)},
	}

	SortByWinPct(teams)

	want := []string{"C", "D", "A", "B"}
	for i, key := range want {
		if *teams[i].TeamKey != key {
			t.Fatalf("position %d: expected %s, got %s", i, key, *teams[i].TeamKey)
		}
	}
}

func TestSortByWinPctIsStableForTies(t *testing.T) {
	teams := []BasketballTeam{
		{TeamKey: strPtr("first"), WinPct: floatPtr(0.5)},
		{TeamKey: strPtr("second"), WinPct: floatPtr(0.5)},
	}
	SortByWinPct(teams)
	if *teams[0].TeamKey != "first" {
		t.Fatalf("expected stable order, got %s first", *teams[0].TeamKey)
	}
}

func TestSortByLeagueRankNumericAscending(t *testing.T) {
	teams := []BaseballTeam{
		{TeamID: 1, LeagueRank: strPtr("10")},
		{TeamID: 2, LeagueRank: strPtr("2")},
		{TeamID: 3},
		{TeamID: 4, LeagueRank: strPtr("1")},
		{TeamID: 5, LeagueRank: strPtr("n/a")},
	}

	SortByLeagueRank(teams)

	want := []int{4, 2, 1, 3, 5}
	for i, id := range want {
		if teams[i].TeamID != id {
			t.Fatalf("position %d: expected team %d, got %d", i, id, teams[i].TeamID)
		}
	}
}
