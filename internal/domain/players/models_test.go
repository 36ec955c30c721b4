package players

import (
	"math"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestWeightedPointsTreatsMissingAsZero(t *testing.T) {
	got := WeightedPoints(floatPtr(1000), floatPtr(20), floatPtr(-50))
	want := 0.70*1000 + 0.20*20 + 0.10*-50
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %f, got %f", want, got)
	}
	if got := WeightedPoints(nil, nil, nil); got != 0 {
		t.Fatalf("expected 0 for missing inputs, got %f", got)
	}
	if got := WeightedPoints(floatPtr(10), nil, nil); math.Abs(got-7) > 1e-9 {
		t.Fatalf("expected 7, got %f", got)
	}
}

func TestRankSortsDescendingAndTruncates(t *testing.T) {
	list := make([]BasketballPlayer, 0, 40)
	for i := 0; i < 40; i++ {
		list = append(list, BasketballPlayer{
			PlayerID:      intPtr(i),
			FantasyPoints: floatPtr(float64((i * 37) % 41)),
			PER:           floatPtr(float64(i % 7)),
		})
	}
	list = append(list, BasketballPlayer{PlayerID: intPtr(99)})

	ranked := Rank(list, LeaderboardSize)

	if len(ranked) != LeaderboardSize {
		t.Fatalf("expected %d players, got %d", LeaderboardSize, len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].PlayerPoints > ranked[i-1].PlayerPoints {
			t.Fatalf("scores not non-increasing at %d: %f > %f", i, ranked[i].PlayerPoints, ranked[i-1].PlayerPoints)
		}
	}
	for _, p := range ranked {
		if want := WeightedPoints(p.FantasyPoints, p.PER, p.PlusMinus); p.PlayerPoints != want {
			t.Fatalf("player %d: score %f does not recompute to %f", *p.PlayerID, p.PlayerPoints, want)
		}
	}
}

func TestRankShortListKeepsEveryone(t *testing.T) {
	list := []BasketballPlayer{
		{PlayerID: intPtr(1), FantasyPoints: floatPtr(5)},
		{PlayerID: intPtr(2), FantasyPoints: floatPtr(50)},
	}

	ranked := Rank(list, LeaderboardSize)

	if len(ranked) != 2 || *ranked[0].PlayerID != 2 {
		t.Fatalf("unexpected ranking %+v", ranked)
	}
	if list[0].PlayerPoints != 0 {
		t.Fatal("expected input slice left untouched")
	}
}

func TestInterleaveAlternatesByParity(t *testing.T) {
	nl := []string{"n1", "n2", "n3"}
	al := []string{"a1", "a2", "a3"}

	got := Interleave(nl, al, AllStarSlots)

	want := []string{"n1", "a1", "n2", "a2", "n3", "a3"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestInterleaveCapsAtSlots(t *testing.T) {
	nl := make([]int, 30)
	al := make([]int, 30)
	for i := range nl {
		nl[i] = i
		al[i] = 100 + i
	}

	got := Interleave(nl, al, AllStarSlots)

	if len(got) != AllStarSlots {
		t.Fatalf("expected %d entries, got %d", AllStarSlots, len(got))
	}
	for i, v := range got {
		fromNL := v < 100
		if fromNL != (i%2 == 0) {
			t.Fatalf("index %d drew from wrong pool (%d)", i, v)
		}
	}
}

func TestInterleaveSkipsExhaustedPool(t *testing.T) {
	nl := []string{"n1", "n2"}
	al := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		al = append(al, "a")
	}

	got := Interleave(nl, al, AllStarSlots)

	// 2 from NL, and AL only ever fills its own 17 odd slots.
	if len(got) != 2+17 {
		t.Fatalf("expected 19 entries, got %d", len(got))
	}
	if got[0] != "n1" || got[1] != "a" || got[2] != "n2" || got[3] != "a" || got[4] != "a" {
		t.Fatalf("unexpected prefix %v", got[:5])
	}
}

func TestInterleaveEmptyPools(t *testing.T) {
	if got := Interleave[int](nil, nil, AllStarSlots); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
