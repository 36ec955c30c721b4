package footballdata

import (
	"testing"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/sports-data-service/internal/providers"
)

func strPtr(v string) *string { return &v }

func TestStageLabel(t *testing.T) {
	title := cases.Title(language.English)
	labels := map[string]string{
		"REGULAR_SEASON": "Regular Season",
		"LAST_16":        "Last 16",
		"FINAL":          "Final",
		"GROUP_STAGE":    "Group Stage",
	}
	for in, want := range labels {
		if got := stageLabel(in, title); got != want {
			t.Fatalf("stageLabel(%q) expected %q, got %q", in, want, got)
		}
	}
}

func TestMapMatchRequiresNestedObjects(t *testing.T) {
	base := match{
		Stage:    strPtr("REGULAR_SEASON"),
		UTCDate:  strPtr("2024-05-19T15:00:00Z"),
		HomeTeam: &team{},
		AwayTeam: &team{},
		Score:    &score{FullTime: &goals{}},
	}
	if _, err := mapMatches([]match{base}); err != nil {
		t.Fatalf("expected complete match to map, got %v", err)
	}

	noScore := base
	noScore.Score = &score{}
	if _, err := mapMatches([]match{noScore}); !errors.Is(err, providers.ErrMissingField) {
		t.Fatalf("expected missing fullTime to fail, got %v", err)
	}

	dateOnly := base
	dateOnly.UTCDate = strPtr("2024-05-19")
	if _, err := mapMatches([]match{dateOnly}); !errors.Is(err, providers.ErrMissingField) {
		t.Fatalf("expected utcDate without a time to fail, got %v", err)
	}

	noHome := base
	noHome.HomeTeam = nil
	if _, err := mapMatches([]match{noHome}); !errors.Is(err, providers.ErrMissingField) {
		t.Fatalf("expected missing homeTeam to fail, got %v", err)
	}
}

func TestMapScorersKeepsNilName(t *testing.T) {
	got, err := mapScorers([]scorer{{Player: &player{}, Team: &team{}}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got[0].PlayerName != nil {
		t.Fatal("expected nil name to stay nil")
	}
	if _, err := mapScorers([]scorer{{Player: &player{}}}); !errors.Is(err, providers.ErrMissingField) {
		t.Fatalf("expected missing team to fail, got %v", err)
	}
}
