package schedules

import "sort"

// SeriesRecord is the win/loss record a baseball provider attaches to each side of a game.
type SeriesRecord struct {
	Wins   *int    `json:"wins"`
	Losses *int    `json:"losses"`
	Pct    *string `json:"pct"`
}

// Game is the canonical game shape exposed by every schedule endpoint.
// Team fields are flattened (homeTeam_name, homeTeam_id, ...) to match the front-end contract.
// League-specific extras are omitted when a provider does not supply them.
type Game struct {
	GameID     GameID  `json:"gameId"`
	GameDate   *string `json:"gameDate"`
	GamePK     *int    `json:"gamepk,omitempty"`
	GameStatus *string `json:"gameStatus"`
	GameLabel  *string `json:"gameLabel"`

	HomeTeamName         *string       `json:"homeTeam_name"`
	HomeTeamID           *int          `json:"homeTeam_id"`
	HomeTeamCrest        *string       `json:"homeTeam_crest,omitempty"`
	HomeTeamScore        *int          `json:"homeTeam_score"`
	HomeTeamSeriesRecord *SeriesRecord `json:"homeTeam_seriesRecord,omitempty"`

	AwayTeamName         *string       `json:"awayTeam_name"`
	AwayTeamID           *int          `json:"awayTeam_id"`
	AwayTeamCrest        *string       `json:"awayTeam_crest,omitempty"`
	AwayTeamScore        *int          `json:"awayTeam_score"`
	AwayTeamSeriesRecord *SeriesRecord `json:"awayTeam_seriesRecord,omitempty"`

	GameTimeUTC *string `json:"gameTimeUTC"`
}

// Day groups every game played on one date.
type Day struct {
	Date      *string `json:"date"`
	GamesList []Game  `json:"gamesList"`
}

// GroupConsecutive buckets adjacent games sharing a gameDate, preserving first-seen order.
// Input is expected to be date-sorted already; a date that reappears later starts a new bucket.
func GroupConsecutive(games []Game) []Day {
	days := make([]Day, 0)
	for _, g := range games {
		if n := len(days); n > 0 && sameDate(days[n-1].Date, g.GameDate) {
			days[n-1].GamesList = append(days[n-1].GamesList, g)
			continue
		}
		days = append(days, Day{Date: g.GameDate, GamesList: []Game{g}})
	}
	return days
}

// SortByDate orders days ascending by date. Days without a date sort first, matching string order of "".
func SortByDate(days []Day) {
	sort.SliceStable(days, func(i, j int) bool {
		return deref(days[i].Date) < deref(days[j].Date)
	})
}

func sameDate(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
