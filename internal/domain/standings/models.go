package standings

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// BasketballTeam is one row of the NBA conference standings.
type BasketballTeam struct {
	TeamID              *int     `json:"team_id"`
	TeamName            *string  `json:"team_name"`
	TeamCity            *string  `json:"team_city"`
	TeamKey             *string  `json:"team_key"`
	TeamLogo            *string  `json:"team_logo"`
	Wins                *int     `json:"wins"`
	Losses              *int     `json:"losses"`
	WinPct              *float64 `json:"winpct"`
	Home                *string  `json:"home"`
	Road                *string  `json:"road"`
	LastTen             *string  `json:"lastTen"`
	Conference          string   `json:"conference"`
	ConferenceGamesBack *float64 `json:"conferenceGamesBack"`
	ConferenceRecord    *string  `json:"conferenceRecord"`
	CurrentStreak       *string  `json:"currentStreak"`
}

// Conferences buckets NBA standings into east and west.
type Conferences struct {
	East []BasketballTeam `json:"east"`
	West []BasketballTeam `json:"west"`
}

// BaseballTeam is one row of the MLB league standings.
type BaseballTeam struct {
	TeamName             *string `json:"team_name"`
	ClubName             *string `json:"club_name"`
	TeamID               int     `json:"team_id"`
	Season               *int    `json:"season"`
	LeagueName           string  `json:"league_name"`
	LeagueID             *int    `json:"league_id"`
	DivisionName         *string `json:"division_name"`
	DivisionID           *int    `json:"division_id"`
	LeagueRank           *string `json:"league_rank"`
	ConferenceGamesBack  *string `json:"conferenceGamesBack"`
	Wins                 *int    `json:"wins"`
	Losses               *int    `json:"losses"`
	Ties                 *int    `json:"ties"`
	WinPct               *string `json:"winpct"`
	CurrentStreak        *string `json:"currentStreak"`
	AmericanLeagueRecord *string `json:"americanLeagueRecord"`
	NationalLeagueRecord *string `json:"nationalLeagueRecord"`
	Home                 *string `json:"home"`
	Road                 *string `json:"road"`
	LastTen              *string `json:"lastTen"`
}

// Leagues buckets MLB standings into the American and National leagues.
type Leagues struct {
	American []BaseballTeam `json:"american_league"`
	National []BaseballTeam `json:"national_league"`
}

// SoccerTeam is one row of a football competition table.
// WinPct is never populated: the upstream table has no such column.
type SoccerTeam struct {
	TeamName       *string  `json:"team_name"`
	TeamClubName   *string  `json:"team_clubname"`
	TeamID         *int     `json:"team_id"`
	TeamCrest      *string  `json:"team_crest"`
	Ties           *int     `json:"ties"`
	Wins           *int     `json:"wins"`
	Losses         *int     `json:"losses"`
	LeagueRank     *int     `json:"league_rank"`
	WinPct         *float64 `json:"winpct"`
	LastFive       *string  `json:"last_five"`
	GoalDifference *int     `json:"goal_difference"`
	Points         *int     `json:"points"`
	GoalsTotal     *int     `json:"goals_total"`
	GoalsAgainst   *int     `json:"goals_against"`
	LeagueName     *string  `json:"league_name"`
	LeagueID       *int     `json:"league_id"`
	LeagueCrest    *string  `json:"league_crest"`
	Season         *string  `json:"season"`
}

// Record renders a "W-L" string, or nil when either side is unknown.
func Record(wins, losses *int) *string {
	if wins == nil || losses == nil {
		return nil
	}
	s := fmt.Sprintf("%d-%d", *wins, *losses)
	return &s
}

// SortByWinPct orders teams by win percentage, best first. Teams without a percentage go last.
func SortByWinPct(teams []BasketballTeam) {
	sort.SliceStable(teams, func(i, j int) bool {
		a, b := teams[i].WinPct, teams[j].WinPct
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a > *b
	})
}

// SortByLeagueRank orders teams by numeric league rank ascending. Unranked teams go last.
func SortByLeagueRank(teams []BaseballTeam) {
	sort.SliceStable(teams, func(i, j int) bool {
		a, okA := rankOf(teams[i])
		b, okB := rankOf(teams[j])
		if !okA || !okB {
			return okA && !okB
		}
		return a < b
	})
}

func rankOf(t BaseballTeam) (int, bool) {
	if t.LeagueRank == nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(*t.LeagueRank))
	if err != nil {
		return 0, false
	}
	return n, true
}
