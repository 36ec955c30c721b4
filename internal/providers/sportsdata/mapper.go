package sportsdata

import (
	"strings"

	"github.com/preston-bernstein/sports-data-service/internal/domain/players"
	"github.com/preston-bernstein/sports-data-service/internal/domain/schedules"
	"github.com/preston-bernstein/sports-data-service/internal/domain/standings"
	"github.com/preston-bernstein/sports-data-service/internal/providers"
)

const easternConference = "eastern"

func mapSchedule(games []scheduleGame) []schedules.Day {
	mapped := make([]schedules.Game, 0, len(games))
	for _, g := range games {
		mapped = append(mapped, mapGame(g))
	}
	return schedules.GroupConsecutive(mapped)
}

func mapGame(g scheduleGame) schedules.Game {
	return schedules.Game{
		GameID:        schedules.IntID(g.GameID),
		GameDate:      g.Day,
		GameStatus:    g.Status,
		GameLabel:     nonEmpty(g.GameLabel),
		HomeTeamName:  g.HomeTeam,
		HomeTeamID:    g.HomeTeamID,
		HomeTeamScore: g.HomeTeamScore,
		AwayTeamName:  g.AwayTeam,
		AwayTeamID:    g.AwayTeamID,
		AwayTeamScore: g.AwayTeamScore,
		GameTimeUTC:   g.DateTimeUTC,
	}
}

func mapStandings(teams []team, rows []standing) (standings.Conferences, error) {
	logos := make(map[int]*string, len(teams))
	for _, t := range teams {
		logos[t.TeamID] = t.WikipediaLogoURL
	}

	out := standings.Conferences{
		East: make([]standings.BasketballTeam, 0),
		West: make([]standings.BasketballTeam, 0),
	}
	for _, row := range rows {
		if row.Conference == nil {
			return standings.Conferences{}, providers.MissingField(providerName, "Conference")
		}
		conference := strings.ToLower(*row.Conference)
		mapped := standings.BasketballTeam{
			TeamID:              row.TeamID,
			TeamName:            row.Name,
			TeamCity:            row.City,
			TeamKey:             row.Key,
			Wins:                row.Wins,
			Losses:              row.Losses,
			WinPct:              row.Percentage,
			Home:                standings.Record(row.HomeWins, row.HomeLosses),
			Road:                standings.Record(row.AwayWins, row.AwayLosses),
			LastTen:             standings.Record(row.LastTenWins, row.LastTenLosses),
			Conference:          conference,
			ConferenceGamesBack: row.GamesBack,
			ConferenceRecord:    standings.Record(row.ConferenceWins, row.ConferenceLosses),
			CurrentStreak:       row.StreakDescription,
		}
		if row.TeamID != nil {
			mapped.TeamLogo = logos[*row.TeamID]
		}
		if conference == easternConference {
			out.East = append(out.East, mapped)
		} else {
			out.West = append(out.West, mapped)
		}
	}

	standings.SortByWinPct(out.East)
	standings.SortByWinPct(out.West)
	return out, nil
}

func mapPlayers(teams []team, rows []playerSeason) []players.BasketballPlayer {
	list := make([]players.BasketballPlayer, 0, len(rows))
	for _, p := range rows {
		list = append(list, players.BasketballPlayer{
			PlayerID:       p.PlayerID,
			PlayerName:     p.Name,
			PlayerPosition: p.Position,
			TeamID:         p.TeamID,
			TeamKey:        p.Team,
			FantasyPoints:  p.FantasyPoints,
			Rebounds:       p.Rebounds,
			Assists:        p.Assists,
			Steals:         p.Steals,
			Points:         p.Points,
			PER:            p.PlayerEfficiencyRating,
			PlusMinus:      p.PlusMinus,
		})
	}

	ranked := players.Rank(list, players.LeaderboardSize)

	byKey := make(map[string]team, len(teams))
	for _, t := range teams {
		if t.Key != nil {
			byKey[*t.Key] = t
		}
	}
	for i := range ranked {
		if ranked[i].TeamKey == nil {
			continue
		}
		if t, ok := byKey[*ranked[i].TeamKey]; ok {
			ranked[i].TeamName = t.Name
			ranked[i].TeamCity = t.City
			ranked[i].TeamLogo = t.WikipediaLogoURL
		}
	}
	return ranked
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
