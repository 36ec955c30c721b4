package footballdata

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/sports-data-service/internal/domain/players"
	"github.com/preston-bernstein/sports-data-service/internal/domain/schedules"
	"github.com/preston-bernstein/sports-data-service/internal/domain/standings"
	"github.com/preston-bernstein/sports-data-service/internal/providers"
	"github.com/preston-bernstein/sports-data-service/internal/timeutil"
)

func mapMatches(matches []match) ([]schedules.Day, error) {
	// cases.Caser keeps state, so one per call.
	title := cases.Title(language.English)
	games := make([]schedules.Game, 0, len(matches))
	for _, m := range matches {
		g, err := mapMatch(m, title)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return schedules.GroupConsecutive(games), nil
}

func mapMatch(m match, title cases.Caser) (schedules.Game, error) {
	switch {
	case m.Stage == nil:
		return schedules.Game{}, providers.MissingField(providerName, "stage")
	case m.UTCDate == nil:
		return schedules.Game{}, providers.MissingField(providerName, "utcDate")
	case m.HomeTeam == nil:
		return schedules.Game{}, providers.MissingField(providerName, "homeTeam")
	case m.AwayTeam == nil:
		return schedules.Game{}, providers.MissingField(providerName, "awayTeam")
	case m.Score == nil || m.Score.FullTime == nil:
		return schedules.Game{}, providers.MissingField(providerName, "score.fullTime")
	}

	date, clock, ok := timeutil.SplitTimestamp(*m.UTCDate)
	if !ok {
		return schedules.Game{}, providers.MissingField(providerName, "utcDate")
	}
	label := stageLabel(*m.Stage, title)

	return schedules.Game{
		GameID:        schedules.IntID(m.ID),
		GameDate:      &date,
		GameStatus:    m.Status,
		GameLabel:     &label,
		HomeTeamName:  m.HomeTeam.ShortName,
		HomeTeamID:    m.HomeTeam.ID,
		HomeTeamCrest: m.HomeTeam.Crest,
		HomeTeamScore: m.Score.FullTime.Home,
		AwayTeamName:  m.AwayTeam.ShortName,
		AwayTeamID:    m.AwayTeam.ID,
		AwayTeamCrest: m.AwayTeam.Crest,
		AwayTeamScore: m.Score.FullTime.Away,
		GameTimeUTC:   &clock,
	}, nil
}

// stageLabel turns REGULAR_SEASON into "Regular Season".
func stageLabel(stage string, title cases.Caser) string {
	return title.String(strings.Join(strings.Split(stage, "_"), " "))
}

func mapStandings(resp standingsResponse) ([]standings.SoccerTeam, error) {
	switch {
	case resp.Competition == nil:
		return nil, providers.MissingField(providerName, "competition")
	case resp.Filters == nil:
		return nil, providers.MissingField(providerName, "filters")
	case len(resp.Standings) == 0:
		return nil, providers.MissingField(providerName, "standings")
	}

	table := resp.Standings[0].Table
	out := make([]standings.SoccerTeam, 0, len(table))
	for _, row := range table {
		if row.Team == nil {
			return nil, providers.MissingField(providerName, "standings.table.team")
		}
		out = append(out, standings.SoccerTeam{
			TeamName:       row.Team.Name,
			TeamClubName:   row.Team.ShortName,
			TeamID:         row.Team.ID,
			TeamCrest:      row.Team.Crest,
			Ties:           row.Draw,
			Wins:           row.Won,
			Losses:         row.Lost,
			LeagueRank:     row.Position,
			LastFive:       row.Form,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
			GoalsTotal:     row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			LeagueName:     resp.Competition.Name,
			LeagueID:       resp.Competition.ID,
			LeagueCrest:    resp.Competition.Emblem,
			Season:         resp.Filters.Season,
		})
	}
	return out, nil
}

func mapScorers(list []scorer) ([]players.Scorer, error) {
	out := make([]players.Scorer, 0, len(list))
	for _, s := range list {
		if s.Player == nil {
			return nil, providers.MissingField(providerName, "scorers.player")
		}
		if s.Team == nil {
			return nil, providers.MissingField(providerName, "scorers.team")
		}
		out = append(out, players.Scorer{
			PlayerName:     trimmed(s.Player.Name),
			PlayerID:       s.Player.ID,
			PlayerPosition: s.Player.Section,
			TeamName:       s.Team.Name,
			TeamClubName:   s.Team.ShortName,
			TeamID:         s.Team.ID,
			TeamCrest:      s.Team.Crest,
		})
	}
	return out, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
