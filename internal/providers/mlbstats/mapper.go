package mlbstats

import (
	"github.com/preston-bernstein/sports-data-service/internal/domain/players"
	"github.com/preston-bernstein/sports-data-service/internal/domain/schedules"
	"github.com/preston-bernstein/sports-data-service/internal/domain/standings"
	"github.com/preston-bernstein/sports-data-service/internal/providers"
	"github.com/preston-bernstein/sports-data-service/internal/timeutil"
)

const (
	americanLeagueName = "American League"
	nationalLeagueName = "National League"

	overallHome  = "home"
	overallAway  = "away"
	splitLastTen = "lastTen"
)

func mapSeason(info seasonInfo) (schedules.Season, error) {
	start, err := timeutil.ParseDate(info.SeasonStartDate)
	if err != nil {
		return schedules.Season{}, providers.MissingField(providerName, "seasonStartDate")
	}
	end, err := timeutil.ParseDate(info.SeasonEndDate)
	if err != nil {
		return schedules.Season{}, providers.MissingField(providerName, "seasonEndDate")
	}
	return schedules.Season{ID: info.SeasonID, Start: start, End: end}, nil
}

func mapSchedule(resp scheduleResponse) ([]schedules.Day, error) {
	days := make([]schedules.Day, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		games := make([]schedules.Game, 0, len(d.Games))
		for _, g := range d.Games {
			mapped, err := mapGame(g)
			if err != nil {
				return nil, err
			}
			games = append(games, mapped)
		}
		days = append(days, schedules.Day{Date: d.Date, GamesList: games})
	}
	schedules.SortByDate(days)
	return days, nil
}

func mapGame(g scheduleGame) (schedules.Game, error) {
	if g.Status == nil {
		return schedules.Game{}, providers.MissingField(providerName, "status")
	}
	if g.Teams == nil || g.Teams.Home == nil || g.Teams.Away == nil {
		return schedules.Game{}, providers.MissingField(providerName, "teams")
	}
	home, away := g.Teams.Home, g.Teams.Away
	if home.Team == nil || away.Team == nil {
		return schedules.Game{}, providers.MissingField(providerName, "teams.team")
	}

	return schedules.Game{
		GameID:               schedules.StringID(g.GameGUID),
		GameDate:             g.GameDate,
		GamePK:               g.GamePK,
		GameStatus:           g.Status.DetailedState,
		GameLabel:            g.SeriesDescription,
		HomeTeamName:         home.Team.Name,
		HomeTeamID:           home.Team.ID,
		HomeTeamScore:        home.Score,
		HomeTeamSeriesRecord: seriesRecord(home.LeagueRecord),
		AwayTeamName:         away.Team.Name,
		AwayTeamID:           away.Team.ID,
		AwayTeamScore:        away.Score,
		AwayTeamSeriesRecord: seriesRecord(away.LeagueRecord),
		GameTimeUTC:          timeOf(g.GameDate),
	}, nil
}

func seriesRecord(r *leagueRecord) *schedules.SeriesRecord {
	if r == nil {
		return nil
	}
	return &schedules.SeriesRecord{Wins: r.Wins, Losses: r.Losses, Pct: r.Pct}
}

func timeOf(stamp *string) *string {
	if stamp == nil {
		return nil
	}
	_, clock, ok := timeutil.SplitTimestamp(*stamp)
	if !ok {
		return nil
	}
	return &clock
}

// mapStandings joins every team to its standings record through its division.
func mapStandings(teams []team, resp standingsResponse) (standings.Leagues, error) {
	divisions := make(map[int]map[int]teamRecord, len(resp.Records))
	for _, div := range resp.Records {
		if div.Division == nil || div.Division.ID == nil {
			continue
		}
		byTeam := divisions[*div.Division.ID]
		if byTeam == nil {
			byTeam = make(map[int]teamRecord, len(div.TeamRecords))
			divisions[*div.Division.ID] = byTeam
		}
		for _, rec := range div.TeamRecords {
			if rec.Team == nil || rec.Team.ID == nil {
				continue
			}
			byTeam[*rec.Team.ID] = rec
		}
	}

	out := standings.Leagues{
		American: make([]standings.BaseballTeam, 0),
		National: make([]standings.BaseballTeam, 0),
	}
	for _, t := range teams {
		if t.League == nil {
			return standings.Leagues{}, providers.MissingField(providerName, "team.league")
		}
		row := standings.BaseballTeam{
			TeamName: t.Name,
			ClubName: t.ClubName,
			TeamID:   t.ID,
			Season:   t.Season,
			LeagueID: t.League.ID,
		}
		if t.League.Name != nil {
			row.LeagueName = *t.League.Name
		}
		if t.Division != nil {
			row.DivisionName = t.Division.Name
			row.DivisionID = t.Division.ID
			if t.Division.ID != nil {
				if rec, ok := divisions[*t.Division.ID][t.ID]; ok {
					applyRecord(&row, rec)
				}
			}
		}

		switch row.LeagueName {
		case americanLeagueName:
			out.American = append(out.American, row)
		case nationalLeagueName:
			out.National = append(out.National, row)
		}
	}

	standings.SortByLeagueRank(out.American)
	standings.SortByLeagueRank(out.National)
	return out, nil
}

func applyRecord(row *standings.BaseballTeam, rec teamRecord) {
	row.LeagueRank = rec.LeagueRank
	row.ConferenceGamesBack = rec.LeagueGamesBack
	if rec.LeagueRecord != nil {
		row.Wins = rec.LeagueRecord.Wins
		row.Losses = rec.LeagueRecord.Losses
		row.Ties = rec.LeagueRecord.Ties
		row.WinPct = rec.LeagueRecord.Pct
	}
	if rec.Streak != nil {
		row.CurrentStreak = rec.Streak.StreakCode
	}
	if rec.Records == nil {
		return
	}
	for _, lr := range rec.Records.LeagueRecords {
		if lr.League == nil || lr.League.ID == nil {
			continue
		}
		switch *lr.League.ID {
		case americanLeagueID:
			row.AmericanLeagueRecord = standings.Record(lr.Wins, lr.Losses)
		case nationalLeagueID:
			row.NationalLeagueRecord = standings.Record(lr.Wins, lr.Losses)
		}
	}
	for _, ovr := range rec.Records.OverallRecords {
		switch ovr.Type {
		case overallHome:
			row.Home = standings.Record(ovr.Wins, ovr.Losses)
		case overallAway:
			row.Road = standings.Record(ovr.Wins, ovr.Losses)
		}
	}
	for _, sr := range rec.Records.SplitRecords {
		if sr.Type == splitLastTen {
			row.LastTen = standings.Record(sr.Wins, sr.Losses)
		}
	}
}

// allStarIndex resolves a player's current team from the season rosters.
type allStarIndex struct {
	teamOf map[int]int
	teams  map[int]team
}

func newAllStarIndex(people []person, teams []team) allStarIndex {
	idx := allStarIndex{
		teamOf: make(map[int]int, len(people)),
		teams:  make(map[int]team, len(teams)),
	}
	for _, p := range people {
		if _, seen := idx.teamOf[p.ID]; seen {
			continue
		}
		if p.CurrentTeam != nil && p.CurrentTeam.ID != nil {
			idx.teamOf[p.ID] = *p.CurrentTeam.ID
		}
	}
	for _, t := range teams {
		if _, seen := idx.teams[t.ID]; !seen {
			idx.teams[t.ID] = t
		}
	}
	return idx
}

func (idx allStarIndex) mapCandidates(list []allStarCandidate) ([]players.AllStar, error) {
	out := make([]players.AllStar, 0, len(list))
	for _, c := range list {
		if c.PrimaryPosition == nil {
			return nil, providers.MissingField(providerName, "primaryPosition")
		}
		star := players.AllStar{
			PlayerName:      c.FullName,
			PlayerID:        c.ID,
			PlayerPosition:  c.PrimaryPosition.Name,
			PlayerBatSide:   c.BatSide,
			PlayerPitchHand: c.PitchHand,
		}
		if teamID, ok := idx.teamOf[c.ID]; ok {
			id := teamID
			star.TeamID = &id
			if t, ok := idx.teams[teamID]; ok {
				star.TeamName = t.Name
				star.TeamClubName = t.ClubName
			}
		}
		out = append(out, star)
	}
	return out, nil
}

func mapAllStars(people []person, teams []team, american, national []allStarCandidate) ([]players.AllStar, error) {
	idx := newAllStarIndex(people, teams)
	nl, err := idx.mapCandidates(national)
	if err != nil {
		return nil, err
	}
	al, err := idx.mapCandidates(american)
	if err != nil {
		return nil, err
	}
	return players.Interleave(nl, al, players.AllStarSlots), nil
}
