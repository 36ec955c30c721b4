package mlbstats

import "github.com/preston-bernstein/sports-data-service/internal/domain/players"

const providerName = "mlbstats"

// League ids used by the MLB Stats API.
const (
	americanLeagueID = 103
	nationalLeagueID = 104
)

type seasonsResponse struct {
	Seasons []seasonInfo `json:"seasons"`
}

type seasonInfo struct {
	SeasonID        string `json:"seasonId"`
	SeasonStartDate string `json:"seasonStartDate"`
	SeasonEndDate   string `json:"seasonEndDate"`
}

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  *string        `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GameGUID          *string     `json:"gameGuid"`
	GamePK            *int        `json:"gamePk"`
	GameDate          *string     `json:"gameDate"`
	Status            *gameStatus `json:"status"`
	SeriesDescription *string     `json:"seriesDescription"`
	Teams             *gameTeams  `json:"teams"`
}

type gameStatus struct {
	DetailedState *string `json:"detailedState"`
}

type gameTeams struct {
	Home *gameSide `json:"home"`
	Away *gameSide `json:"away"`
}

type gameSide struct {
	Team         *ref          `json:"team"`
	Score        *int          `json:"score"`
	LeagueRecord *leagueRecord `json:"leagueRecord"`
}

type ref struct {
	ID   *int    `json:"id"`
	Name *string `json:"name"`
}

type leagueRecord struct {
	Wins   *int    `json:"wins"`
	Losses *int    `json:"losses"`
	Ties   *int    `json:"ties"`
	Pct    *string `json:"pct"`
}

type standingsResponse struct {
	Records []divisionRecord `json:"records"`
}

type divisionRecord struct {
	Division    *ref         `json:"division"`
	TeamRecords []teamRecord `json:"teamRecords"`
}

type teamRecord struct {
	Team            *ref          `json:"team"`
	LeagueRank      *string       `json:"leagueRank"`
	LeagueGamesBack *string       `json:"leagueGamesBack"`
	LeagueRecord    *leagueRecord `json:"leagueRecord"`
	Streak          *streak       `json:"streak"`
	Records         *splitRecords `json:"records"`
}

type streak struct {
	StreakCode *string `json:"streakCode"`
}

type splitRecords struct {
	LeagueRecords  []leagueSplit `json:"leagueRecords"`
	OverallRecords []typedSplit  `json:"overallRecords"`
	SplitRecords   []typedSplit  `json:"splitRecords"`
}

type leagueSplit struct {
	League *ref `json:"league"`
	Wins   *int `json:"wins"`
	Losses *int `json:"losses"`
}

type typedSplit struct {
	Type   string `json:"type"`
	Wins   *int   `json:"wins"`
	Losses *int   `json:"losses"`
}

type teamsResponse struct {
	Teams []team `json:"teams"`
}

type team struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	ClubName *string `json:"clubName"`
	Season   *int    `json:"season"`
	League   *ref    `json:"league"`
	Division *ref    `json:"division"`
}

type peopleResponse struct {
	People []person `json:"people"`
}

type person struct {
	ID          int  `json:"id"`
	CurrentTeam *ref `json:"currentTeam"`
}

type allStarResponse struct {
	People []allStarCandidate `json:"people"`
}

type allStarCandidate struct {
	ID              int           `json:"id"`
	FullName        *string       `json:"fullName"`
	PrimaryPosition *position     `json:"primaryPosition"`
	BatSide         *players.Hand `json:"batSide"`
	PitchHand       *players.Hand `json:"pitchHand"`
}

type position struct {
	Name *string `json:"name"`
}
