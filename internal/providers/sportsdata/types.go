package sportsdata

const providerName = "sportsdata"

type scheduleGame struct {
	GameID        *int    `json:"GameID"`
	Day           *string `json:"Day"`
	Status        *string `json:"Status"`
	GameLabel     *string `json:"gameLabel"`
	HomeTeam      *string `json:"HomeTeam"`
	HomeTeamID    *int    `json:"HomeTeamID"`
	AwayTeam      *string `json:"AwayTeam"`
	AwayTeamID    *int    `json:"AwayTeamID"`
	HomeTeamScore *int    `json:"HomeTeamScore"`
	AwayTeamScore *int    `json:"AwayTeamScore"`
	DateTimeUTC   *string `json:"DateTimeUTC"`
}

type team struct {
	TeamID           int     `json:"TeamID"`
	Key              *string `json:"Key"`
	City             *string `json:"City"`
	Name             *string `json:"Name"`
	WikipediaLogoURL *string `json:"WikipediaLogoUrl"`
}

type standing struct {
	TeamID            *int     `json:"TeamID"`
	Key               *string  `json:"Key"`
	City              *string  `json:"City"`
	Name              *string  `json:"Name"`
	Conference        *string  `json:"Conference"`
	Wins              *int     `json:"Wins"`
	Losses            *int     `json:"Losses"`
	Percentage        *float64 `json:"Percentage"`
	HomeWins          *int     `json:"HomeWins"`
	HomeLosses        *int     `json:"HomeLosses"`
	AwayWins          *int     `json:"AwayWins"`
	AwayLosses        *int     `json:"AwayLosses"`
	LastTenWins       *int     `json:"LastTenWins"`
	LastTenLosses     *int     `json:"LastTenLosses"`
	ConferenceWins    *int     `json:"ConferenceWins"`
	ConferenceLosses  *int     `json:"ConferenceLosses"`
	GamesBack         *float64 `json:"GamesBack"`
	StreakDescription *string  `json:"StreakDescription"`
}

type playerSeason struct {
	PlayerID               *int     `json:"PlayerID"`
	Name                   *string  `json:"Name"`
	Position               *string  `json:"Position"`
	TeamID                 *int     `json:"TeamID"`
	Team                   *string  `json:"Team"`
	FantasyPoints          *float64 `json:"FantasyPoints"`
	Rebounds               *float64 `json:"Rebounds"`
	Assists                *float64 `json:"Assists"`
	Steals                 *float64 `json:"Steals"`
	Points                 *float64 `json:"Points"`
	PlayerEfficiencyRating *float64 `json:"PlayerEfficiencyRating"`
	PlusMinus              *float64 `json:"PlusMinus"`
}
