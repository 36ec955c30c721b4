package footballdata

const providerName = "footballdata"

type matchesResponse struct {
	Matches []match `json:"matches"`
}

type match struct {
	ID       *int    `json:"id"`
	UTCDate  *string `json:"utcDate"`
	Status   *string `json:"status"`
	Stage    *string `json:"stage"`
	HomeTeam *team   `json:"homeTeam"`
	AwayTeam *team   `json:"awayTeam"`
	Score    *score  `json:"score"`
}

type team struct {
	ID        *int    `json:"id"`
	Name      *string `json:"name"`
	ShortName *string `json:"shortName"`
	Crest     *string `json:"crest"`
}

type score struct {
	FullTime *goals `json:"fullTime"`
}

type goals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type standingsResponse struct {
	Filters     *filters       `json:"filters"`
	Competition *competition   `json:"competition"`
	Standings   []standingPart `json:"standings"`
}

type filters struct {
	Season *string `json:"season"`
}

type competition struct {
	ID     *int    `json:"id"`
	Name   *string `json:"name"`
	Emblem *string `json:"emblem"`
}

type standingPart struct {
	Stage *string    `json:"stage"`
	Type  *string    `json:"type"`
	Table []tableRow `json:"table"`
}

type tableRow struct {
	Position       *int    `json:"position"`
	Team           *team   `json:"team"`
	Form           *string `json:"form"`
	Won            *int    `json:"won"`
	Draw           *int    `json:"draw"`
	Lost           *int    `json:"lost"`
	Points         *int    `json:"points"`
	GoalsFor       *int    `json:"goalsFor"`
	GoalsAgainst   *int    `json:"goalsAgainst"`
	GoalDifference *int    `json:"goalDifference"`
}

type scorersResponse struct {
	Scorers []scorer `json:"scorers"`
}

type scorer struct {
	Player *player `json:"player"`
	Team   *team   `json:"team"`
}

type player struct {
	ID      *int    `json:"id"`
	Name    *string `json:"name"`
	Section *string `json:"section"`
}
