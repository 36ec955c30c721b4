package players

import "sort"

const (
	// LeaderboardSize caps the NBA player leaderboard.
	LeaderboardSize = 30
	// AllStarSlots is how many MLB all-star slots the interleave fills.
	AllStarSlots = 34
)

// Weights applied to the NBA leaderboard score.
const (
	weightFantasyPoints = 0.70
	weightEfficiency    = 0.20
	weightPlusMinus     = 0.10
)

// BasketballPlayer is an NBA season stat line plus its leaderboard score.
type BasketballPlayer struct {
	PlayerID       *int     `json:"player_id"`
	PlayerName     *string  `json:"player_name"`
	PlayerPosition *string  `json:"player_position"`
	TeamID         *int     `json:"team_id"`
	TeamKey        *string  `json:"team_key"`
	FantasyPoints  *float64 `json:"fantasy_points"`
	Rebounds       *float64 `json:"rebounds"`
	Assists        *float64 `json:"assists"`
	Steals         *float64 `json:"steals"`
	Points         *float64 `json:"points"`
	PER            *float64 `json:"per"`
	PlusMinus      *float64 `json:"plus_minus"`
	PlayerPoints   float64  `json:"player_points"`
	TeamName       *string  `json:"team_name"`
	TeamCity       *string  `json:"team_city"`
	TeamLogo       *string  `json:"team_logo"`
}

// Hand describes a bat side or pitch hand as reported by the baseball provider.
type Hand struct {
	Code        *string `json:"code"`
	Description *string `json:"description"`
}

// AllStar is an MLB all-star final-vote candidate with their current team resolved.
type AllStar struct {
	PlayerName      *string `json:"player_name"`
	PlayerID        int     `json:"player_id"`
	PlayerPosition  *string `json:"player_position"`
	PlayerBatSide   *Hand   `json:"player_batside"`
	PlayerPitchHand *Hand   `json:"player_pitchhand"`
	TeamName        *string `json:"team_name"`
	TeamClubName    *string `json:"team_clubname"`
	TeamID          *int    `json:"team_id"`
}

// Scorer is one entry of a football competition's top-scorer list.
type Scorer struct {
	PlayerName     *string `json:"player_name"`
	PlayerID       *int    `json:"player_id"`
	PlayerPosition *string `json:"player_position"`
	TeamName       *string `json:"team_name"`
	TeamClubName   *string `json:"team_clubname"`
	TeamID         *int    `json:"team_id"`
	TeamCrest      *string `json:"team_crest"`
}

// WeightedPoints scores a stat line for the leaderboard. Missing inputs count as zero.
func WeightedPoints(fantasyPoints, per, plusMinus *float64) float64 {
	return weightFantasyPoints*valueOf(fantasyPoints) +
		weightEfficiency*valueOf(per) +
		weightPlusMinus*valueOf(plusMinus)
}

// Rank scores every player, sorts by score descending and keeps the top limit.
// Equal scores keep their input order.
func Rank(list []BasketballPlayer, limit int) []BasketballPlayer {
	ranked := make([]BasketballPlayer, len(list))
	copy(ranked, list)
	for i := range ranked {
		ranked[i].PlayerPoints = WeightedPoints(ranked[i].FantasyPoints, ranked[i].PER, ranked[i].PlusMinus)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PlayerPoints > ranked[j].PlayerPoints
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Interleave fills slots by alternating pools: even slots draw from even, odd slots from odd.
// Each pool is consumed front to back. When a pool runs dry its slots are skipped, not backfilled.
func Interleave[T any](even, odd []T, slots int) []T {
	out := make([]T, 0, min(slots, len(even)+len(odd)))
	var e, o int
	for i := 0; i < slots; i++ {
		if i%2 == 0 {
			if e < len(even) {
				out = append(out, even[e])
				e++
			}
			continue
		}
		if o < len(odd) {
			out = append(out, odd[o])
			o++
		}
	}
	return out
}

func valueOf(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
