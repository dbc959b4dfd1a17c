package service

import (
	"sort"

	"github.com/AdamBeresnev/bg-tourney-app/internal/tournament"
)

// Standing is one leaderboard row.
type Standing struct {
	Player       tournament.Player `json:"player"`
	TotalScore   int               `json:"totalScore"`
	RoundResults map[int]int       `json:"roundResults"`
}

// ComputeStandings projects the leaderboard from a tournament's players
// and scores. Rows sort by total score, then lexicographically by the
// count of 1st places, 2nd places and so on down to 8th. Fully tied
// players keep registration order. The projection is pure; it never
// touches persisted state.
func ComputeStandings(t *tournament.Tournament) []Standing {
	standings := make([]Standing, 0, len(t.Players))
	rankCounts := make(map[string]*[tournament.GroupSize + 1]int, len(t.Players))

	for _, p := range t.Players {
		var total int
		var counts [tournament.GroupSize + 1]int
		results := map[int]int{}

		if score := t.ScoreFor(p.ID); score != nil {
			for round, rank := range score.RoundResults {
				results[round] = rank
				total += t.Points(rank)
				if rank >= 1 && rank <= tournament.GroupSize {
					counts[rank]++
				}
			}
		}

		rankCounts[p.ID] = &counts
		standings = append(standings, Standing{
			Player:       p,
			TotalScore:   total,
			RoundResults: results,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		ca, cb := rankCounts[a.Player.ID], rankCounts[b.Player.ID]
		for rank := 1; rank <= tournament.GroupSize; rank++ {
			if ca[rank] != cb[rank] {
				return ca[rank] > cb[rank]
			}
		}
		return false
	})

	return standings
}
