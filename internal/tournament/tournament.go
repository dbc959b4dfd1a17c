package tournament

type Status string

const (
	StatusRegistration Status = "registration"
	StatusActive       Status = "active"
	StatusCompleted    Status = "completed"
)

// GroupSize is the fixed lobby size of a Battlegrounds round.
const GroupSize = 8

// DefaultScoring awards points by rank, index 0 = 1st place.
var DefaultScoring = []int{9, 7, 6, 5, 4, 3, 2, 1}

type Tournament struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Status        Status   `json:"status"`
	TotalRounds   int      `json:"totalRounds"`
	ScoringSystem []int    `json:"scoringSystem"`
	Players       []Player `json:"players"`

	// Groups was reserved for per-round regrouping but never populated;
	// kept so existing blobs round-trip unchanged.
	Groups          map[int][]Group `json:"groups"`
	GeneratedGroups []Group         `json:"generatedGroups"`

	Scores    []PlayerScore `json:"scores"`
	CreatedAt int64         `json:"createdAt"`
}

// Points returns the points awarded for a rank, 0 outside 1..8.
func (t *Tournament) Points(rank int) int {
	if rank < 1 || rank > len(t.ScoringSystem) {
		return 0
	}
	return t.ScoringSystem[rank-1]
}

// ScoreFor returns the score record owned by a player, nil if absent.
func (t *Tournament) ScoreFor(playerID string) *PlayerScore {
	for i := range t.Scores {
		if t.Scores[i].PlayerID == playerID {
			return &t.Scores[i]
		}
	}
	return nil
}

// HasRegistered reports whether any player already uses the nickname or
// the game ID. Either collision alone blocks a registration.
func (t *Tournament) HasRegistered(nickname, gameID string) bool {
	for i := range t.Players {
		if t.Players[i].Nickname == nickname || t.Players[i].GameID == gameID {
			return true
		}
	}
	return false
}
