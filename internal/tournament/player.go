package tournament

type Player struct {
	ID           string `json:"id"`
	Nickname     string `json:"nickname"`
	GameID       string `json:"gameId"`
	RegisteredAt int64  `json:"registeredAt"`
}

// PlayerScore holds one player's results keyed by round number (1-based).
// Rounds without a recorded rank are absent from the map, not zero.
type PlayerScore struct {
	PlayerID     string      `json:"playerId"`
	RoundResults map[int]int `json:"roundResults"`
}
