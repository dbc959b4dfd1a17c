package tournament

// Group is a fixed 8-player partition, generated once when the
// tournament starts and immutable afterwards.
type Group struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	PlayerIDs []string `json:"playerIds"`
}
