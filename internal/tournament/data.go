package tournament

// AppData is the entire persisted collection, stored as one blob.
type AppData struct {
	Tournaments []Tournament `json:"tournaments"`
}

// Find returns a pointer into the collection so callers can mutate the
// tournament in place before saving the whole blob back.
func (d *AppData) Find(id string) *Tournament {
	for i := range d.Tournaments {
		if d.Tournaments[i].ID == id {
			return &d.Tournaments[i]
		}
	}
	return nil
}
