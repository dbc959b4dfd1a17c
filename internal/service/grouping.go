package service

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/AdamBeresnev/bg-tourney-app/internal/tournament"
	"github.com/google/uuid"
)

// buildGroups shuffles the roster uniformly and chunks it into lobbies
// of 8 in shuffled order. Callers must have checked that the roster is
// a non-zero multiple of the group size.
func buildGroups(players []tournament.Player) []tournament.Group {
	shuffled := slices.Clone(players)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	groups := make([]tournament.Group, 0, len(shuffled)/tournament.GroupSize)
	for i := 0; i < len(shuffled); i += tournament.GroupSize {
		chunk := shuffled[i : i+tournament.GroupSize]
		ids := make([]string, len(chunk))
		for j := range chunk {
			ids[j] = chunk[j].ID
		}

		groups = append(groups, tournament.Group{
			ID:        uuid.NewString(),
			Name:      groupName(i / tournament.GroupSize),
			PlayerIDs: ids,
		})
	}
	return groups
}

// groupName labels groups sequentially: Group A, Group B, ...
func groupName(index int) string {
	return fmt.Sprintf("Group %c", 'A'+rune(index))
}
