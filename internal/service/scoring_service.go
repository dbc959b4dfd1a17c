package service

import (
	"context"

	"github.com/AdamBeresnev/bg-tourney-app/internal/store"
	"github.com/AdamBeresnev/bg-tourney-app/internal/tournament"
)

type ScoringService struct {
	store *store.DataStore
}

func NewScoringService(store *store.DataStore) *ScoringService {
	return &ScoringService{store: store}
}

// RecordRank stores a player's rank for one round, overwriting any rank
// previously recorded for that round.
func (s *ScoringService) RecordRank(ctx context.Context, tournamentID, playerID string, round, rank int) error {
	if rank < 1 || rank > tournament.GroupSize {
		return ErrInvalidRank
	}

	return s.store.Update(ctx, func(data *tournament.AppData) error {
		t := data.Find(tournamentID)
		if t == nil {
			return ErrTournamentNotFound
		}
		if t.Status != tournament.StatusActive {
			return ErrTournamentNotActive
		}
		if round < 1 || round > t.TotalRounds {
			return ErrInvalidRound
		}

		score := t.ScoreFor(playerID)
		if score == nil {
			return ErrPlayerNotFound
		}
		if score.RoundResults == nil {
			score.RoundResults = map[int]int{}
		}
		score.RoundResults[round] = rank
		return nil
	})
}
