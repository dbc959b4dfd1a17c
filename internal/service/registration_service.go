package service

import (
	"context"
	"strings"
	"time"

	"github.com/AdamBeresnev/bg-tourney-app/internal/store"
	"github.com/AdamBeresnev/bg-tourney-app/internal/tournament"
	"github.com/google/uuid"
)

type RegistrationService struct {
	store *store.DataStore
}

func NewRegistrationService(store *store.DataStore) *RegistrationService {
	return &RegistrationService{store: store}
}

// RegisterPlayer admits a player into a tournament's roster. It serves
// both the self-service share link and the organizer's manual add; the
// contract is identical. A registration is rejected when either the
// nickname or the game ID is already taken.
func (s *RegistrationService) RegisterPlayer(ctx context.Context, tournamentID, nickname, gameID string) (*tournament.Player, error) {
	nickname = strings.TrimSpace(nickname)
	gameID = strings.TrimSpace(gameID)
	if nickname == "" {
		return nil, ErrNicknameRequired
	}
	if gameID == "" {
		return nil, ErrGameIDRequired
	}

	var player tournament.Player
	err := s.store.Update(ctx, func(data *tournament.AppData) error {
		t := data.Find(tournamentID)
		if t == nil {
			return ErrTournamentNotFound
		}
		if t.Status != tournament.StatusRegistration {
			return ErrRegistrationClosed
		}
		if t.HasRegistered(nickname, gameID) {
			return ErrDuplicatePlayer
		}

		player = tournament.Player{
			ID:           uuid.NewString(),
			Nickname:     nickname,
			GameID:       gameID,
			RegisteredAt: time.Now().UnixMilli(),
		}
		t.Players = append(t.Players, player)

		// The score record is created with the registration so the two
		// collections never diverge in membership.
		t.Scores = append(t.Scores, tournament.PlayerScore{
			PlayerID:     player.ID,
			RoundResults: map[int]int{},
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &player, nil
}
