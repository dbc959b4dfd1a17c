package service

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/AdamBeresnev/bg-tourney-app/internal/store"
	"github.com/AdamBeresnev/bg-tourney-app/internal/tournament"
	"github.com/google/uuid"
)

type TournamentService struct {
	store *store.DataStore
}

func NewTournamentService(store *store.DataStore) *TournamentService {
	return &TournamentService{store: store}
}

// CreateTournament opens a new tournament in registration status. A nil
// or empty scoring table falls back to the default one.
func (s *TournamentService) CreateTournament(ctx context.Context, name, description string, totalRounds int, scoring []int) (*tournament.Tournament, error) {
	if totalRounds < 1 {
		return nil, ErrInvalidRounds
	}
	if len(scoring) == 0 {
		scoring = tournament.DefaultScoring
	} else if len(scoring) != tournament.GroupSize {
		return nil, ErrInvalidScoring
	}

	t := tournament.Tournament{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(name),
		Description:     description,
		Status:          tournament.StatusRegistration,
		TotalRounds:     totalRounds,
		ScoringSystem:   slices.Clone(scoring),
		Players:         []tournament.Player{},
		Groups:          map[int][]tournament.Group{},
		GeneratedGroups: []tournament.Group{},
		Scores:          []tournament.PlayerScore{},
		CreatedAt:       time.Now().UnixMilli(),
	}

	err := s.store.Update(ctx, func(data *tournament.AppData) error {
		data.Tournaments = append(data.Tournaments, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TournamentService) GetTournament(ctx context.Context, id string) (*tournament.Tournament, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	t := data.Find(id)
	if t == nil {
		return nil, ErrTournamentNotFound
	}
	return t, nil
}

// ListTournaments returns all tournaments, newest first.
func (s *TournamentService) ListTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	tournaments := data.Tournaments
	sort.SliceStable(tournaments, func(i, j int) bool {
		return tournaments[i].CreatedAt > tournaments[j].CreatedAt
	})
	return tournaments, nil
}

// StartTournament moves a tournament from registration to active,
// generating its groups. Preconditions are checked in order so the
// first failure determines the message the organizer sees.
func (s *TournamentService) StartTournament(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(data *tournament.AppData) error {
		t := data.Find(id)
		if t == nil {
			return ErrTournamentNotFound
		}
		if t.Status != tournament.StatusRegistration {
			return ErrAlreadyStarted
		}

		count := len(t.Players)
		if count < tournament.GroupSize {
			return fmt.Errorf("%w: have %d", ErrNotEnoughPlayers, count)
		}
		if count%tournament.GroupSize != 0 {
			return fmt.Errorf("%w: have %d", ErrUnevenGroups, count)
		}

		t.GeneratedGroups = buildGroups(t.Players)
		t.Status = tournament.StatusActive
		return nil
	})
}

// CompleteTournament finalizes an active tournament, closing scoring.
func (s *TournamentService) CompleteTournament(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(data *tournament.AppData) error {
		t := data.Find(id)
		if t == nil {
			return ErrTournamentNotFound
		}
		if t.Status != tournament.StatusActive {
			return ErrTournamentNotActive
		}
		t.Status = tournament.StatusCompleted
		return nil
	})
}
