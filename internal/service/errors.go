package service

import "errors"

// Sentinel errors shared by the engine services and mapped to HTTP
// statuses by the handlers.
var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrPlayerNotFound     = errors.New("player not found")

	// Validation
	ErrNicknameRequired = errors.New("nickname is required")
	ErrGameIDRequired   = errors.New("game ID is required")
	ErrInvalidRounds    = errors.New("total rounds must be a positive number")
	ErrInvalidScoring   = errors.New("scoring system must have exactly 8 entries")
	ErrInvalidRound     = errors.New("round is out of range")
	ErrInvalidRank      = errors.New("rank must be between 1 and 8")

	// Lifecycle conflicts
	ErrDuplicatePlayer     = errors.New("nickname or game ID is already registered")
	ErrRegistrationClosed  = errors.New("tournament registration is closed")
	ErrAlreadyStarted      = errors.New("tournament has already started")
	ErrTournamentNotActive = errors.New("tournament is not active")
	ErrNotEnoughPlayers    = errors.New("need at least 8 players to start")
	ErrUnevenGroups        = errors.New("player count is not a multiple of 8")
)
