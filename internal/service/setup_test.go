package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/AdamBeresnev/bg-tourney-app/internal/store"
	"github.com/AdamBeresnev/bg-tourney-app/internal/tournament"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")

	driver, err := sqlite3.WithInstance(database.DB, &sqlite3.Config{})
	require.NoError(t, err, "Failed to create migrate driver instance")

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations",
		"sqlite3",
		driver,
	)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to apply migrations")
	}

	return database
}

type testServices struct {
	store        *store.DataStore
	tournaments  *TournamentService
	registration *RegistrationService
	scoring      *ScoringService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db := setupTestDB(t)
	t.Cleanup(func() { db.Close() })

	dataStore := store.NewDataStore(db)
	return &testServices{
		store:        dataStore,
		tournaments:  NewTournamentService(dataStore),
		registration: NewRegistrationService(dataStore),
		scoring:      NewScoringService(dataStore),
	}
}

// registerPlayers signs up count players with distinct nicknames and
// game IDs and returns them in registration order.
func registerPlayers(t *testing.T, svc *RegistrationService, tournamentID string, count int) []tournament.Player {
	t.Helper()

	players := make([]tournament.Player, 0, count)
	for i := 1; i <= count; i++ {
		p, err := svc.RegisterPlayer(context.Background(), tournamentID,
			fmt.Sprintf("Player%02d", i), fmt.Sprintf("Player%02d#1%03d", i, i))
		require.NoError(t, err)
		players = append(players, *p)
	}
	return players
}
