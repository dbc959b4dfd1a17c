package store

import (
	"context"
	"errors"
	"testing"

	"github.com/AdamBeresnev/bg-tourney-app/internal/tournament"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
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

func TestLoadEmptyStore(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	dataStore := NewDataStore(db)

	data, err := dataStore.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.Tournaments)
}

func TestSaveAndLoad(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	dataStore := NewDataStore(db)
	ctx := context.Background()

	playerID := uuid.NewString()
	saved := &tournament.AppData{
		Tournaments: []tournament.Tournament{
			{
				ID:            uuid.NewString(),
				Name:          "Friday Brawl",
				Description:   "Weekly lobby night",
				Status:        tournament.StatusActive,
				TotalRounds:   3,
				ScoringSystem: tournament.DefaultScoring,
				Players: []tournament.Player{
					{ID: playerID, Nickname: "Mura", GameID: "Mura#2211", RegisteredAt: 1700000000000},
				},
				Groups: map[int][]tournament.Group{},
				GeneratedGroups: []tournament.Group{
					{ID: uuid.NewString(), Name: "Group A", PlayerIDs: []string{playerID}},
				},
				Scores: []tournament.PlayerScore{
					{PlayerID: playerID, RoundResults: map[int]int{1: 4, 3: 1}},
				},
				CreatedAt: 1700000000000,
			},
		},
	}

	require.NoError(t, dataStore.Save(ctx, saved))

	loaded, err := dataStore.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Tournaments, 1)

	got := loaded.Tournaments[0]
	want := saved.Tournaments[0]
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Status, got.Status)
	assert.Equal(t, want.ScoringSystem, got.ScoringSystem)
	assert.Equal(t, want.Players, got.Players)
	assert.Equal(t, want.GeneratedGroups, got.GeneratedGroups)
	assert.Equal(t, want.Scores, got.Scores)
	assert.Equal(t, want.CreatedAt, got.CreatedAt)
}

func TestSaveOverwritesPreviousBlob(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	dataStore := NewDataStore(db)
	ctx := context.Background()

	first := &tournament.AppData{Tournaments: []tournament.Tournament{{ID: "one", Name: "First"}}}
	require.NoError(t, dataStore.Save(ctx, first))

	second := &tournament.AppData{Tournaments: []tournament.Tournament{{ID: "two", Name: "Second"}}}
	require.NoError(t, dataStore.Save(ctx, second))

	loaded, err := dataStore.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Tournaments, 1)
	assert.Equal(t, "two", loaded.Tournaments[0].ID)
}

func TestLoadMalformedBlob(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := db.Exec("INSERT INTO app_state (key, value) VALUES (?, ?)", StorageKey, "{not json")
	require.NoError(t, err)

	dataStore := NewDataStore(db)

	data, err := dataStore.Load(context.Background())
	require.NoError(t, err, "malformed blob must degrade to an empty collection")
	assert.Empty(t, data.Tournaments)
}

func TestUpdateReadModifyWrite(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	dataStore := NewDataStore(db)
	ctx := context.Background()

	err := dataStore.Update(ctx, func(data *tournament.AppData) error {
		data.Tournaments = append(data.Tournaments, tournament.Tournament{ID: "t1", Name: "Added"})
		return nil
	})
	require.NoError(t, err)

	loaded, err := dataStore.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Tournaments, 1)
	assert.Equal(t, "t1", loaded.Tournaments[0].ID)
}

func TestUpdateAbortsOnError(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	dataStore := NewDataStore(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := dataStore.Update(ctx, func(data *tournament.AppData) error {
		data.Tournaments = append(data.Tournaments, tournament.Tournament{ID: "t1"})
		return boom
	})
	require.ErrorIs(t, err, boom)

	loaded, err := dataStore.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Tournaments, "a failed update must not persist anything")
}
