package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/AdamBeresnev/bg-tourney-app/internal/tournament"
	"github.com/jmoiron/sqlx"
)

// StorageKey matches the well-known key of the original browser-local
// store, so an exported blob can be imported unchanged.
const StorageKey = "tournament_manager_data_v1"

// DataStore persists the entire tournament collection as a single JSON
// blob under one key. Every mutation is a read-modify-write of the whole
// collection through Update.
type DataStore struct {
	db *sqlx.DB
	mu sync.Mutex
}

func NewDataStore(db *sqlx.DB) *DataStore {
	return &DataStore{db: db}
}

// Load reads the whole collection. A missing or malformed blob degrades
// to an empty collection so a fresh database is immediately usable.
func (s *DataStore) Load(ctx context.Context) (*tournament.AppData, error) {
	var raw string
	err := s.db.GetContext(ctx, &raw, "SELECT value FROM app_state WHERE key = ?", StorageKey)
	if errors.Is(err, sql.ErrNoRows) {
		return &tournament.AppData{}, nil
	}
	if err != nil {
		return nil, err
	}

	var data tournament.AppData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		slog.Warn("discarding malformed app state blob", "key", StorageKey, "error", err)
		return &tournament.AppData{}, nil
	}
	return &data, nil
}

// Save persists the whole collection in one upsert.
func (s *DataStore) Save(ctx context.Context, data *tournament.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		StorageKey, string(raw))
	return err
}

// Update runs one read-modify-write cycle under the store lock, so
// concurrent mutations can never clobber each other's writes. If fn
// returns an error nothing is persisted.
func (s *DataStore) Update(ctx context.Context, fn func(*tournament.AppData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(data); err != nil {
		return err
	}
	return s.Save(ctx, data)
}
