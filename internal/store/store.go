// Package store persists the aggregate state as a single JSON snapshot in
// a local SQLite database. Durability is best effort: callers treat a
// failed save as a logged non-event, and a missing or unparsable snapshot
// falls back to the seeded example schedule.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/showdeck/internal/domain"
)

// stateKey is the fixed snapshot record key for the aggregate state.
const stateKey = "showdeck-state-v1"

// SnapshotStore reads and writes the aggregate state snapshot.
type SnapshotStore struct {
	db *sql.DB
}

// NewSnapshotStore creates a SnapshotStore over an open database.
func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Load reads the saved state. A missing or unparsable snapshot yields the
// seeded default; Load never fails.
func (s *SnapshotStore) Load(ctx context.Context) *domain.State {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots WHERE key = ?`, stateKey,
	).Scan(&payload)
	if err != nil {
		if err != sql.ErrNoRows {
			slog.Warn("loading snapshot failed, using seed data", "error", err)
		}
		return domain.SeedState()
	}

	state := domain.NewState()
	if err := json.Unmarshal([]byte(payload), state); err != nil {
		slog.Warn("snapshot unparsable, using seed data", "error", err)
		return domain.SeedState()
	}
	if state.Meetings == nil {
		state.Meetings = []*domain.Meeting{}
	}
	if state.Travel == nil {
		state.Travel = []*domain.TravelItem{}
	}
	return state
}

// Save writes the full state under the fixed key.
func (s *SnapshotStore) Save(ctx context.Context, state *domain.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO snapshots (key, payload, updated_at) VALUES (?, ?, ?)`,
		stateKey, string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
