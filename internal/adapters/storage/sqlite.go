package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/jsamuelsen11/project-collector/internal/domain"
	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

var _ ports.DraftStore = (*SQLiteStore)(nil)

// SQLiteStore keeps slots as JSON blobs in a single table keyed by slot name.
// Several slots can share one database file.
type SQLiteStore struct {
	db   *sql.DB
	slot string
}

// NewSQLiteStore opens (creating if needed) the database at path and returns
// a store bound to slot.
func NewSQLiteStore(ctx context.Context, path, slot string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer at a time; sqlite serializes anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS slots (
		slot TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}

	return &SQLiteStore{db: db, slot: slot}, nil
}

// Save upserts the slot's payload.
func (s *SQLiteStore) Save(ctx context.Context, rec submission.Record) error {
	data, err := encode(rec)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	if _, err := s.db.ExecContext(ctx, `INSERT INTO slots(slot, payload, updated_at)
		VALUES(?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		s.slot, data); err != nil {
		return fmt.Errorf("%w: upsert slot %s: %w", domain.ErrPersistence, s.slot, err)
	}
	return nil
}

// Load reads the slot. A missing row is domain.ErrNotFound.
func (s *SQLiteStore) Load(ctx context.Context) (submission.Record, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM slots WHERE slot = ?`, s.slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return submission.Record{}, fmt.Errorf("draft slot %s: %w", s.slot, domain.ErrNotFound)
	}
	if err != nil {
		return submission.Record{}, fmt.Errorf("%w: select slot %s: %w", domain.ErrPersistence, s.slot, err)
	}
	return decode(data)
}

// Clear deletes the slot's row.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE slot = ?`, s.slot); err != nil {
		return fmt.Errorf("%w: delete slot %s: %w", domain.ErrPersistence, s.slot, err)
	}
	return nil
}

// Name identifies the backend in health results.
func (s *SQLiteStore) Name() string {
	return "drafts"
}

// HealthCheck pings the database.
func (s *SQLiteStore) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("drafts: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
