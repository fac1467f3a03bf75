package ports

import (
	"context"

	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
)

// DraftStore defines the storage port for the single durable draft slot.
// Implemented by the storage adapters (file, sqlite, memory); called by the
// record store after every mutation.
type DraftStore interface {
	// Save overwrites the slot with the full record, resource ids included.
	Save(ctx context.Context, record submission.Record) error

	// Load returns the record held in the slot.
	// Returns domain.ErrNotFound if the slot is empty.
	// Returns an error wrapping domain.ErrPersistence if the slot content
	// cannot be decoded.
	Load(ctx context.Context) (submission.Record, error)

	// Clear removes the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
