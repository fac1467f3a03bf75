package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/project-collector/internal/domain"
	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

var _ ports.DraftStore = (*MemoryStore)(nil)

// MemoryStore holds the encoded slot in process memory. It goes through the
// same codec as the durable backends, so stored records never alias the
// caller's slices.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save replaces the slot with an encoded copy of rec.
func (s *MemoryStore) Save(_ context.Context, rec submission.Record) error {
	data, err := encode(rec)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

// Load decodes the slot. An empty slot is domain.ErrNotFound.
func (s *MemoryStore) Load(_ context.Context) (submission.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return submission.Record{}, fmt.Errorf("draft slot: %w", domain.ErrNotFound)
	}
	return decode(s.data)
}

// Clear empties the slot.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}

// Name identifies the backend in health results.
func (s *MemoryStore) Name() string {
	return "drafts"
}

// HealthCheck always succeeds.
func (s *MemoryStore) HealthCheck(_ context.Context) error {
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
