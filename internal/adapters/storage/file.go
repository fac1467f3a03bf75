package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jsamuelsen11/project-collector/internal/domain"
	"github.com/jsamuelsen11/project-collector/internal/domain/submission"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

var _ ports.DraftStore = (*FileStore)(nil)

// FileStore keeps each slot as a JSON document under a directory. Writes go
// through a temp file and rename so a crash never leaves a torn draft.
type FileStore struct {
	mu   sync.Mutex
	dir  string
	path string
}

// NewFileStore returns a store for slot inside dir. The directory is created
// on first write.
func NewFileStore(dir, slot string) *FileStore {
	return &FileStore{
		dir:  dir,
		path: filepath.Join(dir, slot+".json"),
	}
}

// Save replaces the slot's contents with rec.
func (s *FileStore) Save(_ context.Context, rec submission.Record) error {
	data, err := encode(rec)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFileAtomic(s.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: writing %s: %w", domain.ErrPersistence, s.path, err)
	}
	return nil
}

// Load reads the slot. An absent file is domain.ErrNotFound.
func (s *FileStore) Load(_ context.Context) (submission.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return submission.Record{}, fmt.Errorf("draft slot %s: %w", s.path, domain.ErrNotFound)
	}
	if err != nil {
		return submission.Record{}, fmt.Errorf("%w: reading %s: %w", domain.ErrPersistence, s.path, err)
	}
	return decode(data)
}

// Clear removes the slot. Clearing an empty slot is not an error.
func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: removing %s: %w", domain.ErrPersistence, s.path, err)
	}
	return nil
}

// Name identifies the backend in health results.
func (s *FileStore) Name() string {
	return "drafts"
}

// HealthCheck reports whether the slot directory is usable. A directory that
// does not exist yet is healthy because Save creates it.
func (s *FileStore) HealthCheck(_ context.Context) error {
	info, err := os.Stat(s.dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("drafts: %w", err)
	case !info.IsDir():
		return fmt.Errorf("drafts: %s is not a directory", s.dir)
	}
	return nil
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return syncDir(dir)
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return f.Sync()
}
