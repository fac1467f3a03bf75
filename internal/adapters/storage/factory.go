package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/jsamuelsen11/project-collector/internal/platform/config"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

// Backend is a draft store that also reports health and holds resources that
// must be released on shutdown.
type Backend interface {
	ports.DraftStore
	ports.HealthChecker
	io.Closer
}

// Open builds the backend selected by cfg.Driver for the named slot.
func Open(ctx context.Context, cfg config.StorageConfig, slot string) (Backend, error) {
	switch cfg.Driver {
	case config.StorageFile:
		return NewFileStore(cfg.Path, slot), nil
	case config.StorageSQLite:
		store, err := NewSQLiteStore(ctx, cfg.Path, slot)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StorageMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
