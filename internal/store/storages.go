package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-smart-cards/internal/config"
	"github.com/MKhiriev/go-smart-cards/internal/logger"
)

// Storages is the storage facade handed to the service layer: autocommit
// repositories plus a [Transactor] for multi-write sequences.
type Storages struct {
	*Repositories
	Transactor

	close func() error
}

// NewStorages selects the backend from cfg. A non-empty DSN connects to
// PostgreSQL and applies migrations; an empty DSN selects [MemoryStorage].
func NewStorages(ctx context.Context, cfg config.DB, idGenerator IDGenerator, log *logger.Logger) (*Storages, error) {
	if cfg.DSN == "" {
		log.Warn().Str("func", "NewStorages").Msg("no database DSN configured, using in-memory storage")
		return NewMemoryStorages(NewMemoryStorage(idGenerator, nil)), nil
	}

	db, err := NewConnectPostgres(ctx, cfg, idGenerator, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		Repositories: db.Repositories(),
		Transactor:   db,
		close:        db.Close,
	}, nil
}

// NewMemoryStorages wraps an in-memory backend into a [Storages].
func NewMemoryStorages(mem *MemoryStorage) *Storages {
	return &Storages{
		Repositories: mem.Repositories(),
		Transactor:   mem,
		close:        func() error { return nil },
	}
}

// Close releases the underlying connection pool, if any.
func (s *Storages) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
