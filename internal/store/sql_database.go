package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/migrations"
)

// DB is the PostgreSQL connection pool shared by all SQL repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	idGenerator        IDGenerator
	logger             *logger.Logger
}

// Migrate applies every pending embedded migration.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB)
}

// Repositories returns repositories bound to the pool (autocommit mode).
func (db *DB) Repositories() *Repositories {
	return newSQLRepositories(db.DB, db.idGenerator, db.logger)
}

// RunInTx implements [Transactor]. It begins a transaction, runs fn with
// repositories bound to it, and commits on success or rolls back on error or
// panic. Panics are rethrown after the rollback.
func (db *DB) RunInTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) (err error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.RunInTx").Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Err(rbErr).Str("func", "*DB.RunInTx").Msg("error rolling back transaction")
			}
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			log.Err(commitErr).
				Str("func", "*DB.RunInTx").
				Int("classification", int(db.classify(commitErr))).
				Msg("error committing transaction")
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	return fn(ctx, newSQLRepositories(tx, db.idGenerator, db.logger))
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
