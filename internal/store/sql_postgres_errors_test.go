package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "bad conn", err: fmt.Errorf("wrap: %w", driver.ErrBadConn), want: Retryable},
		{name: "serialization", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "unique", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "fk", err: pgError(pgerrcode.ForeignKeyViolation), want: NonRetryable},
		{name: "bad uuid", err: pgError(pgerrcode.InvalidTextRepresentation), want: NonRetryable},
		{name: "wrapped retryable", err: fmt.Errorf("commit: %w", pgError(pgerrcode.SerializationFailure)), want: Retryable},
		{name: "unknown code", err: &pgconn.PgError{Code: "XX999"}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestMapReferenceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "fk violation", err: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrDeckNotFound},
		{name: "malformed uuid", err: pgError(pgerrcode.InvalidTextRepresentation), wantErr: ErrDeckNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapReferenceError(tt.err, ErrDeckNotFound), tt.wantErr)
		})
	}

	other := errors.New("conn reset")
	assert.NotErrorIs(t, mapReferenceError(other, ErrDeckNotFound), ErrNotFound)
	assert.NotErrorIs(t, mapReferenceError(pgError(pgerrcode.UniqueViolation), ErrDeckNotFound), ErrNotFound)
}
