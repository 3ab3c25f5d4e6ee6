package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, expiry and the generation counter
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     DBTX
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// connection (or transaction) and logger.
func NewUserRepository(db DBTX, logger *logger.Logger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user         models.User
		passwordHash sql.NullString
		expiresAt    sql.NullTime
		resetAt      sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&passwordHash,
		&user.IsGuest,
		&expiresAt,
		&user.APICallCount,
		&resetAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.PasswordHash = passwordHash.String
	user.ExpiresAt = timePtr(expiresAt)
	user.APICallResetAt = timePtr(resetAt)

	return user, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// CreateUser persists a new user record and returns the stored row with
// server-assigned fields (CreatedAt, UpdatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.ID,
		user.Username,
		user.Email,
		nullString(user.PasswordHash),
		user.IsGuest,
		nullTime(user.ExpiresAt),
	)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByID returns the user with the given id, or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// FindUserByUsername returns the user with the given username, or
// [ErrUserNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		if mapped := mapReferenceError(err, ErrUserNotFound); errors.Is(mapped, ErrNotFound) {
			return models.User{}, mapped
		}
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// ExistsByUsernameOrEmail reports whether username or email is already taken.
func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, existsByUsernameOrEmail, username, email).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*userRepository.ExistsByUsernameOrEmail").Msg("error checking user existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// DeleteUser removes the user row. A missing user yields [ErrUserNotFound].
// PostgreSQL rejects the delete with a foreign key violation while the user
// still owns decks.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", userID).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ListExpiredUserIDs returns up to limit ids of users whose expiry is at or
// before now, oldest expiry first.
func (r *userRepository) ListExpiredUserIDs(ctx context.Context, now time.Time, limit int) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listExpiredUserIDs, now, limit)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListExpiredUserIDs").Msg("error listing expired users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0, limit)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			log.Err(err).Str("func", "*userRepository.ListExpiredUserIDs").Msg("failed to scan user id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListExpiredUserIDs").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// GetQuota returns the counter state of the user, or [ErrUserNotFound].
func (r *userRepository) GetQuota(ctx context.Context, userID string) (models.Quota, error) {
	log := logger.FromContext(ctx)

	quota, err := scanQuota(r.db.QueryRowContext(ctx, getQuota, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Quota{}, ErrUserNotFound
	}
	if err != nil {
		if mapped := mapReferenceError(err, ErrUserNotFound); errors.Is(mapped, ErrNotFound) {
			return models.Quota{}, mapped
		}
		log.Err(err).Str("func", "*userRepository.GetQuota").Str("user_id", userID).Msg("error reading quota")
		return models.Quota{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return quota, nil
}

// CommitGenerationCall implements [UserRepository.CommitGenerationCall] with
// one conditional UPDATE ... RETURNING. No returned row means either the
// limit is reached or the user is gone; the two are told apart with a
// follow-up lookup.
func (r *userRepository) CommitGenerationCall(ctx context.Context, userID string, now time.Time, window time.Duration, limit int) (models.Quota, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCommitGenerationCallQuery(userID, now, window, limit)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CommitGenerationCall").Msg("failed to create query")
		return models.Quota{}, err
	}

	quota, err := scanQuota(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		if _, findErr := r.GetQuota(ctx, userID); findErr != nil {
			return models.Quota{}, findErr
		}
		return models.Quota{}, ErrQuotaExhausted
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CommitGenerationCall").Str("user_id", userID).Msg("error committing generation call")
		return models.Quota{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return quota, nil
}

func scanQuota(row rowScanner) (models.Quota, error) {
	var (
		quota   models.Quota
		resetAt sql.NullTime
	)
	if err := row.Scan(&quota.CallCount, &resetAt); err != nil {
		return models.Quota{}, err
	}
	quota.ResetAt = timePtr(resetAt)
	return quota, nil
}
