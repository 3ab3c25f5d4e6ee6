package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/models"
	"github.com/jackc/pgerrcode"
)

// deckRepository is the PostgreSQL-backed implementation of [DeckRepository].
type deckRepository struct {
	db          DBTX
	idGenerator IDGenerator
	logger      *logger.Logger
}

// NewDeckRepository constructs a [DeckRepository] over db.
func NewDeckRepository(db DBTX, idGenerator IDGenerator, logger *logger.Logger) DeckRepository {
	return &deckRepository{
		db:          db,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

func scanDeck(row rowScanner) (models.Deck, error) {
	var deck models.Deck
	err := row.Scan(&deck.ID, &deck.OwnerID, &deck.Name, &deck.CreatedAt, &deck.UpdatedAt)
	return deck, err
}

// CreateDeck inserts deck, generating an id when none is set.
// An owner that does not exist yields [ErrUserNotFound].
func (r *deckRepository) CreateDeck(ctx context.Context, deck models.Deck) (models.Deck, error) {
	log := logger.FromContext(ctx)

	if deck.ID == "" {
		deck.ID = r.idGenerator.Generate()
	}

	created, err := scanDeck(r.db.QueryRowContext(ctx, createDeck, deck.ID, deck.OwnerID, deck.Name))
	if err != nil {
		if mapped := mapReferenceError(err, ErrUserNotFound); errors.Is(mapped, ErrNotFound) {
			return models.Deck{}, mapped
		}
		log.Err(err).
			Str("func", "*deckRepository.CreateDeck").
			Str("user_id", deck.OwnerID).
			Msg("error creating deck")
		return models.Deck{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindDeckByID returns the deck or [ErrDeckNotFound].
func (r *deckRepository) FindDeckByID(ctx context.Context, deckID string) (models.Deck, error) {
	log := logger.FromContext(ctx)

	deck, err := scanDeck(r.db.QueryRowContext(ctx, findDeckByID, deckID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Deck{}, ErrDeckNotFound
	}
	if err != nil {
		if mapped := mapReferenceError(err, ErrDeckNotFound); errors.Is(mapped, ErrNotFound) {
			return models.Deck{}, mapped
		}
		log.Err(err).Str("func", "*deckRepository.FindDeckByID").Str("deck_id", deckID).Msg("error finding deck")
		return models.Deck{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deck, nil
}

// ListDecksByOwner returns the owner's decks, newest first. An owner without
// decks yields an empty slice.
func (r *deckRepository) ListDecksByOwner(ctx context.Context, ownerID string) ([]models.Deck, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listDecksByOwner, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*deckRepository.ListDecksByOwner").
			Str("user_id", ownerID).
			Msg("failed to execute query for listing decks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	decks := make([]models.Deck, 0, 16)
	for rows.Next() {
		deck, scanErr := scanDeck(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*deckRepository.ListDecksByOwner").Msg("failed to scan deck row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		decks = append(decks, deck)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*deckRepository.ListDecksByOwner").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return decks, nil
}

// RenameDeck sets the deck name and returns the updated row.
func (r *deckRepository) RenameDeck(ctx context.Context, deckID, name string) (models.Deck, error) {
	log := logger.FromContext(ctx)

	deck, err := scanDeck(r.db.QueryRowContext(ctx, renameDeck, name, deckID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Deck{}, ErrDeckNotFound
	}
	if err != nil {
		if mapped := mapReferenceError(err, ErrDeckNotFound); errors.Is(mapped, ErrNotFound) {
			return models.Deck{}, mapped
		}
		log.Err(err).Str("func", "*deckRepository.RenameDeck").Str("deck_id", deckID).Msg("error renaming deck")
		return models.Deck{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deck, nil
}

// DeleteDeck removes the deck row. Cards must be removed first.
func (r *deckRepository) DeleteDeck(ctx context.Context, deckID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteDeck, deckID)
	if err != nil {
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return ErrDeckNotFound
		}
		log.Err(err).Str("func", "*deckRepository.DeleteDeck").Str("deck_id", deckID).Msg("error deleting deck")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return ErrDeckNotFound
	}

	return nil
}

// DeleteOrphanedDecks removes decks whose owner row no longer exists.
func (r *deckRepository) DeleteOrphanedDecks(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteOrphanedDecks)
	if err != nil {
		log.Err(err).Str("func", "*deckRepository.DeleteOrphanedDecks").Msg("error sweeping orphaned decks")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, _ := result.RowsAffected()
	return n, nil
}
