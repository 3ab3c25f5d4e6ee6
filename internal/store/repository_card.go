package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/utils"
	"github.com/MKhiriev/go-smart-cards/models"
	"github.com/jackc/pgerrcode"
)

// cardRepository is the PostgreSQL-backed implementation of [CardRepository].
type cardRepository struct {
	db          DBTX
	idGenerator IDGenerator
	logger      *logger.Logger
}

// NewCardRepository constructs a [CardRepository] over db.
func NewCardRepository(db DBTX, idGenerator IDGenerator, logger *logger.Logger) CardRepository {
	return &cardRepository{
		db:          db,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

func scanCard(row rowScanner) (models.Card, error) {
	var card models.Card
	err := row.Scan(&card.ID, &card.DeckID, &card.Front, &card.Back, &card.CreatedAt, &card.UpdatedAt)
	return card, err
}

func (r *cardRepository) queryCards(ctx context.Context, funcName, query string, args ...any) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return nil, ErrDeckNotFound
		}
		log.Err(err).Str("func", funcName).Msg("failed to execute card query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cards := make([]models.Card, 0, 32)
	for rows.Next() {
		card, scanErr := scanCard(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan card row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		cards = append(cards, card)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		// pgx reports INSERT ... RETURNING constraint failures while iterating
		if mapped := mapReferenceError(rowsErr, ErrDeckNotFound); errors.Is(mapped, ErrNotFound) {
			return nil, mapped
		}
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return cards, nil
}

// CreateCards inserts drafts into deckID with one multi-row INSERT and returns
// the stored cards. No drafts is a no-op.
func (r *cardRepository) CreateCards(ctx context.Context, deckID string, drafts ...models.CardDraft) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	if len(drafts) == 0 {
		return []models.Card{}, nil
	}
	if !utils.IsValidUUID(deckID) {
		return nil, ErrDeckNotFound
	}

	ids := make([]string, len(drafts))
	for i := range drafts {
		ids[i] = r.idGenerator.Generate()
	}

	query, args, err := buildCreateCardsQuery(deckID, ids, drafts)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.CreateCards").Str("deck_id", deckID).Msg("failed to create query")
		return nil, err
	}

	return r.queryCards(ctx, "*cardRepository.CreateCards", query, args...)
}

// FindCardByID returns the card or [ErrCardNotFound].
func (r *cardRepository) FindCardByID(ctx context.Context, cardID string) (models.Card, error) {
	log := logger.FromContext(ctx)

	card, err := scanCard(r.db.QueryRowContext(ctx, findCardByID, cardID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Card{}, ErrCardNotFound
	}
	if err != nil {
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return models.Card{}, ErrCardNotFound
		}
		log.Err(err).Str("func", "*cardRepository.FindCardByID").Str("card_id", cardID).Msg("error finding card")
		return models.Card{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return card, nil
}

// ListCardsByDeck returns the cards of deckID in creation order.
func (r *cardRepository) ListCardsByDeck(ctx context.Context, deckID string) ([]models.Card, error) {
	if !utils.IsValidUUID(deckID) {
		return []models.Card{}, nil
	}
	return r.queryCards(ctx, "*cardRepository.ListCardsByDeck", listCardsByDeck, deckID)
}

// UpdateCard writes the non-nil fields of update and returns the stored card.
// An update without fields returns the card unchanged.
func (r *cardRepository) UpdateCard(ctx context.Context, update models.CardUpdate) (models.Card, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.FindCardByID(ctx, update.ID)
	}
	if !utils.IsValidUUID(update.ID) {
		return models.Card{}, ErrCardNotFound
	}

	query, args, err := buildUpdateCardQuery(update, "", true)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.UpdateCard").Msg("failed to create query")
		return models.Card{}, err
	}

	card, err := scanCard(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Card{}, ErrCardNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.UpdateCard").Str("card_id", update.ID).Msg("error updating card")
		return models.Card{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return card, nil
}

// UpdateCardsInDeck applies each update scoped to deckID. Updates for cards
// of other decks, malformed ids and empty updates change nothing.
func (r *cardRepository) UpdateCardsInDeck(ctx context.Context, deckID string, updates ...models.CardUpdate) (int64, error) {
	log := logger.FromContext(ctx)

	var total int64
	for idx, update := range updates {
		if update.IsEmpty() || !utils.IsValidUUID(update.ID) {
			continue
		}

		query, args, err := buildUpdateCardQuery(update, deckID, false)
		if err != nil {
			log.Err(err).Str("func", "*cardRepository.UpdateCardsInDeck").Int("iteration", idx).Msg("failed to create query")
			return total, err
		}

		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "*cardRepository.UpdateCardsInDeck").
				Str("deck_id", deckID).
				Str("card_id", update.ID).
				Msg("error updating card in deck")
			return total, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		n, _ := result.RowsAffected()
		total += n
	}

	return total, nil
}

// DeleteCard removes one card, or returns [ErrCardNotFound].
func (r *cardRepository) DeleteCard(ctx context.Context, cardID string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidUUID(cardID) {
		return ErrCardNotFound
	}

	result, err := r.db.ExecContext(ctx, deleteCard, cardID)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.DeleteCard").Str("card_id", cardID).Msg("error deleting card")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return ErrCardNotFound
	}

	return nil
}

// DeleteCardsInDeck removes cardIDs that belong to deckID.
func (r *cardRepository) DeleteCardsInDeck(ctx context.Context, deckID string, cardIDs ...string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, ok, err := buildDeleteCardsInDeckQuery(deckID, cardIDs)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.DeleteCardsInDeck").Msg("failed to create query")
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.DeleteCardsInDeck").Str("deck_id", deckID).Msg("error deleting cards")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, _ := result.RowsAffected()
	return n, nil
}

// DeleteAllCardsInDeck removes every card of deckID.
func (r *cardRepository) DeleteAllCardsInDeck(ctx context.Context, deckID string) (int64, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidUUID(deckID) {
		return 0, nil
	}

	result, err := r.db.ExecContext(ctx, deleteAllCardsInDeck, deckID)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.DeleteAllCardsInDeck").Str("deck_id", deckID).Msg("error deleting deck cards")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, _ := result.RowsAffected()
	return n, nil
}

// DeleteOrphanedCards removes cards whose deck row no longer exists.
func (r *cardRepository) DeleteOrphanedCards(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteOrphanedCards)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.DeleteOrphanedCards").Msg("error sweeping orphaned cards")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, _ := result.RowsAffected()
	return n, nil
}
