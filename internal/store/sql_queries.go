package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-smart-cards/internal/utils"
	"github.com/MKhiriev/go-smart-cards/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	userColumns = `id, username, email, password_hash, is_guest, expires_at, api_call_count, api_call_reset_at, created_at, updated_at`
	deckColumns = `id, owner_id, name, created_at, updated_at`
	cardColumns = `id, deck_id, front, back, created_at, updated_at`
)

const (
	createUser = `INSERT INTO users (id, username, email, password_hash, is_guest, expires_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	existsByUsernameOrEmail = `SELECT EXISTS (
        SELECT 1 FROM users WHERE username = $1 OR email = $2
    );`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	listExpiredUserIDs = `SELECT id
    FROM users
    WHERE expires_at IS NOT NULL AND expires_at <= $1
    ORDER BY expires_at
    LIMIT $2;`

	getQuota = `SELECT api_call_count, api_call_reset_at
    FROM users
    WHERE id = $1;`
)

const (
	createDeck = `INSERT INTO decks (id, owner_id, name)
    VALUES ($1, $2, $3)
    RETURNING ` + deckColumns + `;`

	findDeckByID = `SELECT ` + deckColumns + `
    FROM decks
    WHERE id = $1;`

	listDecksByOwner = `SELECT ` + deckColumns + `
    FROM decks
    WHERE owner_id = $1
    ORDER BY created_at DESC, id DESC;`

	renameDeck = `UPDATE decks
    SET name = $1, updated_at = NOW()
    WHERE id = $2
    RETURNING ` + deckColumns + `;`

	deleteDeck = `DELETE FROM decks WHERE id = $1;`

	deleteOrphanedDecks = `DELETE FROM decks d
    WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.id = d.owner_id);`
)

const (
	findCardByID = `SELECT ` + cardColumns + `
    FROM cards
    WHERE id = $1;`

	listCardsByDeck = `SELECT ` + cardColumns + `
    FROM cards
    WHERE deck_id = $1
    ORDER BY created_at, id;`

	deleteCard = `DELETE FROM cards WHERE id = $1;`

	deleteAllCardsInDeck = `DELETE FROM cards WHERE deck_id = $1;`

	deleteOrphanedCards = `DELETE FROM cards c
    WHERE NOT EXISTS (SELECT 1 FROM decks d WHERE d.id = c.deck_id);`
)

// buildCommitGenerationCallQuery builds the single conditional UPDATE that
// records a successful generation call. The WHERE clause only matches while
// the window has expired or the counter is below limit, so concurrent callers
// can never push the count past limit.
func buildCommitGenerationCallQuery(userID string, now time.Time, window time.Duration, limit int) (string, []any, error) {
	expired := sq.Or{
		sq.Eq{"api_call_reset_at": nil},
		sq.LtOrEq{"api_call_reset_at": now},
	}

	query, args, err := psql.
		Update("users").
		Set("api_call_count", sq.Expr(
			"CASE WHEN api_call_reset_at IS NULL OR api_call_reset_at <= ? THEN 1 ELSE api_call_count + 1 END", now)).
		Set("api_call_reset_at", sq.Expr(
			"CASE WHEN api_call_reset_at IS NULL OR api_call_reset_at <= ? THEN ?::timestamptz ELSE api_call_reset_at END", now, now.Add(window))).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		Where(sq.Or{expired, sq.Lt{"api_call_count": limit}}).
		Suffix("RETURNING api_call_count, api_call_reset_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCreateCardsQuery builds one multi-row INSERT for drafts. Ids are taken
// from ids positionally.
func buildCreateCardsQuery(deckID string, ids []string, drafts []models.CardDraft) (string, []any, error) {
	if len(drafts) == 0 || len(ids) != len(drafts) {
		return "", nil, fmt.Errorf("%w: %d ids for %d cards", ErrBuildingSQLQuery, len(ids), len(drafts))
	}

	insert := psql.Insert("cards").Columns("id", "deck_id", "front", "back")
	for i, draft := range drafts {
		insert = insert.Values(ids[i], deckID, draft.Front, draft.Back)
	}

	query, args, err := insert.Suffix("RETURNING " + cardColumns).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateCardQuery builds a partial UPDATE writing only the non-nil fields
// of update. A non-empty deckID scopes the update to that deck. When returning
// is true the updated row is returned.
func buildUpdateCardQuery(update models.CardUpdate, deckID string, returning bool) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: card update has no fields", ErrBuildingSQLQuery)
	}

	builder := psql.Update("cards").Set("updated_at", sq.Expr("NOW()"))
	if update.Front != nil {
		builder = builder.Set("front", *update.Front)
	}
	if update.Back != nil {
		builder = builder.Set("back", *update.Back)
	}

	builder = builder.Where(sq.Eq{"id": update.ID})
	if deckID != "" {
		builder = builder.Where(sq.Eq{"deck_id": deckID})
	}
	if returning {
		builder = builder.Suffix("RETURNING " + cardColumns)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteCardsInDeckQuery builds a DELETE of cardIDs scoped to deckID.
// Malformed ids can never match a row and are dropped before the IN list is
// built. ok is false when nothing is left to delete.
func buildDeleteCardsInDeckQuery(deckID string, cardIDs []string) (query string, args []any, ok bool, err error) {
	valid := validUUIDs(cardIDs)
	if len(valid) == 0 {
		return "", nil, false, nil
	}

	query, args, err = psql.
		Delete("cards").
		Where(sq.Eq{"deck_id": deckID}).
		Where(sq.Eq{"id": valid}).
		ToSql()
	if err != nil {
		return "", nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, true, nil
}

func validUUIDs(ids []string) []string {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if utils.IsValidUUID(id) {
			valid = append(valid, id)
		}
	}
	return valid
}
