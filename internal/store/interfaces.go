package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-smart-cards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their generation counters.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row. A duplicate
	// username or email yields [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns [ErrUserNotFound] when no row matches.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// FindUserByUsername returns [ErrUserNotFound] when no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// ExistsByUsernameOrEmail reports whether either value is taken.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// DeleteUser removes the user row only. Decks must be gone already.
	DeleteUser(ctx context.Context, userID string) error

	// ListExpiredUserIDs returns up to limit ids with expires_at <= now.
	ListExpiredUserIDs(ctx context.Context, now time.Time, limit int) ([]string, error)

	// GetQuota returns the stored counter state of the user.
	GetQuota(ctx context.Context, userID string) (models.Quota, error)

	// CommitGenerationCall atomically records one successful generation
	// call. When the window has expired the counter restarts at 1 and a new
	// window ending at now+window opens; otherwise the counter is
	// incremented and the reset time is kept. Returns [ErrQuotaExhausted]
	// when the window is open and the counter already reached limit.
	CommitGenerationCall(ctx context.Context, userID string, now time.Time, window time.Duration, limit int) (models.Quota, error)
}

// DeckRepository persists decks.
type DeckRepository interface {
	// CreateDeck inserts deck. An unknown owner yields [ErrUserNotFound].
	CreateDeck(ctx context.Context, deck models.Deck) (models.Deck, error)
	FindDeckByID(ctx context.Context, deckID string) (models.Deck, error)

	// ListDecksByOwner returns the owner's decks, newest first.
	ListDecksByOwner(ctx context.Context, ownerID string) ([]models.Deck, error)
	RenameDeck(ctx context.Context, deckID, name string) (models.Deck, error)
	DeleteDeck(ctx context.Context, deckID string) error

	// DeleteOrphanedDecks removes decks whose owner no longer exists.
	DeleteOrphanedDecks(ctx context.Context) (int64, error)
}

// CardRepository persists cards. Every deck-scoped method ignores ids that
// belong to other decks.
type CardRepository interface {
	// CreateCards inserts drafts into deckID in one statement. An unknown
	// deck yields [ErrDeckNotFound].
	CreateCards(ctx context.Context, deckID string, drafts ...models.CardDraft) ([]models.Card, error)
	FindCardByID(ctx context.Context, cardID string) (models.Card, error)

	// ListCardsByDeck returns the deck's cards ordered by creation time.
	ListCardsByDeck(ctx context.Context, deckID string) ([]models.Card, error)

	// UpdateCard applies the non-nil fields of update.
	UpdateCard(ctx context.Context, update models.CardUpdate) (models.Card, error)

	// UpdateCardsInDeck applies updates scoped to deckID and returns how many
	// rows changed.
	UpdateCardsInDeck(ctx context.Context, deckID string, updates ...models.CardUpdate) (int64, error)
	DeleteCard(ctx context.Context, cardID string) error

	// DeleteCardsInDeck removes cardIDs scoped to deckID.
	DeleteCardsInDeck(ctx context.Context, deckID string, cardIDs ...string) (int64, error)
	DeleteAllCardsInDeck(ctx context.Context, deckID string) (int64, error)

	// DeleteOrphanedCards removes cards whose deck no longer exists.
	DeleteOrphanedCards(ctx context.Context) (int64, error)
}

// Transactor runs fn with repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise,
// including when fn panics.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DBTX is the subset of *sql.DB and *sql.Tx used by the repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
