package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-smart-cards/models"
)

type AuthService interface {
	Register(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateGuest provisions an expiring guest account seeded with the demo
	// deck. A seeding failure does not fail the call.
	CreateGuest(ctx context.Context) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate resolves tokenString to a live user. Invalid or expired
	// tokens and deleted users all yield ErrTokenIsExpiredOrInvalid.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// DeckService manages decks on behalf of an authenticated requester. Every
// method that takes a deckID checks that the requester owns the deck.
type DeckService interface {
	CreateDeck(ctx context.Context, ownerID, name string) (models.Deck, error)
	ListDecks(ctx context.Context, ownerID string) ([]models.Deck, error)
	GetDeck(ctx context.Context, requesterID, deckID string) (models.DeckWithCards, error)
	RenameDeck(ctx context.Context, requesterID, deckID, name string) (models.Deck, error)

	// DeleteDeck removes the deck and all of its cards in one transaction.
	DeleteDeck(ctx context.Context, requesterID, deckID string) error

	// SyncDeckDraft applies deletes, updates and inserts of draft in one
	// transaction and returns the resulting card set.
	SyncDeckDraft(ctx context.Context, requesterID, deckID string, draft models.DeckDraft) ([]models.Card, error)
}

// CardService manages single cards. Ownership is resolved through the
// card's deck.
type CardService interface {
	CreateCard(ctx context.Context, requesterID string, req models.CreateCardRequest) (models.Card, error)
	UpdateCard(ctx context.Context, requesterID string, update models.CardUpdate) (models.Card, error)
	DeleteCard(ctx context.Context, requesterID, cardID string) error
}

type UserService interface {
	// DeleteUser removes userID with all of its decks and cards. The user
	// row is kept when any deck cascade fails.
	DeleteUser(ctx context.Context, requesterID, userID string) error

	// PurgeExpiredUsers cascades up to batch users whose expiry is at or
	// before now and returns how many were removed.
	PurgeExpiredUsers(ctx context.Context, now time.Time, batch int) (int, error)

	// ReconcileOrphans removes cards without a deck, then decks without an
	// owner.
	ReconcileOrphans(ctx context.Context) (models.OrphanSweep, error)
}

type GenerationService interface {
	RequestGeneration(ctx context.Context, userID string, req models.StemRequest) (models.StemResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
