package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-smart-cards/internal/store"
	"github.com/MKhiriev/go-smart-cards/internal/utils"
	"github.com/MKhiriev/go-smart-cards/models"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// testClock is a settable clock shared by the store and a service.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: testNow}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newMemoryStorages(t *testing.T, clock *testClock) *store.Storages {
	t.Helper()
	return store.NewMemoryStorages(store.NewMemoryStorage(utils.NewUUIDGenerator(), clock.Now))
}

func mustCreateUser(t *testing.T, storages *store.Storages, username string) models.User {
	t.Helper()
	user, err := storages.Users.CreateUser(context.Background(), models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return user
}

func mustCreateDeck(t *testing.T, storages *store.Storages, ownerID, name string, drafts ...models.CardDraft) models.Deck {
	t.Helper()
	deck, err := storages.Decks.CreateDeck(context.Background(), models.Deck{OwnerID: ownerID, Name: name})
	require.NoError(t, err)
	if len(drafts) > 0 {
		_, err = storages.Cards.CreateCards(context.Background(), deck.ID, drafts...)
		require.NoError(t, err)
	}
	return deck
}

func mustListCards(t *testing.T, storages *store.Storages, deckID string) []models.Card {
	t.Helper()
	cards, err := storages.Cards.ListCardsByDeck(context.Background(), deckID)
	require.NoError(t, err)
	return cards
}

func threeCards() []models.CardDraft {
	return []models.CardDraft{
		{Front: "one", Back: "하나"},
		{Front: "two", Back: "둘"},
		{Front: "three", Back: "셋"},
	}
}

// passThroughTx runs the callback of RunInTx against repos.
func passThroughTx(repos *store.Repositories) func(ctx context.Context, fn func(context.Context, *store.Repositories) error) error {
	return func(ctx context.Context, fn func(context.Context, *store.Repositories) error) error {
		return fn(ctx, repos)
	}
}
