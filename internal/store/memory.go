package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-smart-cards/models"
)

// MemoryStorage is an in-process backend with the same observable semantics
// as the PostgreSQL repositories, including uniqueness, foreign keys and the
// atomic generation counter. It backs the server when no DSN is configured
// and the service tests.
//
// Single operations lock the state for their duration. RunInTx holds the
// lock for the whole callback and works on a copy that replaces the live
// state only on success.
type MemoryStorage struct {
	mu          sync.Mutex
	state       *memoryState
	idGenerator IDGenerator
	now         func() time.Time
}

type memoryState struct {
	users map[string]memUser
	decks map[string]memDeck
	cards map[string]memCard
	seq   int64
}

type memUser struct {
	models.User
	seq int64
}

type memDeck struct {
	models.Deck
	seq int64
}

type memCard struct {
	models.Card
	seq int64
}

// NewMemoryStorage returns an empty in-memory backend. now stamps
// created_at/updated_at; nil means time.Now.
func NewMemoryStorage(idGenerator IDGenerator, now func() time.Time) *MemoryStorage {
	if now == nil {
		now = time.Now
	}
	return &MemoryStorage{
		state: &memoryState{
			users: make(map[string]memUser),
			decks: make(map[string]memDeck),
			cards: make(map[string]memCard),
		},
		idGenerator: idGenerator,
		now:         now,
	}
}

func (s *memoryState) clone() *memoryState {
	cp := &memoryState{
		users: make(map[string]memUser, len(s.users)),
		decks: make(map[string]memDeck, len(s.decks)),
		cards: make(map[string]memCard, len(s.cards)),
		seq:   s.seq,
	}
	for k, v := range s.users {
		cp.users[k] = v
	}
	for k, v := range s.decks {
		cp.decks[k] = v
	}
	for k, v := range s.cards {
		cp.cards[k] = v
	}
	return cp
}

func (s *memoryState) next() int64 {
	s.seq++
	return s.seq
}

// Repositories returns autocommit repositories over the live state.
func (m *MemoryStorage) Repositories() *Repositories {
	return m.repositories(func(fn func(st *memoryState) error) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		return fn(m.state)
	})
}

// RunInTx implements [Transactor].
func (m *MemoryStorage) RunInTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.state.clone()
	repos := m.repositories(func(op func(st *memoryState) error) error {
		return op(snapshot)
	})

	if err := fn(ctx, repos); err != nil {
		return err
	}

	m.state = snapshot
	return nil
}

func (m *MemoryStorage) repositories(run func(fn func(st *memoryState) error) error) *Repositories {
	base := memRepo{run: run, idGenerator: m.idGenerator, now: m.now}
	return &Repositories{
		Users: memUserRepository{base},
		Decks: memDeckRepository{base},
		Cards: memCardRepository{base},
	}
}

type memRepo struct {
	run         func(fn func(st *memoryState) error) error
	idGenerator IDGenerator
	now         func() time.Time
}

func (r memRepo) id(id string) string {
	if id != "" {
		return id
	}
	return r.idGenerator.Generate()
}

// ── users ────────────────────────────────────────────────────────────────────

type memUserRepository struct{ memRepo }

func (r memUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	var created models.User
	err := r.run(func(st *memoryState) error {
		for _, u := range st.users {
			if u.Username == user.Username || u.Email == user.Email {
				return ErrUserAlreadyExists
			}
		}

		now := r.now()
		user.ID = r.id(user.ID)
		user.APICallCount = 0
		user.APICallResetAt = nil
		user.CreatedAt, user.UpdatedAt = now, now
		st.users[user.ID] = memUser{User: user, seq: st.next()}
		created = user
		return nil
	})
	return created, err
}

func (r memUserRepository) FindUserByID(_ context.Context, userID string) (models.User, error) {
	var found models.User
	err := r.run(func(st *memoryState) error {
		u, ok := st.users[userID]
		if !ok {
			return ErrUserNotFound
		}
		found = u.User
		return nil
	})
	return found, err
}

func (r memUserRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	var found models.User
	err := r.run(func(st *memoryState) error {
		for _, u := range st.users {
			if u.Username == username {
				found = u.User
				return nil
			}
		}
		return ErrUserNotFound
	})
	return found, err
}

func (r memUserRepository) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.run(func(st *memoryState) error {
		for _, u := range st.users {
			if u.Username == username || u.Email == email {
				exists = true
				return nil
			}
		}
		return nil
	})
	return exists, err
}

func (r memUserRepository) DeleteUser(_ context.Context, userID string) error {
	return r.run(func(st *memoryState) error {
		if _, ok := st.users[userID]; !ok {
			return ErrUserNotFound
		}
		for _, d := range st.decks {
			if d.OwnerID == userID {
				return fmt.Errorf("%w: user %s still owns deck %s", ErrExecutingStatement, userID, d.ID)
			}
		}
		delete(st.users, userID)
		return nil
	})
}

func (r memUserRepository) ListExpiredUserIDs(_ context.Context, now time.Time, limit int) ([]string, error) {
	var ids []string
	err := r.run(func(st *memoryState) error {
		expired := make([]memUser, 0)
		for _, u := range st.users {
			if u.ExpiresAt != nil && !u.ExpiresAt.After(now) {
				expired = append(expired, u)
			}
		}
		slices.SortFunc(expired, func(a, b memUser) int {
			if c := a.ExpiresAt.Compare(*b.ExpiresAt); c != 0 {
				return c
			}
			return int(a.seq - b.seq)
		})

		ids = make([]string, 0, min(limit, len(expired)))
		for _, u := range expired {
			if len(ids) == limit {
				break
			}
			ids = append(ids, u.ID)
		}
		return nil
	})
	return ids, err
}

func (r memUserRepository) GetQuota(_ context.Context, userID string) (models.Quota, error) {
	var quota models.Quota
	err := r.run(func(st *memoryState) error {
		u, ok := st.users[userID]
		if !ok {
			return ErrUserNotFound
		}
		quota = u.Quota()
		return nil
	})
	return quota, err
}

func (r memUserRepository) CommitGenerationCall(_ context.Context, userID string, now time.Time, window time.Duration, limit int) (models.Quota, error) {
	var quota models.Quota
	err := r.run(func(st *memoryState) error {
		u, ok := st.users[userID]
		if !ok {
			return ErrUserNotFound
		}

		current := u.Quota()
		switch {
		case current.Expired(now):
			resetAt := now.Add(window)
			u.APICallCount = 1
			u.APICallResetAt = &resetAt
		case current.CallCount < limit:
			u.APICallCount++
		default:
			return ErrQuotaExhausted
		}

		u.UpdatedAt = r.now()
		st.users[userID] = u
		quota = u.Quota()
		return nil
	})
	return quota, err
}

// ── decks ────────────────────────────────────────────────────────────────────

type memDeckRepository struct{ memRepo }

func (r memDeckRepository) CreateDeck(_ context.Context, deck models.Deck) (models.Deck, error) {
	var created models.Deck
	err := r.run(func(st *memoryState) error {
		if _, ok := st.users[deck.OwnerID]; !ok {
			return ErrUserNotFound
		}
		if strings.TrimSpace(deck.Name) == "" {
			return fmt.Errorf("%w: deck name must not be blank", ErrExecutingStatement)
		}

		now := r.now()
		deck.ID = r.id(deck.ID)
		deck.CreatedAt, deck.UpdatedAt = now, now
		st.decks[deck.ID] = memDeck{Deck: deck, seq: st.next()}
		created = deck
		return nil
	})
	return created, err
}

func (r memDeckRepository) FindDeckByID(_ context.Context, deckID string) (models.Deck, error) {
	var found models.Deck
	err := r.run(func(st *memoryState) error {
		d, ok := st.decks[deckID]
		if !ok {
			return ErrDeckNotFound
		}
		found = d.Deck
		return nil
	})
	return found, err
}

func (r memDeckRepository) ListDecksByOwner(_ context.Context, ownerID string) ([]models.Deck, error) {
	var decks []models.Deck
	err := r.run(func(st *memoryState) error {
		owned := make([]memDeck, 0)
		for _, d := range st.decks {
			if d.OwnerID == ownerID {
				owned = append(owned, d)
			}
		}
		slices.SortFunc(owned, func(a, b memDeck) int {
			if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
				return c
			}
			return int(b.seq - a.seq)
		})

		decks = make([]models.Deck, 0, len(owned))
		for _, d := range owned {
			decks = append(decks, d.Deck)
		}
		return nil
	})
	return decks, err
}

func (r memDeckRepository) RenameDeck(_ context.Context, deckID, name string) (models.Deck, error) {
	var renamed models.Deck
	err := r.run(func(st *memoryState) error {
		d, ok := st.decks[deckID]
		if !ok {
			return ErrDeckNotFound
		}
		d.Name = name
		d.UpdatedAt = r.now()
		st.decks[deckID] = d
		renamed = d.Deck
		return nil
	})
	return renamed, err
}

func (r memDeckRepository) DeleteDeck(_ context.Context, deckID string) error {
	return r.run(func(st *memoryState) error {
		if _, ok := st.decks[deckID]; !ok {
			return ErrDeckNotFound
		}
		for _, c := range st.cards {
			if c.DeckID == deckID {
				return fmt.Errorf("%w: deck %s still has card %s", ErrExecutingStatement, deckID, c.ID)
			}
		}
		delete(st.decks, deckID)
		return nil
	})
}

func (r memDeckRepository) DeleteOrphanedDecks(_ context.Context) (int64, error) {
	var n int64
	err := r.run(func(st *memoryState) error {
		for id, d := range st.decks {
			if _, ok := st.users[d.OwnerID]; !ok {
				delete(st.decks, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

// ── cards ────────────────────────────────────────────────────────────────────

type memCardRepository struct{ memRepo }

func (r memCardRepository) CreateCards(_ context.Context, deckID string, drafts ...models.CardDraft) ([]models.Card, error) {
	created := make([]models.Card, 0, len(drafts))
	if len(drafts) == 0 {
		return created, nil
	}

	err := r.run(func(st *memoryState) error {
		if _, ok := st.decks[deckID]; !ok {
			return ErrDeckNotFound
		}

		now := r.now()
		for _, draft := range drafts {
			card := models.Card{
				ID:        r.idGenerator.Generate(),
				DeckID:    deckID,
				Front:     draft.Front,
				Back:      draft.Back,
				CreatedAt: now,
				UpdatedAt: now,
			}
			st.cards[card.ID] = memCard{Card: card, seq: st.next()}
			created = append(created, card)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r memCardRepository) FindCardByID(_ context.Context, cardID string) (models.Card, error) {
	var found models.Card
	err := r.run(func(st *memoryState) error {
		c, ok := st.cards[cardID]
		if !ok {
			return ErrCardNotFound
		}
		found = c.Card
		return nil
	})
	return found, err
}

func (r memCardRepository) ListCardsByDeck(_ context.Context, deckID string) ([]models.Card, error) {
	var cards []models.Card
	err := r.run(func(st *memoryState) error {
		inDeck := make([]memCard, 0)
		for _, c := range st.cards {
			if c.DeckID == deckID {
				inDeck = append(inDeck, c)
			}
		}
		slices.SortFunc(inDeck, func(a, b memCard) int {
			if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
				return c
			}
			return int(a.seq - b.seq)
		})

		cards = make([]models.Card, 0, len(inDeck))
		for _, c := range inDeck {
			cards = append(cards, c.Card)
		}
		return nil
	})
	return cards, err
}

func applyCardUpdate(c *memCard, update models.CardUpdate, now time.Time) {
	if update.Front != nil {
		c.Front = *update.Front
	}
	if update.Back != nil {
		c.Back = *update.Back
	}
	c.UpdatedAt = now
}

func (r memCardRepository) UpdateCard(_ context.Context, update models.CardUpdate) (models.Card, error) {
	var updated models.Card
	err := r.run(func(st *memoryState) error {
		c, ok := st.cards[update.ID]
		if !ok {
			return ErrCardNotFound
		}
		if !update.IsEmpty() {
			applyCardUpdate(&c, update, r.now())
			st.cards[update.ID] = c
		}
		updated = c.Card
		return nil
	})
	return updated, err
}

func (r memCardRepository) UpdateCardsInDeck(_ context.Context, deckID string, updates ...models.CardUpdate) (int64, error) {
	var n int64
	err := r.run(func(st *memoryState) error {
		now := r.now()
		for _, update := range updates {
			c, ok := st.cards[update.ID]
			if !ok || c.DeckID != deckID || update.IsEmpty() {
				continue
			}
			applyCardUpdate(&c, update, now)
			st.cards[update.ID] = c
			n++
		}
		return nil
	})
	return n, err
}

func (r memCardRepository) DeleteCard(_ context.Context, cardID string) error {
	return r.run(func(st *memoryState) error {
		if _, ok := st.cards[cardID]; !ok {
			return ErrCardNotFound
		}
		delete(st.cards, cardID)
		return nil
	})
}

func (r memCardRepository) DeleteCardsInDeck(_ context.Context, deckID string, cardIDs ...string) (int64, error) {
	var n int64
	err := r.run(func(st *memoryState) error {
		for _, id := range cardIDs {
			if c, ok := st.cards[id]; ok && c.DeckID == deckID {
				delete(st.cards, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r memCardRepository) DeleteAllCardsInDeck(_ context.Context, deckID string) (int64, error) {
	var n int64
	err := r.run(func(st *memoryState) error {
		for id, c := range st.cards {
			if c.DeckID == deckID {
				delete(st.cards, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r memCardRepository) DeleteOrphanedCards(_ context.Context) (int64, error) {
	var n int64
	err := r.run(func(st *memoryState) error {
		for id, c := range st.cards {
			if _, ok := st.decks[c.DeckID]; !ok {
				delete(st.cards, id)
				n++
			}
		}
		return nil
	})
	return n, err
}
