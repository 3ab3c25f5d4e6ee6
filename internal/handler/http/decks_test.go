package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-smart-cards/internal/service"
	"github.com/MKhiriev/go-smart-cards/internal/store"
	"github.com/MKhiriev/go-smart-cards/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withURLParam sets a chi URL parameter on r the way the router does.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newHandlerWithDecks(decks service.DeckService) *Handler {
	svcs := newMockServices()
	svcs.DeckService = decks
	return newTestHandler(svcs)
}

func deckRequest(method, target, body, userID, deckID string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req = withRequester(req, userID)
	if deckID != "" {
		req = withURLParam(req, "id", deckID)
	}
	return req
}

var basicsDeck = models.Deck{ID: "d1", OwnerID: "u1", Name: "Basics"}

// ─────────────────────────────────────────────
// list / create
// ─────────────────────────────────────────────

func TestListDecks(t *testing.T) {
	h := newHandlerWithDecks(&mockDeckService{
		listDecksFn: func(_ context.Context, ownerID string) ([]models.Deck, error) {
			assert.Equal(t, "u1", ownerID)
			return []models.Deck{basicsDeck, {ID: "d2", OwnerID: "u1", Name: "Verbs"}}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.listDecks(rec, deckRequest(http.MethodGet, "/api/decks", "", "u1", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var decks []models.Deck
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&decks))
	require.Len(t, decks, 2)
	assert.Equal(t, "Basics", decks[0].Name)
}

func TestListDecks_EmptyIsArray(t *testing.T) {
	h := newHandlerWithDecks(&mockDeckService{})

	rec := httptest.NewRecorder()
	h.listDecks(rec, deckRequest(http.MethodGet, "/api/decks", "", "u1", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListDecks_NoRequester(t *testing.T) {
	h := newHandlerWithDecks(&mockDeckService{})

	rec := httptest.NewRecorder()
	h.listDecks(rec, httptest.NewRequest(http.MethodGet, "/api/decks", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, kindUnauthenticated, decodeError(t, rec).Kind)
}

func TestCreateDeck_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantKind   string
	}{
		{
			name:       "created",
			body:       `{"name":"Basics"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "blank name",
			body:       `{"name":"  "}`,
			serviceErr: fmt.Errorf("%w: name is required", service.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantKind:   kindValidation,
		},
		{
			name:       "owner vanished",
			body:       `{"name":"Basics"}`,
			serviceErr: fmt.Errorf("error creating deck: %w", store.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
			wantKind:   kindNotFound,
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantKind:   kindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithDecks(&mockDeckService{
				createDeckFn: func(_ context.Context, ownerID, name string) (models.Deck, error) {
					if tt.serviceErr != nil {
						return models.Deck{}, tt.serviceErr
					}
					return models.Deck{ID: "d1", OwnerID: ownerID, Name: name}, nil
				},
			})

			rec := httptest.NewRecorder()
			h.createDeck(rec, deckRequest(http.MethodPost, "/api/decks", tt.body, "u1", ""))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, decodeError(t, rec).Kind)
				return
			}

			var deck models.Deck
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&deck))
			assert.Equal(t, basicsDeck, deck)
		})
	}
}

// ─────────────────────────────────────────────
// get / rename / delete
// ─────────────────────────────────────────────

func TestGetDeck(t *testing.T) {
	h := newHandlerWithDecks(&mockDeckService{
		getDeckFn: func(_ context.Context, requesterID, deckID string) (models.DeckWithCards, error) {
			assert.Equal(t, "u1", requesterID)
			assert.Equal(t, "d1", deckID)
			return models.DeckWithCards{
				Deck:  basicsDeck,
				Cards: []models.Card{{ID: "c1", DeckID: "d1", Front: "one", Back: "하나"}},
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.getDeck(rec, deckRequest(http.MethodGet, "/api/decks/d1", "", "u1", "d1"))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.DeckWithCards
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Basics", got.Deck.Name)
	require.Len(t, got.Cards, 1)
	assert.Equal(t, "하나", got.Cards[0].Back)
}

func TestDeckEndpoints_ErrorMapping(t *testing.T) {
	foreign := fmt.Errorf("%w: deck d1 is owned by another user", service.ErrUnauthorized)
	missing := fmt.Errorf("finding deck: %w", store.ErrDeckNotFound)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{name: "foreign deck", err: foreign, wantStatus: http.StatusForbidden, wantKind: kindUnauthorized},
		{name: "missing deck", err: missing, wantStatus: http.StatusNotFound, wantKind: kindNotFound},
		{name: "store failure", err: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError, wantKind: kindStoreError},
	}

	for _, tt := range tests {
		mock := &mockDeckService{
			getDeckFn: func(context.Context, string, string) (models.DeckWithCards, error) {
				return models.DeckWithCards{}, tt.err
			},
			renameDeckFn: func(context.Context, string, string, string) (models.Deck, error) {
				return models.Deck{}, tt.err
			},
			deleteDeckFn: func(context.Context, string, string) error {
				return tt.err
			},
			syncDeckFn: func(context.Context, string, string, models.DeckDraft) ([]models.Card, error) {
				return nil, tt.err
			},
		}
		h := newHandlerWithDecks(mock)

		endpoints := map[string]struct {
			fn     http.HandlerFunc
			method string
			body   string
		}{
			"get":    {h.getDeck, http.MethodGet, ""},
			"rename": {h.renameDeck, http.MethodPut, `{"name":"New"}`},
			"delete": {h.deleteDeck, http.MethodDelete, ""},
			"sync":   {h.syncDeck, http.MethodPost, `{"cardsToCreate":[]}`},
		}

		for name, ep := range endpoints {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				rec := httptest.NewRecorder()
				ep.fn(rec, deckRequest(ep.method, "/api/decks/d1", ep.body, "u2", "d1"))

				require.Equal(t, tt.wantStatus, rec.Code)
				assert.Equal(t, tt.wantKind, decodeError(t, rec).Kind)
			})
		}
	}
}

func TestRenameDeck(t *testing.T) {
	h := newHandlerWithDecks(&mockDeckService{
		renameDeckFn: func(_ context.Context, requesterID, deckID, name string) (models.Deck, error) {
			assert.Equal(t, "u1", requesterID)
			assert.Equal(t, "d1", deckID)
			return models.Deck{ID: deckID, OwnerID: requesterID, Name: name}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.renameDeck(rec, deckRequest(http.MethodPut, "/api/decks/d1", `{"name":"Numbers"}`, "u1", "d1"))

	require.Equal(t, http.StatusOK, rec.Code)

	var deck models.Deck
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&deck))
	assert.Equal(t, "Numbers", deck.Name)
}

func TestDeleteDeck(t *testing.T) {
	called := false
	h := newHandlerWithDecks(&mockDeckService{
		deleteDeckFn: func(_ context.Context, requesterID, deckID string) error {
			called = true
			assert.Equal(t, "u1", requesterID)
			assert.Equal(t, "d1", deckID)
			return nil
		},
	})

	rec := httptest.NewRecorder()
	h.deleteDeck(rec, deckRequest(http.MethodDelete, "/api/decks/d1", "", "u1", "d1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.JSONEq(t, `{"message":"Deck removed"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// sync
// ─────────────────────────────────────────────

func TestSyncDeck_DecodesDraft(t *testing.T) {
	body := `{
		"cardsToCreate": [{"front":"three","back":"셋"}],
		"cardsToUpdate": [{"_id":"c1","back":"하나!"}],
		"cardsToDelete": ["c2"]
	}`

	h := newHandlerWithDecks(&mockDeckService{
		syncDeckFn: func(_ context.Context, requesterID, deckID string, draft models.DeckDraft) ([]models.Card, error) {
			assert.Equal(t, "u1", requesterID)
			assert.Equal(t, "d1", deckID)

			require.Len(t, draft.ToCreate, 1)
			assert.Equal(t, models.CardDraft{Front: "three", Back: "셋"}, draft.ToCreate[0])

			require.Len(t, draft.ToUpdate, 1)
			assert.Equal(t, "c1", draft.ToUpdate[0].ID)
			assert.Nil(t, draft.ToUpdate[0].Front)
			require.NotNil(t, draft.ToUpdate[0].Back)
			assert.Equal(t, "하나!", *draft.ToUpdate[0].Back)

			assert.Equal(t, []string{"c2"}, draft.ToDelete)

			return []models.Card{
				{ID: "c1", DeckID: "d1", Front: "one", Back: "하나!"},
				{ID: "c3", DeckID: "d1", Front: "three", Back: "셋"},
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.syncDeck(rec, deckRequest(http.MethodPost, "/api/decks/d1/sync", body, "u1", "d1"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SyncResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Cards, 2)
}

func TestSyncDeck_MalformedBody(t *testing.T) {
	h := newHandlerWithDecks(&mockDeckService{
		syncDeckFn: func(context.Context, string, string, models.DeckDraft) ([]models.Card, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	h.syncDeck(rec, deckRequest(http.MethodPost, "/api/decks/d1/sync", `{"cardsToDelete": "c1"}`, "u1", "d1"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, kindValidation, decodeError(t, rec).Kind)
}
