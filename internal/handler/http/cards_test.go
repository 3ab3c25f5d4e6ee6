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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithCards(cards service.CardService) *Handler {
	svcs := newMockServices()
	svcs.CardService = cards
	return newTestHandler(svcs)
}

func cardRequest(method, target, body, userID, cardID string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = withRequester(req, userID)
	if cardID != "" {
		req = withURLParam(req, "id", cardID)
	}
	return req
}

func TestCreateCard_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantKind   string
	}{
		{
			name:       "created",
			body:       `{"deckId":"d1","front":"water","back":"물"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "foreign deck",
			body:       `{"deckId":"d9","front":"water","back":"물"}`,
			serviceErr: fmt.Errorf("%w: deck d9 is owned by another user", service.ErrUnauthorized),
			wantStatus: http.StatusForbidden,
			wantKind:   kindUnauthorized,
		},
		{
			name:       "missing deck",
			body:       `{"deckId":"nope","front":"water","back":"물"}`,
			serviceErr: store.ErrDeckNotFound,
			wantStatus: http.StatusNotFound,
			wantKind:   kindNotFound,
		},
		{
			name:       "blank back",
			body:       `{"deckId":"d1","front":"water","back":" "}`,
			serviceErr: fmt.Errorf("%w: back is required", service.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantKind:   kindValidation,
		},
		{
			name:       "malformed body",
			body:       `[]`,
			wantStatus: http.StatusBadRequest,
			wantKind:   kindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithCards(&mockCardService{
				createCardFn: func(_ context.Context, requesterID string, req models.CreateCardRequest) (models.Card, error) {
					assert.Equal(t, "u1", requesterID)
					if tt.serviceErr != nil {
						return models.Card{}, tt.serviceErr
					}
					return models.Card{ID: "c1", DeckID: req.DeckID, Front: req.Front, Back: req.Back}, nil
				},
			})

			rec := httptest.NewRecorder()
			h.createCard(rec, cardRequest(http.MethodPost, "/api/cards", tt.body, "u1", ""))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, decodeError(t, rec).Kind)
				return
			}

			var card models.Card
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&card))
			assert.Equal(t, models.Card{ID: "c1", DeckID: "d1", Front: "water", Back: "물"}, card)
		})
	}
}

func TestUpdateCard_IDComesFromPath(t *testing.T) {
	h := newHandlerWithCards(&mockCardService{
		updateCardFn: func(_ context.Context, requesterID string, u models.CardUpdate) (models.Card, error) {
			assert.Equal(t, "u1", requesterID)
			assert.Equal(t, "c1", u.ID)
			assert.Nil(t, u.Back)
			require.NotNil(t, u.Front)
			return models.Card{ID: u.ID, DeckID: "d1", Front: *u.Front, Back: "물"}, nil
		},
	})

	// the body id is ignored in favour of the path
	rec := httptest.NewRecorder()
	h.updateCard(rec, cardRequest(http.MethodPut, "/api/cards/c1", `{"_id":"c9","front":"cold water"}`, "u1", "c1"))

	require.Equal(t, http.StatusOK, rec.Code)

	var card models.Card
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&card))
	assert.Equal(t, "cold water", card.Front)
	assert.Equal(t, "c1", card.ID)
}

func TestUpdateCard_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "foreign card", err: service.ErrUnauthorized, wantStatus: http.StatusForbidden},
		{name: "missing card", err: store.ErrCardNotFound, wantStatus: http.StatusNotFound},
		{name: "store failure", err: store.ErrExecutingStatement, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithCards(&mockCardService{
				updateCardFn: func(context.Context, string, models.CardUpdate) (models.Card, error) {
					return models.Card{}, tt.err
				},
			})

			rec := httptest.NewRecorder()
			h.updateCard(rec, cardRequest(http.MethodPut, "/api/cards/c1", `{"back":"x"}`, "u1", "c1"))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteCard(t *testing.T) {
	h := newHandlerWithCards(&mockCardService{
		deleteCardFn: func(_ context.Context, requesterID, cardID string) error {
			assert.Equal(t, "u1", requesterID)
			assert.Equal(t, "c1", cardID)
			return nil
		},
	})

	rec := httptest.NewRecorder()
	h.deleteCard(rec, cardRequest(http.MethodDelete, "/api/cards/c1", "", "u1", "c1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Card removed"}`, rec.Body.String())
}

func TestDeleteCard_NotFoundMessage(t *testing.T) {
	h := newHandlerWithCards(&mockCardService{
		deleteCardFn: func(context.Context, string, string) error {
			return fmt.Errorf("deleting card: %w", store.ErrCardNotFound)
		},
	})

	rec := httptest.NewRecorder()
	h.deleteCard(rec, cardRequest(http.MethodDelete, "/api/cards/c1", "", "u1", "c1"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Card not found", decodeError(t, rec).Message)
}
