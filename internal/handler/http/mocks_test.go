package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-smart-cards/internal/config"
	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/service"
	"github.com/MKhiriev/go-smart-cards/internal/utils"
	"github.com/MKhiriev/go-smart-cards/models"
)

// The service mocks below implement the service interfaces for unit tests.
// Each method field can be overridden per test case; an unset field returns
// zero values.

type mockAuthService struct {
	registerFn     func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, creds models.Credentials) (models.User, error)
	createGuestFn  func(ctx context.Context) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	if m.registerFn == nil {
		return models.User{}, nil
	}
	return m.registerFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if m.loginFn == nil {
		return models.User{}, nil
	}
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) CreateGuest(ctx context.Context) (models.User, error) {
	if m.createGuestFn == nil {
		return models.User{}, nil
	}
	return m.createGuestFn(ctx)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed.jwt.token"}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{}, nil
	}
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	if m.authenticateFn == nil {
		return models.User{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.authenticateFn(ctx, tokenString)
}

type mockDeckService struct {
	createDeckFn func(ctx context.Context, ownerID, name string) (models.Deck, error)
	listDecksFn  func(ctx context.Context, ownerID string) ([]models.Deck, error)
	getDeckFn    func(ctx context.Context, requesterID, deckID string) (models.DeckWithCards, error)
	renameDeckFn func(ctx context.Context, requesterID, deckID, name string) (models.Deck, error)
	deleteDeckFn func(ctx context.Context, requesterID, deckID string) error
	syncDeckFn   func(ctx context.Context, requesterID, deckID string, draft models.DeckDraft) ([]models.Card, error)
}

func (m *mockDeckService) CreateDeck(ctx context.Context, ownerID, name string) (models.Deck, error) {
	if m.createDeckFn == nil {
		return models.Deck{}, nil
	}
	return m.createDeckFn(ctx, ownerID, name)
}

func (m *mockDeckService) ListDecks(ctx context.Context, ownerID string) ([]models.Deck, error) {
	if m.listDecksFn == nil {
		return []models.Deck{}, nil
	}
	return m.listDecksFn(ctx, ownerID)
}

func (m *mockDeckService) GetDeck(ctx context.Context, requesterID, deckID string) (models.DeckWithCards, error) {
	if m.getDeckFn == nil {
		return models.DeckWithCards{}, nil
	}
	return m.getDeckFn(ctx, requesterID, deckID)
}

func (m *mockDeckService) RenameDeck(ctx context.Context, requesterID, deckID, name string) (models.Deck, error) {
	if m.renameDeckFn == nil {
		return models.Deck{}, nil
	}
	return m.renameDeckFn(ctx, requesterID, deckID, name)
}

func (m *mockDeckService) DeleteDeck(ctx context.Context, requesterID, deckID string) error {
	if m.deleteDeckFn == nil {
		return nil
	}
	return m.deleteDeckFn(ctx, requesterID, deckID)
}

func (m *mockDeckService) SyncDeckDraft(ctx context.Context, requesterID, deckID string, draft models.DeckDraft) ([]models.Card, error) {
	if m.syncDeckFn == nil {
		return []models.Card{}, nil
	}
	return m.syncDeckFn(ctx, requesterID, deckID, draft)
}

type mockCardService struct {
	createCardFn func(ctx context.Context, requesterID string, req models.CreateCardRequest) (models.Card, error)
	updateCardFn func(ctx context.Context, requesterID string, update models.CardUpdate) (models.Card, error)
	deleteCardFn func(ctx context.Context, requesterID, cardID string) error
}

func (m *mockCardService) CreateCard(ctx context.Context, requesterID string, req models.CreateCardRequest) (models.Card, error) {
	if m.createCardFn == nil {
		return models.Card{}, nil
	}
	return m.createCardFn(ctx, requesterID, req)
}

func (m *mockCardService) UpdateCard(ctx context.Context, requesterID string, update models.CardUpdate) (models.Card, error) {
	if m.updateCardFn == nil {
		return models.Card{}, nil
	}
	return m.updateCardFn(ctx, requesterID, update)
}

func (m *mockCardService) DeleteCard(ctx context.Context, requesterID, cardID string) error {
	if m.deleteCardFn == nil {
		return nil
	}
	return m.deleteCardFn(ctx, requesterID, cardID)
}

type mockUserService struct {
	deleteUserFn func(ctx context.Context, requesterID, userID string) error
}

func (m *mockUserService) DeleteUser(ctx context.Context, requesterID, userID string) error {
	if m.deleteUserFn == nil {
		return nil
	}
	return m.deleteUserFn(ctx, requesterID, userID)
}

func (m *mockUserService) PurgeExpiredUsers(_ context.Context, _ time.Time, _ int) (int, error) {
	return 0, nil
}

func (m *mockUserService) ReconcileOrphans(_ context.Context) (models.OrphanSweep, error) {
	return models.OrphanSweep{}, nil
}

type mockGenerationService struct {
	requestFn func(ctx context.Context, userID string, req models.StemRequest) (models.StemResult, error)
}

func (m *mockGenerationService) RequestGeneration(ctx context.Context, userID string, req models.StemRequest) (models.StemResult, error) {
	if m.requestFn == nil {
		return models.StemResult{}, nil
	}
	return m.requestFn(ctx, userID, req)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// newMockServices returns a Services value with every field set to an empty
// mock, so tests only override what they exercise.
func newMockServices() *service.Services {
	return &service.Services{
		AuthService:       &mockAuthService{},
		DeckService:       &mockDeckService{},
		CardService:       &mockCardService{},
		UserService:       &mockUserService{},
		GenerationService: &mockGenerationService{},
		AppInfoService:    &mockAppInfoService{version: "test-version"},
	}
}

var testHandlerConfig = config.App{
	AllowedOrigins: []string{"http://localhost:5173"},
	TokenDuration:  time.Hour,
}

func newTestHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, nil, testHandlerConfig, logger.Nop())
}

// withRequester returns r carrying userID the way the auth middleware
// stores it.
func withRequester(r *http.Request, userID string) *http.Request {
	return r.WithContext(utils.WithUserID(r.Context(), userID))
}
