// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-smart-cards/internal/config"
	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/store"
	"github.com/MKhiriev/go-smart-cards/internal/utils"
	"github.com/MKhiriev/go-smart-cards/internal/validators"
	"github.com/MKhiriev/go-smart-cards/models"
)

// guestUsernameAttempts bounds the retries on a guest username collision.
const guestUsernameAttempts = 3

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, guest provisioning and
// the JWT token lifecycle.
type authService struct {
	// storages gives access to users and, for guest seeding, to a
	// transaction over decks and cards.
	storages  *store.Storages
	validator validators.Validator

	// passwordHashCost is the bcrypt cost used for new passwords.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// guestTTL is the lifetime of a guest account.
	guestTTL time.Duration

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg. A nil now defaults to [time.Now].
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(storages *store.Storages, validator validators.Validator, cfg config.App, now func() time.Time, logger *logger.Logger) AuthService {
	if now == nil {
		now = time.Now
	}

	return &authService{
		storages:         storages,
		validator:        validator,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		guestTTL:         cfg.GuestTTL,
		now:              now,
		logger:           logger,
	}
}

// Register creates a new password account.
//
// Returns the persisted user or:
//   - ErrValidation wrapping the missing field.
//   - ErrValidation wrapping ErrUserAlreadyExists if the username or email
//     is taken.
//   - A wrapped storage error otherwise.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Username = strings.TrimSpace(creds.Username)
	creds.Email = strings.TrimSpace(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	exists, err := a.storages.Users.ExistsByUsernameOrEmail(ctx, creds.Username, creds.Email)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", creds.Username).Msg("error checking user existence")
		return models.User{}, fmt.Errorf("error checking user existence: %w", err)
	}
	if exists {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, ErrUserAlreadyExists)
	}

	hash, err := utils.HashPassword(creds.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.storages.Users.CreateUser(ctx, models.User{
		Username:     creds.Username,
		Email:        creds.Email,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, ErrUserAlreadyExists)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login authenticates an existing password account. Unknown usernames,
// guest accounts and wrong passwords all yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Username = strings.TrimSpace(creds.Username)
	if err := a.validator.Validate(ctx, creds, validators.FieldUsername, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.storages.Users.FindUserByUsername(ctx, creds.Username)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if user.IsGuest || user.PasswordHash == "" {
		return models.User{}, ErrInvalidCredentials
	}

	if err = utils.ComparePassword(user.PasswordHash, creds.Password); err != nil {
		log.Debug().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateGuest provisions an expiring guest account and seeds it with the
// demo deck. A seeding failure is logged and does not fail the call.
func (a *authService) CreateGuest(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	expiresAt := a.now().Add(a.guestTTL)

	var (
		guest models.User
		err   error
	)
	for attempt := 0; attempt < guestUsernameAttempts; attempt++ {
		var username string
		username, err = utils.GenerateGuestUsername()
		if err != nil {
			return models.User{}, err
		}

		guest, err = a.storages.Users.CreateUser(ctx, models.User{
			Username:  username,
			Email:     utils.GuestEmail(username),
			IsGuest:   true,
			ExpiresAt: &expiresAt,
		})
		if !errors.Is(err, store.ErrUserAlreadyExists) {
			break
		}
		log.Warn().Str("func", "*authService.CreateGuest").Str("username", username).Msg("guest username collision, retrying")
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateGuest").Msg("error creating guest user")
		return models.User{}, fmt.Errorf("error creating guest user: %w", err)
	}

	if err = a.seedDemoDeck(ctx, guest.ID); err != nil {
		log.Err(err).Str("func", "*authService.CreateGuest").Str("user_id", guest.ID).Msg("error seeding demo deck")
	}

	return guest, nil
}

func (a *authService) seedDemoDeck(ctx context.Context, ownerID string) error {
	return a.storages.RunInTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		deck, err := repos.Decks.CreateDeck(ctx, models.Deck{OwnerID: ownerID, Name: demoDeckName})
		if err != nil {
			return err
		}
		_, err = repos.Cards.CreateCards(ctx, deck.ID, demoDeckCards...)
		return err
	})
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate resolves tokenString to a live user. Tokens of deleted or
// expired accounts are rejected like invalid ones.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	userID, err := token.GetUserID()
	if err != nil {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.storages.Users.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*authService.Authenticate").
			Str("user_id", userID).
			Msg("error loading token owner")
		return models.User{}, fmt.Errorf("error loading token owner: %w", err)
	}

	if user.IsGuest && user.ExpiresAt != nil && !user.ExpiresAt.After(a.now()) {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return user, nil
}
