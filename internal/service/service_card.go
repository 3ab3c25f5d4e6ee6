package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/store"
	"github.com/MKhiriev/go-smart-cards/internal/validators"
	"github.com/MKhiriev/go-smart-cards/models"
)

// cardService is the concrete implementation of CardService. Card ownership
// is always resolved through the card's deck.
type cardService struct {
	storages  *store.Storages
	validator validators.Validator

	logger *logger.Logger
}

// NewCardService constructs a CardService on top of storages.
func NewCardService(storages *store.Storages, validator validators.Validator, logger *logger.Logger) CardService {
	return &cardService{
		storages:  storages,
		validator: validator,
		logger:    logger,
	}
}

func (c *cardService) CreateCard(ctx context.Context, requesterID string, req models.CreateCardRequest) (models.Card, error) {
	req = models.CreateCardRequest{
		DeckID: strings.TrimSpace(req.DeckID),
		Front:  strings.TrimSpace(req.Front),
		Back:   strings.TrimSpace(req.Back),
	}
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if _, err := authorizeDeck(ctx, c.storages.Decks, requesterID, req.DeckID); err != nil {
		return models.Card{}, err
	}

	created, err := c.storages.Cards.CreateCards(ctx, req.DeckID, models.CardDraft{Front: req.Front, Back: req.Back})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*cardService.CreateCard").
			Str("deck_id", req.DeckID).
			Msg("error creating card")
		return models.Card{}, fmt.Errorf("error creating card: %w", err)
	}
	if len(created) != 1 {
		return models.Card{}, fmt.Errorf("error creating card: expected 1 row, got %d", len(created))
	}

	return created[0], nil
}

func (c *cardService) UpdateCard(ctx context.Context, requesterID string, update models.CardUpdate) (models.Card, error) {
	update = trimUpdate(update)
	if err := c.validator.Validate(ctx, update); err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if _, err := authorizeCard(ctx, c.storages.Repositories, requesterID, update.ID); err != nil {
		return models.Card{}, err
	}

	updated, err := c.storages.Cards.UpdateCard(ctx, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*cardService.UpdateCard").
			Str("card_id", update.ID).
			Msg("error updating card")
		return models.Card{}, fmt.Errorf("error updating card: %w", err)
	}

	return updated, nil
}

func (c *cardService) DeleteCard(ctx context.Context, requesterID, cardID string) error {
	if _, err := authorizeCard(ctx, c.storages.Repositories, requesterID, cardID); err != nil {
		return err
	}

	if err := c.storages.Cards.DeleteCard(ctx, cardID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*cardService.DeleteCard").
			Str("card_id", cardID).
			Msg("error deleting card")
		return fmt.Errorf("error deleting card: %w", err)
	}

	return nil
}
