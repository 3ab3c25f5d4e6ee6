package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/store"
	"github.com/MKhiriev/go-smart-cards/internal/validators"
	"github.com/MKhiriev/go-smart-cards/models"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// deckService is the concrete implementation of DeckService. Every
// mutation of an existing deck is authorized against the deck owner first.
type deckService struct {
	storages  *store.Storages
	validator validators.Validator

	logger *logger.Logger
}

// NewDeckService constructs a DeckService on top of storages.
func NewDeckService(storages *store.Storages, validator validators.Validator, logger *logger.Logger) DeckService {
	return &deckService{
		storages:  storages,
		validator: validator,
		logger:    logger,
	}
}

func (d *deckService) CreateDeck(ctx context.Context, ownerID, name string) (models.Deck, error) {
	log := logger.FromContext(ctx)

	deck := models.Deck{OwnerID: ownerID, Name: strings.TrimSpace(name)}
	if err := d.validator.Validate(ctx, deck); err != nil {
		return models.Deck{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := d.storages.Decks.CreateDeck(ctx, deck)
	if err != nil {
		log.Err(err).Str("func", "*deckService.CreateDeck").Str("owner_id", ownerID).Msg("error creating deck")
		return models.Deck{}, fmt.Errorf("error creating deck: %w", err)
	}

	return created, nil
}

func (d *deckService) ListDecks(ctx context.Context, ownerID string) ([]models.Deck, error) {
	decks, err := d.storages.Decks.ListDecksByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*deckService.ListDecks").
			Str("owner_id", ownerID).
			Msg("error listing decks")
		return nil, fmt.Errorf("error listing decks: %w", err)
	}

	return decks, nil
}

func (d *deckService) GetDeck(ctx context.Context, requesterID, deckID string) (models.DeckWithCards, error) {
	deck, err := authorizeDeck(ctx, d.storages.Decks, requesterID, deckID)
	if err != nil {
		return models.DeckWithCards{}, err
	}

	cards, err := d.storages.Cards.ListCardsByDeck(ctx, deck.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*deckService.GetDeck").
			Str("deck_id", deckID).
			Msg("error listing cards of deck")
		return models.DeckWithCards{}, fmt.Errorf("error listing cards: %w", err)
	}

	return models.DeckWithCards{Deck: deck, Cards: cards}, nil
}

func (d *deckService) RenameDeck(ctx context.Context, requesterID, deckID, name string) (models.Deck, error) {
	name = strings.TrimSpace(name)
	if err := d.validator.Validate(ctx, models.Deck{Name: name}, validators.FieldDeckName); err != nil {
		return models.Deck{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if _, err := authorizeDeck(ctx, d.storages.Decks, requesterID, deckID); err != nil {
		return models.Deck{}, err
	}

	renamed, err := d.storages.Decks.RenameDeck(ctx, deckID, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*deckService.RenameDeck").
			Str("deck_id", deckID).
			Msg("error renaming deck")
		return models.Deck{}, fmt.Errorf("error renaming deck: %w", err)
	}

	return renamed, nil
}

// DeleteDeck loads, authorizes and removes the deck with all of its cards in
// one transaction.
func (d *deckService) DeleteDeck(ctx context.Context, requesterID, deckID string) (err error) {
	log := logger.FromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.DeleteDeck")
	span.SetAttributes(attribute.String("deck.id", deckID))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "deck cascade failed")
		}
		span.End()
	}()

	step := ""
	err = d.storages.RunInTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		if _, err := authorizeDeck(ctx, repos.Decks, requesterID, deckID); err != nil {
			return err
		}
		failedStep, err := deleteDeckGraph(ctx, repos, deckID)
		step = failedStep
		return err
	})
	if err != nil && step != "" {
		log.Err(err).
			Str("func", "*deckService.DeleteDeck").
			Str("user_id", requesterID).
			Str("deck_id", deckID).
			Str("step", step).
			Msg("deck cascade failed")
	}

	return err
}

// SyncDeckDraft applies deletes, updates and inserts of draft to deckID in
// one transaction and returns the resulting card set.
func (d *deckService) SyncDeckDraft(ctx context.Context, requesterID, deckID string, draft models.DeckDraft) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	draft = normalizeDraft(draft)
	if err := d.validator.Validate(ctx, draft); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	var cards []models.Card
	err := d.storages.RunInTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		if _, err := authorizeDeck(ctx, repos.Decks, requesterID, deckID); err != nil {
			return err
		}

		if len(draft.ToDelete) > 0 {
			if _, err := repos.Cards.DeleteCardsInDeck(ctx, deckID, draft.ToDelete...); err != nil {
				return fmt.Errorf("error deleting draft cards: %w", err)
			}
		}
		if len(draft.ToUpdate) > 0 {
			if _, err := repos.Cards.UpdateCardsInDeck(ctx, deckID, draft.ToUpdate...); err != nil {
				return fmt.Errorf("error updating draft cards: %w", err)
			}
		}
		if len(draft.ToCreate) > 0 {
			if _, err := repos.Cards.CreateCards(ctx, deckID, draft.ToCreate...); err != nil {
				return fmt.Errorf("error creating draft cards: %w", err)
			}
		}

		var err error
		cards, err = repos.Cards.ListCardsByDeck(ctx, deckID)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "*deckService.SyncDeckDraft").
			Str("deck_id", deckID).
			Int("to_create", len(draft.ToCreate)).
			Int("to_update", len(draft.ToUpdate)).
			Int("to_delete", len(draft.ToDelete)).
			Msg("draft sync rolled back")
		return nil, err
	}

	return cards, nil
}

// normalizeDraft trims every text field of draft. Blank delete ids are
// dropped.
func normalizeDraft(draft models.DeckDraft) models.DeckDraft {
	out := models.DeckDraft{}

	for _, c := range draft.ToCreate {
		out.ToCreate = append(out.ToCreate, models.CardDraft{
			Front: strings.TrimSpace(c.Front),
			Back:  strings.TrimSpace(c.Back),
		})
	}
	for _, u := range draft.ToUpdate {
		out.ToUpdate = append(out.ToUpdate, trimUpdate(u))
	}
	for _, id := range draft.ToDelete {
		if id = strings.TrimSpace(id); id != "" {
			out.ToDelete = append(out.ToDelete, id)
		}
	}

	return out
}

func trimUpdate(u models.CardUpdate) models.CardUpdate {
	u.ID = strings.TrimSpace(u.ID)
	if u.Front != nil {
		front := strings.TrimSpace(*u.Front)
		u.Front = &front
	}
	if u.Back != nil {
		back := strings.TrimSpace(*u.Back)
		u.Back = &back
	}
	return u
}
