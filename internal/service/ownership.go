package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/store"
	"github.com/MKhiriev/go-smart-cards/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/MKhiriev/go-smart-cards/internal/service")

// Cascade steps reported in logs when a deck or user removal fails.
const (
	stepListDecks   = "list_decks"
	stepDeleteCards = "delete_cards"
	stepDeleteDeck  = "delete_deck"
	stepTransaction = "transaction"
	stepDeleteUser  = "delete_user"
)

// authorizeDeck loads deckID and checks that requesterID owns it.
func authorizeDeck(ctx context.Context, decks store.DeckRepository, requesterID, deckID string) (models.Deck, error) {
	deck, err := decks.FindDeckByID(ctx, deckID)
	if err != nil {
		return models.Deck{}, err
	}
	if deck.OwnerID != requesterID {
		return models.Deck{}, fmt.Errorf("%w: deck %s is owned by another user", ErrUnauthorized, deckID)
	}
	return deck, nil
}

// authorizeCard loads cardID and its deck, and checks that requesterID owns
// the deck.
func authorizeCard(ctx context.Context, repos *store.Repositories, requesterID, cardID string) (models.Card, error) {
	card, err := repos.Cards.FindCardByID(ctx, cardID)
	if err != nil {
		return models.Card{}, err
	}
	if _, err = authorizeDeck(ctx, repos.Decks, requesterID, card.DeckID); err != nil {
		return models.Card{}, err
	}
	return card, nil
}

// deleteDeckGraph removes every card of deckID, then the deck itself. On
// failure it reports the step that failed.
func deleteDeckGraph(ctx context.Context, repos *store.Repositories, deckID string) (string, error) {
	if _, err := repos.Cards.DeleteAllCardsInDeck(ctx, deckID); err != nil {
		return stepDeleteCards, err
	}
	if err := repos.Decks.DeleteDeck(ctx, deckID); err != nil {
		return stepDeleteDeck, err
	}
	return "", nil
}

// deleteUserGraph runs the deck cascade for every deck of userID, each in its
// own transaction, and removes the user row only if all of them succeeded.
// Failed decks stay attached to the user so the call can be retried.
func deleteUserGraph(ctx context.Context, storages *store.Storages, userID string) (err error) {
	log := logger.FromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.deleteUserGraph")
	span.SetAttributes(attribute.String("user.id", userID))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "user cascade failed")
		}
		span.End()
	}()

	decks, err := storages.Decks.ListDecksByOwner(ctx, userID)
	if err != nil {
		log.Err(err).
			Str("func", "deleteUserGraph").
			Str("user_id", userID).
			Str("step", stepListDecks).
			Msg("error listing decks for cascade")
		return fmt.Errorf("listing decks of user %s: %w", userID, err)
	}

	var errs []error
	for _, deck := range decks {
		step := stepTransaction
		txErr := storages.RunInTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
			failedStep, err := deleteDeckGraph(ctx, repos, deck.ID)
			if err != nil {
				step = failedStep
			}
			return err
		})
		if txErr != nil {
			log.Err(txErr).
				Str("func", "deleteUserGraph").
				Str("user_id", userID).
				Str("deck_id", deck.ID).
				Str("step", step).
				Msg("deck cascade failed")
			errs = append(errs, fmt.Errorf("deck %s: %s: %w", deck.ID, step, txErr))
		}
	}
	span.SetAttributes(attribute.Int("decks.total", len(decks)), attribute.Int("decks.failed", len(errs)))

	if len(errs) > 0 {
		return fmt.Errorf("user %s kept, %d of %d deck cascades failed: %w", userID, len(errs), len(decks), errors.Join(errs...))
	}

	if err = storages.Users.DeleteUser(ctx, userID); err != nil {
		log.Err(err).
			Str("func", "deleteUserGraph").
			Str("user_id", userID).
			Str("step", stepDeleteUser).
			Msg("error deleting user row")
		return fmt.Errorf("deleting user %s: %w", userID, err)
	}

	return nil
}
