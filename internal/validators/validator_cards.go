package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-smart-cards/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"

	// FieldOwnerID targets the owning user of a deck.
	FieldOwnerID  = "owner_id"
	FieldDeckName = "deck_name"

	// FieldDeckID targets the deck a new card is created in.
	FieldDeckID = "deck_id"
	FieldCardID = "card_id"
	FieldFront  = "front"
	FieldBack   = "back"

	// FieldCardsToCreate targets the insert section of a deck draft.
	FieldCardsToCreate = "cards_to_create"

	// FieldCardsToUpdate targets the update section of a deck draft.
	FieldCardsToUpdate = "cards_to_update"
)

// CardsValidator validates the payloads of the deck, card, auth and
// generation operations.
type CardsValidator struct {
}

func NewCardsValidator() Validator {
	return &CardsValidator{}
}

func (v *CardsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Deck:
		return v.validateDeck(ctx, value, fields...)
	case *models.Deck:
		return v.validateDeck(ctx, *value, fields...)

	case models.CardDraft:
		return v.validateCardDraft(ctx, value, fields...)
	case *models.CardDraft:
		return v.validateCardDraft(ctx, *value, fields...)

	case models.CreateCardRequest:
		return v.validateCreateCardRequest(ctx, value, fields...)
	case *models.CreateCardRequest:
		return v.validateCreateCardRequest(ctx, *value, fields...)

	case models.CardUpdate:
		return v.validateCardUpdate(ctx, value, fields...)
	case *models.CardUpdate:
		return v.validateCardUpdate(ctx, *value, fields...)

	case models.DeckDraft:
		return v.validateDeckDraft(ctx, value, fields...)
	case *models.DeckDraft:
		return v.validateDeckDraft(ctx, *value, fields...)

	case models.StemRequest:
		return v.validateStemRequest(ctx, value, fields...)
	case *models.StemRequest:
		return v.validateStemRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// maxPasswordBytes is the longest input bcrypt hashes.
const maxPasswordBytes = 72

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *CardsValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(c.Username) {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if blank(c.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if blank(c.Password) {
				return ErrEmptyPassword
			}
			if len(c.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CardsValidator) validateDeck(_ context.Context, d models.Deck, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldDeckName}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if blank(d.OwnerID) {
				return ErrEmptyOwnerID
			}
		case FieldDeckName:
			if blank(d.Name) {
				return ErrEmptyDeckName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CardsValidator) validateCardDraft(_ context.Context, d models.CardDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFront, FieldBack}
	}

	for _, f := range fields {
		switch f {
		case FieldFront:
			if blank(d.Front) {
				return ErrEmptyFront
			}
		case FieldBack:
			if blank(d.Back) {
				return ErrEmptyBack
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CardsValidator) validateCreateCardRequest(ctx context.Context, r models.CreateCardRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDeckID, FieldFront, FieldBack}
	}

	for _, f := range fields {
		switch f {
		case FieldDeckID:
			if blank(r.DeckID) {
				return ErrEmptyDeckID
			}
		case FieldFront, FieldBack:
			if err := v.validateCardDraft(ctx, models.CardDraft{Front: r.Front, Back: r.Back}, f); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CardsValidator) validateCardUpdate(_ context.Context, u models.CardUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCardID, FieldFront, FieldBack}
	}

	for _, f := range fields {
		switch f {
		case FieldCardID:
			if blank(u.ID) {
				return ErrEmptyCardID
			}
		case FieldFront:
			if u.Front != nil && blank(*u.Front) {
				return ErrEmptyFront
			}
		case FieldBack:
			if u.Back != nil && blank(*u.Back) {
				return ErrEmptyBack
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CardsValidator) validateDeckDraft(ctx context.Context, d models.DeckDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCardsToCreate, FieldCardsToUpdate}
	}

	for _, f := range fields {
		switch f {
		case FieldCardsToCreate:
			for i, draft := range d.ToCreate {
				if err := v.validateCardDraft(ctx, draft); err != nil {
					return fmt.Errorf("validation error at cardsToCreate[%d]: %w", i, err)
				}
			}
		case FieldCardsToUpdate:
			for i, update := range d.ToUpdate {
				if err := v.validateCardUpdate(ctx, update); err != nil {
					return fmt.Errorf("validation error at cardsToUpdate[%d]: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CardsValidator) validateStemRequest(_ context.Context, r models.StemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFront, FieldBack}
	}

	for _, f := range fields {
		switch f {
		case FieldFront:
			if blank(r.Front) {
				return ErrEmptyFront
			}
		case FieldBack:
			if blank(r.Back) {
				return ErrEmptyBack
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
