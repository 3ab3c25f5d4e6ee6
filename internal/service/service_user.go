package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/store"
	"github.com/MKhiriev/go-smart-cards/models"
)

// userService is the concrete implementation of UserService: account
// removal and the maintenance entry points used by the workers.
type userService struct {
	storages *store.Storages

	logger *logger.Logger
}

// NewUserService constructs a UserService on top of storages.
func NewUserService(storages *store.Storages, logger *logger.Logger) UserService {
	return &userService{
		storages: storages,
		logger:   logger,
	}
}

// DeleteUser removes userID with its whole graph. Only the user itself may
// do so.
func (u *userService) DeleteUser(ctx context.Context, requesterID, userID string) error {
	if requesterID != userID {
		return fmt.Errorf("%w: user %s cannot delete user %s", ErrUnauthorized, requesterID, userID)
	}

	if _, err := u.storages.Users.FindUserByID(ctx, userID); err != nil {
		return err
	}

	return deleteUserGraph(ctx, u.storages, userID)
}

// PurgeExpiredUsers removes up to batch users whose expiry passed at now and
// returns how many were removed. A failing user does not stop the batch.
func (u *userService) PurgeExpiredUsers(ctx context.Context, now time.Time, batch int) (int, error) {
	log := logger.FromContext(ctx)

	ids, err := u.storages.Users.ListExpiredUserIDs(ctx, now, batch)
	if err != nil {
		log.Err(err).Str("func", "*userService.PurgeExpiredUsers").Msg("error listing expired users")
		return 0, fmt.Errorf("error listing expired users: %w", err)
	}

	removed := 0
	for _, id := range ids {
		if err = deleteUserGraph(ctx, u.storages, id); err != nil {
			log.Err(err).
				Str("func", "*userService.PurgeExpiredUsers").
				Str("user_id", id).
				Msg("error purging expired user")
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Info().
			Str("func", "*userService.PurgeExpiredUsers").
			Int("removed", removed).
			Int("expired", len(ids)).
			Msg("expired users purged")
	}

	return removed, nil
}

// ReconcileOrphans removes cards without a deck, then decks without an
// owner.
func (u *userService) ReconcileOrphans(ctx context.Context) (models.OrphanSweep, error) {
	log := logger.FromContext(ctx)

	var (
		sweep models.OrphanSweep
		err   error
	)

	sweep.Cards, err = u.storages.Cards.DeleteOrphanedCards(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userService.ReconcileOrphans").Msg("error deleting orphaned cards")
		return sweep, fmt.Errorf("error deleting orphaned cards: %w", err)
	}

	sweep.Decks, err = u.storages.Decks.DeleteOrphanedDecks(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userService.ReconcileOrphans").Msg("error deleting orphaned decks")
		return sweep, fmt.Errorf("error deleting orphaned decks: %w", err)
	}

	if sweep.Cards > 0 || sweep.Decks > 0 {
		log.Warn().
			Str("func", "*userService.ReconcileOrphans").
			Int64("cards", sweep.Cards).
			Int64("decks", sweep.Decks).
			Msg("orphaned rows removed")
	}

	return sweep, nil
}
