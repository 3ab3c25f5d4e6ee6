package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-smart-cards/internal/config"
	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/service"
)

// GuestReaper periodically deletes expired guest accounts with their decks
// and cards, then sweeps rows left without a parent.
type GuestReaper struct {
	users    service.UserService
	interval time.Duration
	batch    int
	now      func() time.Time

	logger *logger.Logger
}

// NewGuestReaper returns a reaper driven by cfg. A nil now means time.Now.
func NewGuestReaper(users service.UserService, cfg config.Workers, now func() time.Time, logger *logger.Logger) *GuestReaper {
	if now == nil {
		now = time.Now
	}
	return &GuestReaper{
		users:    users,
		interval: cfg.ReapInterval,
		batch:    cfg.ReapBatchSize,
		now:      now,
		logger:   logger,
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (g *GuestReaper) Run(ctx context.Context) {
	g.logger.Info().Dur("interval", g.interval).Msg("guest reaper started")

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		g.sweep(ctx)

		select {
		case <-ctx.Done():
			g.logger.Info().Msg("guest reaper stopped")
			return
		case <-ticker.C:
		}
	}
}

func (g *GuestReaper) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	removed, err := g.users.PurgeExpiredUsers(ctx, g.now(), g.batch)
	if err != nil {
		g.logger.Err(err).Str("func", "*GuestReaper.sweep").Msg("purging expired users failed")
	} else if removed > 0 {
		g.logger.Info().Int("removed", removed).Msg("expired guests purged")
	}

	swept, err := g.users.ReconcileOrphans(ctx)
	if err != nil {
		g.logger.Err(err).Str("func", "*GuestReaper.sweep").
			Int64("cards", swept.Cards).
			Int64("decks", swept.Decks).
			Msg("orphan reconciliation failed")
		return
	}
	if swept.Cards > 0 || swept.Decks > 0 {
		g.logger.Warn().
			Int64("cards", swept.Cards).
			Int64("decks", swept.Decks).
			Msg("orphaned rows removed")
	}
}
