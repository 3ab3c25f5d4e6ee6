package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-smart-cards/internal/config"
	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers registers the guest reaper with the settings of cfg.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	logger.Info().
		Dur("reap_interval", cfg.ReapInterval).
		Int("reap_batch_size", cfg.ReapBatchSize).
		Msg("creating background workers...")

	return &Workers{
		workers: []Worker{
			NewGuestReaper(services.UserService, cfg, nil, logger.WithComponent("guest_reaper")),
		},
	}
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned after ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
