package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-smart-cards/internal/config"
	"github.com/MKhiriev/go-smart-cards/internal/handler"
	"github.com/MKhiriev/go-smart-cards/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may take to finish.
const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	workers    BackgroundRunner
	logger     *logger.Logger
}

// NewServer builds the HTTP server for handlers. workers may be nil.
func NewServer(handlers *handler.Handlers, workers BackgroundRunner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
	}, nil
}

// SignalContext returns a context cancelled on SIGTERM, SIGINT or SIGQUIT.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
}

func (s *server) RunServer(ctx context.Context) error {
	return s.run(ctx, s.httpServer.RunServer)
}

// run serves with serveFn until ctx is done or serveFn fails, then stops the
// listener and waits for the workers.
func (s *server) run(ctx context.Context, serveFn func() error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	if s.workers != nil {
		wg.Go(func() {
			s.workers.Run(ctx)
		})
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- serveFn()
	}()

	var errs []error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			s.logger.Err(err).Str("func", "*server.run").Msg("HTTP server stopped unexpectedly")
			errs = append(errs, err)
		}
	}

	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Err(err).Str("func", "*server.run").Msg("error shutting down HTTP server")
		errs = append(errs, err)
	}

	wg.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return errors.Join(errs...)
}
