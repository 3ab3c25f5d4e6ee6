package handler

import (
	"github.com/MKhiriev/go-smart-cards/internal/config"
	"github.com/MKhiriev/go-smart-cards/internal/handler/http"
	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. guestLimiter may
// be nil, which disables the per-IP guest limit.
func NewHandlers(services *service.Services, guestLimiter http.RequestLimiter, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, guestLimiter, cfg.App, logger),
	}, nil
}
