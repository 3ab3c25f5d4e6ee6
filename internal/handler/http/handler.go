package http

import (
	"time"

	"github.com/MKhiriev/go-smart-cards/internal/config"
	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/service"
)

// Handler serves the JSON API on top of the service layer.
type Handler struct {
	services *service.Services

	// guestLimiter throttles guest provisioning per client IP. Nil disables
	// the limit.
	guestLimiter RequestLimiter

	allowedOrigins []string
	cookieSecure   bool
	cookieMaxAge   time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, guestLimiter RequestLimiter, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Bool("guest_limiter", guestLimiter != nil).Msg("http handler created")
	return &Handler{
		services:       services,
		guestLimiter:   guestLimiter,
		allowedOrigins: cfg.AllowedOrigins,
		cookieSecure:   cfg.CookieSecure,
		cookieMaxAge:   cfg.TokenDuration,
		logger:         logger,
	}
}
