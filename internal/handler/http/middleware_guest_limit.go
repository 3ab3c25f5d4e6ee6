package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-smart-cards/internal/logger"
)

// limitGuests throttles guest provisioning per client IP. The limiter fails
// open: a backend error is logged and the request goes through.
func (h *Handler) limitGuests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.guestLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		ip := clientIP(r)
		allowed, err := h.guestLimiter.Allow(r.Context(), ip)
		if err != nil {
			logger.FromRequest(r).Err(err).
				Str("func", "*Handler.limitGuests").
				Str("ip", ip).
				Msg("guest limiter unavailable, letting request through")
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			writeError(w, r, "*Handler.limitGuests", ErrGuestRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of r.RemoteAddr, which RealIP has already
// replaced with the forwarded address when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
