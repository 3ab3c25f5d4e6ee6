package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/service"
	"github.com/MKhiriev/go-smart-cards/internal/store"
	"github.com/MKhiriev/go-smart-cards/internal/utils"
	"github.com/MKhiriev/go-smart-cards/models"
)

// Error kinds returned in [models.ErrorResponse.Kind].
const (
	kindValidation       = "validation"
	kindNotFound         = "not_found"
	kindUnauthorized     = "unauthorized"
	kindUnauthenticated  = "unauthenticated"
	kindRateLimited      = "rate_limited"
	kindGenerationFailed = "generation_failed"
	kindStoreError       = "store_error"
)

const (
	rateLimitedMessage = "You have reached your daily limit for AI questions. Please try again tomorrow."
	serverErrorMessage = "Server Error"
)

// errorMapping describes how one sentinel is rendered. An empty message
// means the error text itself is shown.
type errorMapping struct {
	target  error
	status  int
	kind    string
	message string
}

// errorMappings is matched top to bottom, the first hit wins. Wrapped
// validation errors must match before the store sentinels they may carry.
var errorMappings = []errorMapping{
	{target: service.ErrValidation, status: http.StatusBadRequest, kind: kindValidation},
	{target: ErrInvalidJSON, status: http.StatusBadRequest, kind: kindValidation},

	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, kind: kindUnauthenticated, message: "Invalid username or password"},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, kind: kindUnauthenticated, message: "Not authorized, token failed"},
	{target: ErrNoSessionToken, status: http.StatusUnauthorized, kind: kindUnauthenticated},
	{target: ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized, kind: kindUnauthenticated},
	{target: ErrMissingIdentity, status: http.StatusUnauthorized, kind: kindUnauthenticated},

	{target: service.ErrUnauthorized, status: http.StatusForbidden, kind: kindUnauthorized, message: "Not authorized"},

	{target: service.ErrRateLimited, status: http.StatusTooManyRequests, kind: kindRateLimited, message: rateLimitedMessage},
	{target: ErrGuestRateLimited, status: http.StatusTooManyRequests, kind: kindRateLimited},

	{target: service.ErrGenerationFailed, status: http.StatusBadGateway, kind: kindGenerationFailed, message: "Failed to generate sentence stem"},

	{target: store.ErrUserNotFound, status: http.StatusNotFound, kind: kindNotFound, message: "User not found"},
	{target: store.ErrDeckNotFound, status: http.StatusNotFound, kind: kindNotFound, message: "Deck not found"},
	{target: store.ErrCardNotFound, status: http.StatusNotFound, kind: kindNotFound, message: "Card not found"},
	{target: store.ErrNotFound, status: http.StatusNotFound, kind: kindNotFound, message: "Not found"},
	{target: ErrRouteNotFound, status: http.StatusNotFound, kind: kindNotFound},
}

// mapError returns the status code and the response body for err. Anything
// unknown becomes a store error with a generic message.
func mapError(err error) (int, models.ErrorResponse) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}

		message := m.message
		if message == "" {
			message = err.Error()
		}
		if m.kind == kindValidation {
			message = validationMessage(err)
		}

		return m.status, models.ErrorResponse{Kind: m.kind, Message: message}
	}

	return http.StatusInternalServerError, models.ErrorResponse{Kind: kindStoreError, Message: serverErrorMessage}
}

// validationMessage strips the sentinel prefix so the client sees only the
// detail, e.g. "User already exists".
func validationMessage(err error) string {
	msg := err.Error()
	msg = strings.TrimPrefix(msg, service.ErrValidation.Error()+": ")
	msg = strings.TrimPrefix(msg, "validation error: ")
	return msg
}

// writeError logs err with the request logger and writes the mapped JSON
// error body.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, body := mapError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).
		Str("func", funcName).
		Int("status", status).
		Str("kind", body.Kind).
		Msg("request failed")

	utils.WriteJSON(w, body, status)
}
