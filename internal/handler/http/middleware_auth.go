package http

import (
	"net/http"

	"github.com/MKhiriev/go-smart-cards/internal/utils"
)

// sessionCookieName is the httpOnly cookie that carries the JWT.
const sessionCookieName = "jwt"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The token is taken from the "jwt" session cookie or, when the cookie is
// absent, from an "Authorization: Bearer <token>" header. It is resolved to
// a live user via [service.AuthService.Authenticate], and the user's ID is
// stored in the request context under [utils.UserIDCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 and the unauthenticated
// error kind when no token is present, the header is malformed, or the
// token is expired, invalid or belongs to a deleted account.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokenFromRequest(r)
		if err != nil {
			writeError(w, r, "*Handler.auth", err)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, "*Handler.auth", err)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = utils.WithUserID(ctx, user.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromRequest returns the session token of r. The cookie wins over the
// header.
func tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionToken
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}

// requesterID returns the authenticated user of r set by [Handler.auth].
func requesterID(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrMissingIdentity
	}
	return userID, nil
}
