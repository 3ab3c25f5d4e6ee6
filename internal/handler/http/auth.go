package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-smart-cards/internal/utils"
	"github.com/MKhiriev/go-smart-cards/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, r, "*Handler.register", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), creds)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	h.startSession(w, r, "*Handler.register", user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, r, "*Handler.login", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	h.startSession(w, r, "*Handler.login", user, http.StatusOK)
}

func (h *Handler) guest(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.CreateGuest(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.guest", err)
		return
	}

	h.startSession(w, r, "*Handler.guest", user, http.StatusCreated)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: "Logged out successfully"}, http.StatusOK)
}

// startSession issues a token for user, sets it as the session cookie and
// the Authorization header, and writes the public user view.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, funcName string, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, funcName, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token.SignedString, h.cookieMaxAge))
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.NewUserResponse(user), status)
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	cookie := h.sessionCookie("", 0)
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	http.SetCookie(w, cookie)
}

func (h *Handler) sessionCookie(value string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(maxAge.Seconds()),
		SameSite: http.SameSiteStrictMode,
	}
	if h.cookieSecure {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}
