package http

import (
	"net/http"

	"github.com/MKhiriev/go-smart-cards/internal/utils"
	"github.com/MKhiriev/go-smart-cards/models"
)

// deleteProfile removes the requester with all of its decks and cards and
// ends the session.
func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteProfile", err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), userID, userID); err != nil {
		writeError(w, r, "*Handler.deleteProfile", err)
		return
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: "User and all associated data removed"}, http.StatusOK)
}
