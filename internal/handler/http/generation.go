package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-smart-cards/internal/utils"
	"github.com/MKhiriev/go-smart-cards/models"
)

func (h *Handler) generateStem(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, "*Handler.generateStem", err)
		return
	}

	var req models.StemRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.generateStem", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	result, err := h.services.GenerationService.RequestGeneration(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, "*Handler.generateStem", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
