package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-smart-cards/internal/utils"
	"github.com/MKhiriev/go-smart-cards/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createCard(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, "*Handler.createCard", err)
		return
	}

	var req models.CreateCardRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.createCard", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	card, err := h.services.CardService.CreateCard(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, "*Handler.createCard", err)
		return
	}

	utils.WriteJSON(w, card, http.StatusCreated)
}

func (h *Handler) updateCard(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateCard", err)
		return
	}

	var update models.CardUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, "*Handler.updateCard", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	update.ID = chi.URLParam(r, "id")

	card, err := h.services.CardService.UpdateCard(r.Context(), userID, update)
	if err != nil {
		writeError(w, r, "*Handler.updateCard", err)
		return
	}

	utils.WriteJSON(w, card, http.StatusOK)
}

func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteCard", err)
		return
	}

	if err = h.services.CardService.DeleteCard(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteCard", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Card removed"}, http.StatusOK)
}
