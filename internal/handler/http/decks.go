package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-smart-cards/internal/utils"
	"github.com/MKhiriev/go-smart-cards/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listDecks(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, "*Handler.listDecks", err)
		return
	}

	decks, err := h.services.DeckService.ListDecks(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listDecks", err)
		return
	}

	utils.WriteJSON(w, decks, http.StatusOK)
}

func (h *Handler) createDeck(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, "*Handler.createDeck", err)
		return
	}

	var req models.DeckNameRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.createDeck", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	deck, err := h.services.DeckService.CreateDeck(r.Context(), userID, req.Name)
	if err != nil {
		writeError(w, r, "*Handler.createDeck", err)
		return
	}

	utils.WriteJSON(w, deck, http.StatusCreated)
}

func (h *Handler) getDeck(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, "*Handler.getDeck", err)
		return
	}

	deck, err := h.services.DeckService.GetDeck(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getDeck", err)
		return
	}

	utils.WriteJSON(w, deck, http.StatusOK)
}

func (h *Handler) renameDeck(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, "*Handler.renameDeck", err)
		return
	}

	var req models.DeckNameRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.renameDeck", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	deck, err := h.services.DeckService.RenameDeck(r.Context(), userID, chi.URLParam(r, "id"), req.Name)
	if err != nil {
		writeError(w, r, "*Handler.renameDeck", err)
		return
	}

	utils.WriteJSON(w, deck, http.StatusOK)
}

func (h *Handler) deleteDeck(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteDeck", err)
		return
	}

	if err = h.services.DeckService.DeleteDeck(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteDeck", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Deck removed"}, http.StatusOK)
}

func (h *Handler) syncDeck(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeError(w, r, "*Handler.syncDeck", err)
		return
	}

	var draft models.DeckDraft
	if err = json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, r, "*Handler.syncDeck", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	cards, err := h.services.DeckService.SyncDeckDraft(r.Context(), userID, chi.URLParam(r, "id"), draft)
	if err != nil {
		writeError(w, r, "*Handler.syncDeck", err)
		return
	}

	utils.WriteJSON(w, models.SyncResponse{Success: true, Cards: cards}, http.StatusOK)
}
