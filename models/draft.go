package models

// DeckDraft is a batch of client-side edits reconciled against one deck in a
// single round trip.
type DeckDraft struct {
	// ToCreate holds new cards to insert into the deck.
	ToCreate []CardDraft `json:"cardsToCreate"`

	// ToUpdate holds partial updates. Ids that do not belong to the deck
	// are ignored.
	ToUpdate []CardUpdate `json:"cardsToUpdate"`

	// ToDelete holds ids of cards to remove. Ids that do not belong to the
	// deck are ignored.
	ToDelete []string `json:"cardsToDelete"`
}

// IsEmpty reports whether the draft carries no edits.
func (d DeckDraft) IsEmpty() bool {
	return len(d.ToCreate) == 0 && len(d.ToUpdate) == 0 && len(d.ToDelete) == 0
}

// SyncResponse is returned after a draft has been applied.
type SyncResponse struct {
	Success bool   `json:"success"`
	Cards   []Card `json:"cards"`
}
