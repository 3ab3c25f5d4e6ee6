package models

import "time"

// Deck is a named collection of cards owned by exactly one user.
type Deck struct {
	ID string `json:"_id"`

	// OwnerID references the owning user. It must resolve to an existing
	// user when the deck is created.
	OwnerID string `json:"user"`

	Name string `json:"name"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Deck model.
func (d Deck) TableName() string {
	return "decks"
}

// DeckWithCards is a deck together with its full card set.
type DeckWithCards struct {
	Deck  Deck   `json:"deck"`
	Cards []Card `json:"cards"`
}

// DeckNameRequest is the payload of deck create and rename requests.
type DeckNameRequest struct {
	Name string `json:"name"`
}

// OrphanSweep reports how many dangling rows one reconciliation removed.
type OrphanSweep struct {
	Cards int64 `json:"cards"`
	Decks int64 `json:"decks"`
}
