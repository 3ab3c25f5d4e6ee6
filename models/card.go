package models

import "time"

// Card is a front/back text pair owned by exactly one deck. A card carries
// no user reference: ownership is always derived through its deck.
type Card struct {
	ID     string `json:"_id"`
	DeckID string `json:"deck"`
	Front  string `json:"front"`
	Back   string `json:"back"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Card model.
func (c Card) TableName() string {
	return "cards"
}

// CardDraft is a card that has not been persisted yet.
type CardDraft struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// CardUpdate is a partial update of a single card.
// Only non-nil fields are written.
type CardUpdate struct {
	ID    string  `json:"_id"`
	Front *string `json:"front,omitempty"`
	Back  *string `json:"back,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u CardUpdate) IsEmpty() bool {
	return u.Front == nil && u.Back == nil
}

// CreateCardRequest is the payload of the card create endpoint.
type CreateCardRequest struct {
	DeckID string `json:"deckId"`
	Front  string `json:"front"`
	Back   string `json:"back"`
}
