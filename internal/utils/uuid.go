package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered (v7) identifiers for users, decks and
// cards. It falls back to a random v4 identifier if the v7 source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidUUID reports whether s parses as a UUID. Storage backends use it to
// turn malformed identifiers into "not found" instead of a driver error.
func IsValidUUID(s string) bool {
	return uuid.Validate(s) == nil
}
