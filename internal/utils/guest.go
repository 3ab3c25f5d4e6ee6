package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	guestPrefix       = "Guest_"
	guestSuffixLength = 8
	guestAlphabet     = "0123456789abcdef"
)

// GenerateGuestUsername returns a name in the form "Guest_<8 hex chars>".
func GenerateGuestUsername() (string, error) {
	suffix, err := gonanoid.Generate(guestAlphabet, guestSuffixLength)
	if err != nil {
		return "", fmt.Errorf("error generating guest username: %w", err)
	}
	return guestPrefix + suffix, nil
}

// GuestEmail derives the placeholder e-mail stored for a guest account.
func GuestEmail(username string) string {
	return username + "@guest.com"
}
