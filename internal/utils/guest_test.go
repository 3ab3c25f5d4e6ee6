package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var guestNamePattern = regexp.MustCompile(`^Guest_[0-9a-f]{8}$`)

func TestGenerateGuestUsername_Format(t *testing.T) {
	for range 50 {
		name, err := GenerateGuestUsername()
		require.NoError(t, err)
		assert.Regexp(t, guestNamePattern, name)
	}
}

func TestGuestEmail(t *testing.T) {
	assert.Equal(t, "Guest_0a1b2c3d@guest.com", GuestEmail("Guest_0a1b2c3d"))
}
