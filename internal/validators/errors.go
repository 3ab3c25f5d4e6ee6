package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")

	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
	ErrEmptyOwnerID  = errors.New("deck owner is required")
	ErrEmptyDeckName = errors.New("deck name is required")
	ErrEmptyDeckID   = errors.New("deck id is required")
	ErrEmptyCardID   = errors.New("card id is required")
	ErrEmptyFront    = errors.New("card front is required")
	ErrEmptyBack     = errors.New("card back is required")
)
