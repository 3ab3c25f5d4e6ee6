package service

import "errors"

var (
	// ErrValidation tags every input error. The detail is wrapped after it:
	// fmt.Errorf("%w: %w", ErrValidation, detail).
	ErrValidation = errors.New("validation error")

	// ErrUnauthorized is returned when the requester does not own the
	// target deck or card, or acts on another user's profile.
	ErrUnauthorized = errors.New("not authorized")

	// ErrRateLimited is returned when the generation quota of the current
	// window is used up, including when a concurrent call took the last slot.
	ErrRateLimited = errors.New("generation quota exhausted")

	// ErrGenerationFailed wraps any error of the external generator.
	ErrGenerationFailed = errors.New("generation failed")

	ErrUserAlreadyExists  = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
