package adapter

import "errors"

var (
	ErrNotConfigured = errors.New("generator is not configured")

	ErrBadRequest          = errors.New("provider rejected request")
	ErrUnauthorized        = errors.New("provider unauthorized")
	ErrNotFound            = errors.New("provider model not found")
	ErrRateLimited         = errors.New("provider rate limited")
	ErrBadGateway          = errors.New("provider unavailable")
	ErrInternalServerError = errors.New("provider internal error")

	// ErrEmptyResponse is returned when the provider answers 2xx without
	// any usable candidate text (e.g. the prompt was blocked).
	ErrEmptyResponse = errors.New("provider returned no text")
)
