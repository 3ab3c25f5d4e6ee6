// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoSessionToken is returned by the auth middleware when the request
	// carries neither the session cookie nor an "Authorization" header.
	ErrNoSessionToken = errors.New("not authorized, no token")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a "Bearer <token>" value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrMissingIdentity is returned when a protected handler runs without
	// an authenticated user in the request context.
	ErrMissingIdentity = errors.New("not authorized, no user in context")

	// ErrGuestRateLimited is returned when a client IP provisioned too many
	// guest accounts in the current window.
	ErrGuestRateLimited = errors.New("too many guest accounts from this address, please try again later")

	// ErrRouteNotFound is written for unknown routes and disallowed methods.
	ErrRouteNotFound = errors.New("route not found")
)
