// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// [Validator] is a generic interface to validate request payloads (credentials,
// decks, cards, drafts and generation requests). It supports optional
// field-level scoping, so the same payload type can be checked differently by
// different operations (e.g. login does not require an email).
//
// Services call Validate after normalising input (trimming) and wrap the
// returned error into their own validation sentinel.
package validators

import "context"

// Validator validates input values. Field names restrict the check to a
// subset of the value's fields; no names means every field.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
