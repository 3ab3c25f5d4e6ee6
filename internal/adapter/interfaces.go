// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services the smart-cards
// server depends on.
//
// The primary abstraction is [Generator], which decouples the generation
// service from the text-generation provider. The package ships a Gemini
// REST implementation ([NewGeminiGenerator]).
//
// Error values defined in errors.go are mapped from provider HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] regardless of the
// provider (e.g. [ErrRateLimited] for 429, [ErrUnauthorized] for 401/403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-smart-cards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/generator_mock.go -package=mock

// Generator produces quiz content from an external language model.
type Generator interface {
	// GenerateSentenceStem returns one sentence in the target language with
	// a blank (___) where only prompt.Term fits. The distractors in prompt
	// must not fit the blank. The returned text is trimmed and non-empty.
	GenerateSentenceStem(ctx context.Context, prompt models.StemPrompt) (string, error)
}
