// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-smart-cards/internal/config"
	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, serverURL string) Generator {
	t.Helper()
	g, err := NewGeminiGenerator(config.Gemini{
		APIKey:         "test-key",
		BaseURL:        serverURL,
		Model:          "gemini-test",
		Language:       "Korean",
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return g
}

var testPrompt = models.StemPrompt{Term: "물", Meaning: "Water", Distractors: []string{"음식", "네"}}

func TestGenerateSentenceStem_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var body generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Contents, 1)
		require.Len(t, body.Contents[0].Parts, 1)
		assert.Contains(t, body.Contents[0].Parts[0].Text, "'물', which means 'Water'")
		assert.Contains(t, body.Contents[0].Parts[0].Text, "[음식, 네]")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  목이 말라요. ___ 주세요.\n"}]}}]}`))
	}))
	defer srv.Close()

	got, err := newTestGenerator(t, srv.URL).GenerateSentenceStem(context.Background(), testPrompt)
	require.NoError(t, err)
	assert.Equal(t, "목이 말라요. ___ 주세요.", got)
}

func TestGenerateSentenceStem_ProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrUnauthorized},
		{name: "unknown model", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "provider quota", status: http.StatusTooManyRequests, wantErr: ErrRateLimited},
		{name: "overloaded", status: http.StatusServiceUnavailable, wantErr: ErrBadGateway},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":{"message":"nope"}}`))
			}))
			defer srv.Close()

			_, err := newTestGenerator(t, srv.URL).GenerateSentenceStem(context.Background(), testPrompt)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateSentenceStem_EmptyResponse(t *testing.T) {
	bodies := map[string]string{
		"no candidates": `{"candidates":[],"promptFeedback":{"blockReason":"SAFETY"}}`,
		"blank text":    `{"candidates":[{"content":{"parts":[{"text":"   "}]}}]}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := newTestGenerator(t, srv.URL).GenerateSentenceStem(context.Background(), testPrompt)
			assert.ErrorIs(t, err, ErrEmptyResponse)
		})
	}
}

func TestGenerateSentenceStem_NoAPIKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	g, err := NewGeminiGenerator(config.Gemini{BaseURL: srv.URL, Model: "m"}, logger.Nop())
	require.NoError(t, err)

	_, err = g.GenerateSentenceStem(context.Background(), testPrompt)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, called)
}

func TestGenerateSentenceStem_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	g, err := NewGeminiGenerator(config.Gemini{
		APIKey: "k", BaseURL: srv.URL, Model: "m", RequestTimeout: 20 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = g.GenerateSentenceStem(context.Background(), testPrompt)
	assert.Error(t, err)
}

func TestNewGeminiGenerator_InvalidConfig(t *testing.T) {
	_, err := NewGeminiGenerator(config.Gemini{BaseURL: "", Model: "m"}, logger.Nop())
	assert.Error(t, err)

	_, err = NewGeminiGenerator(config.Gemini{BaseURL: "https://example.com", Model: " "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "https://generativelanguage.googleapis.com/", want: "https://generativelanguage.googleapis.com"},
		{raw: "localhost:9000", want: "https://localhost:9000"},
		{raw: "  http://127.0.0.1:1234  ", want: "http://127.0.0.1:1234"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildStemPrompt(t *testing.T) {
	p := buildStemPrompt("", models.StemPrompt{Term: "감사합니다", Meaning: "Thank you"})

	assert.Contains(t, p, "expert Korean language tutor")
	assert.Contains(t, p, "'감사합니다', which means 'Thank you'")
	assert.Contains(t, p, "options the student will see are: [].")
	assert.Contains(t, p, "(___)")

	ja := buildStemPrompt("Japanese", models.StemPrompt{Term: "水", Meaning: "water", Distractors: []string{"火"}})
	assert.Contains(t, ja, "single, simple Japanese sentence")
	assert.Contains(t, ja, "[火]")
}
