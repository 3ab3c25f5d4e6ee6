package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-smart-cards/internal/config"
	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/utils"
	"github.com/MKhiriev/go-smart-cards/models"
)

const geminiAPIKeyHeader = "x-goog-api-key"

type geminiGenerator struct {
	client *utils.HTTPClient

	apiKey   string
	model    string
	language string

	logger *logger.Logger
}

// NewGeminiGenerator constructs a Gemini REST implementation of [Generator].
// It normalises and validates cfg.BaseURL and configures the underlying HTTP
// client with the request timeout.
//
// An empty API key is accepted so the server can start without one; every
// call then fails with [ErrNotConfigured].
func NewGeminiGenerator(cfg config.Gemini, logger *logger.Logger) (Generator, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gemini base url: %w", err)
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("invalid gemini config: empty model")
	}

	if cfg.APIKey == "" {
		logger.Warn().Str("func", "NewGeminiGenerator").Msg("gemini api key is empty, generation is disabled")
	}

	return &geminiGenerator{
		client:   utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		language: cfg.Language,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generateContentRequest struct {
	Contents []geminiContent `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// GenerateSentenceStem implements [Generator]. It POSTs the tutoring prompt
// to /v1beta/models/{model}:generateContent and returns the trimmed text of
// the first candidate.
func (g *geminiGenerator) GenerateSentenceStem(ctx context.Context, prompt models.StemPrompt) (string, error) {
	log := logger.FromContext(ctx)

	if g.apiKey == "" {
		return "", ErrNotConfigured
	}

	body := generateContentRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: buildStemPrompt(g.language, prompt)}},
		}},
	}

	var result generateContentResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader(geminiAPIKeyHeader, g.apiKey).
		SetPathParam("model", g.model).
		SetBody(body).
		SetResult(&result).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		log.Err(err).Str("func", "*geminiGenerator.GenerateSentenceStem").Msg("generate content request failed")
		return "", fmt.Errorf("generate content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).
			Str("func", "*geminiGenerator.GenerateSentenceStem").
			Int("status", resp.StatusCode()).
			Msg("provider returned an error")
		return "", err
	}

	text := result.firstText()
	if text == "" {
		log.Warn().
			Str("func", "*geminiGenerator.GenerateSentenceStem").
			Str("block_reason", result.PromptFeedback.BlockReason).
			Msg("provider returned no text")
		return "", ErrEmptyResponse
	}

	return text, nil
}

func (r generateContentResponse) firstText() string {
	if len(r.Candidates) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String())
}
