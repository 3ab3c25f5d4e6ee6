package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-smart-cards/internal/adapter"
	"github.com/MKhiriev/go-smart-cards/internal/config"
	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/store"
	"github.com/MKhiriev/go-smart-cards/internal/validators"
	"github.com/MKhiriev/go-smart-cards/models"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// generationService gates calls to the external generator behind a per-user
// rolling quota. Only successful calls are counted.
type generationService struct {
	users     store.UserRepository
	generator adapter.Generator
	validator validators.Validator

	limit  int
	window time.Duration
	now    func() time.Time

	logger *logger.Logger
}

// NewGenerationService constructs a GenerationService with the quota limit
// and window taken from cfg. A nil now defaults to [time.Now].
func NewGenerationService(users store.UserRepository, generator adapter.Generator, validator validators.Validator,
	cfg config.App, now func() time.Time, logger *logger.Logger) GenerationService {
	if now == nil {
		now = time.Now
	}

	return &generationService{
		users:     users,
		generator: generator,
		validator: validator,
		limit:     cfg.GenerationDailyLimit,
		window:    cfg.GenerationWindow,
		now:       now,
		logger:    logger,
	}
}

// RequestGeneration checks the quota of userID, calls the generator and
// records the call. The quota is consumed only when the generator succeeds
// and a slot is still free at commit time.
func (g *generationService) RequestGeneration(ctx context.Context, userID string, req models.StemRequest) (result models.StemResult, err error) {
	log := logger.FromContext(ctx)

	prompt := models.StemPrompt{
		Term:    strings.TrimSpace(req.Back),
		Meaning: strings.TrimSpace(req.Front),
	}
	for _, d := range req.Distractors {
		if d = strings.TrimSpace(d); d != "" {
			prompt.Distractors = append(prompt.Distractors, d)
		}
	}
	if err = g.validator.Validate(ctx, models.StemRequest{Front: prompt.Meaning, Back: prompt.Term}); err != nil {
		return models.StemResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	ctx, span := tracer.Start(ctx, "service.RequestGeneration")
	span.SetAttributes(attribute.String("user.id", userID), attribute.Int("quota.limit", g.limit))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "generation request failed")
		}
		span.End()
	}()

	now := g.now()

	quota, err := g.users.GetQuota(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*generationService.RequestGeneration").Str("user_id", userID).Msg("error loading quota")
		return models.StemResult{}, fmt.Errorf("error loading quota: %w", err)
	}

	used := quota.EffectiveCount(now)
	span.SetAttributes(attribute.Int("quota.used", used))
	if used >= g.limit {
		log.Info().
			Str("func", "*generationService.RequestGeneration").
			Str("user_id", userID).
			Int("count", used).
			Msg("generation quota exhausted")
		return models.StemResult{}, ErrRateLimited
	}

	stem, err := g.generator.GenerateSentenceStem(ctx, prompt)
	if err != nil {
		log.Err(err).Str("func", "*generationService.RequestGeneration").Str("user_id", userID).Msg("generator call failed")
		return models.StemResult{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	committed, err := g.users.CommitGenerationCall(ctx, userID, now, g.window, g.limit)
	if errors.Is(err, store.ErrQuotaExhausted) {
		log.Info().
			Str("func", "*generationService.RequestGeneration").
			Str("user_id", userID).
			Msg("last quota slot taken by a concurrent call, result discarded")
		return models.StemResult{}, ErrRateLimited
	}
	if err != nil {
		log.Err(err).Str("func", "*generationService.RequestGeneration").Str("user_id", userID).Msg("error committing generation call")
		return models.StemResult{}, fmt.Errorf("error committing generation call: %w", err)
	}

	return models.StemResult{SentenceStem: stem, APICallCount: committed.CallCount}, nil
}
