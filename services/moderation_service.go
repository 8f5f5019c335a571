package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"ink-functions/contract"
	"ink-functions/domain"
	"ink-functions/errors"
	"ink-functions/moderation"
	"ink-functions/observability"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/go-playground/validator/v10"
)

const promptTemplate = `Analyze this message and evaluate it against the following criteria:
1. Does the message contain inappropriate content (profanity, hate speech, spam)?
2. Does the message share personal information (phone number, email, address)?
3. Does the message contain links to external platforms?

Message: "%s"

Reply only in JSON format:
{
  "isSafe": true/false,
  "reason": "Explanation of why the message is safe or unsafe",
  "violations": ["violation1", "violation2"]
}`

// BuildPrompt embeds the message in the fixed classification prompt.
func BuildPrompt(message string) string {
	return fmt.Sprintf(promptTemplate, message)
}

type IModerationService interface {
	AnalyzeChatMessage(ctx context.Context, req domain.ModerationRequest) (domain.ModerationResult, error)
}

// ModerationService asks a language model whether a chat message is safe.
// The model answer is passed through as raw text.
type ModerationService struct {
	log       *slog.Logger
	models    contract.ModelFactory
	model     string
	moderator *moderation.Moderator
	validate  *validator.Validate
	metrics   *observability.Metrics
}

func NewModerationService(log *slog.Logger, models contract.ModelFactory, model string,
	moderator *moderation.Moderator, metrics *observability.Metrics) *ModerationService {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return &ModerationService{
		log:       log,
		models:    models,
		model:     model,
		moderator: moderator,
		validate:  validate,
		metrics:   metrics,
	}
}

func (s *ModerationService) AnalyzeChatMessage(ctx context.Context, req domain.ModerationRequest) (domain.ModerationResult, error) {
	// 1. Fail fast, no model is built for an invalid request
	if err := s.validateRequest(req); err != nil {
		return domain.ModerationResult{}, s.fail(ctx, err)
	}

	// 2. Local pre-screen, informative only
	censored, hits := s.moderator.Censor(req.Message)
	lang := whatlanggo.Detect(req.Message).Lang.Iso6391()

	// 3. One synchronous model call with the caller's key
	model, err := s.models.NewModel(ctx, req.APIKey)
	if err != nil {
		return domain.ModerationResult{}, s.fail(ctx, err)
	}

	start := time.Now()
	text, err := model.Generate(ctx, BuildPrompt(req.Message))
	if err != nil {
		return domain.ModerationResult{}, s.fail(ctx, err)
	}

	s.log.InfoContext(ctx, "Gemini analysis completed",
		"message_length", len(req.Message),
		"lang", lang,
		"local_hits", len(hits),
		"latency_ms", time.Since(start).Milliseconds())
	s.metrics.IncrementModeration(errors.Kind(nil))

	result := domain.ModerationResult{Success: true, Analysis: text, LocalHits: hits}
	if len(hits) > 0 {
		result.Censored = censored
	}
	return result, nil
}

func (s *ModerationService) validateRequest(req domain.ModerationRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &errors.ValidationError{Field: fieldErrs[0].Field(), Reason: "is required"}
	}
	return &errors.ValidationError{Field: "request", Reason: err.Error()}
}

func (s *ModerationService) fail(ctx context.Context, err error) error {
	err = errors.FromProvider(err, "gemini", s.model)
	kind := errors.Kind(err)
	if kind == "validation" {
		s.log.WarnContext(ctx, "Invalid moderation request", "err", err)
	} else {
		s.log.ErrorContext(ctx, "Gemini API error", "err", err, "kind", kind, "model", s.model)
	}
	s.metrics.IncrementModeration(kind)
	return err
}
