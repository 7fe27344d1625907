package bloggen

import (
	"context"
	"errors"
	"strings"
	"time"

	"server/internal/domain"
	"server/internal/infra"
)

// Service orchestrates the generation pipeline: validation, image
// analysis, model selection, prompt assembly and the completion call.
// It never returns an error; every failure path is folded into the
// failure variant of Result.
type Service struct {
	completer Completer
	logger    *infra.Logger
	now       func() time.Time
}

func NewService(completer Completer, logger *infra.Logger) *Service {
	return &Service{completer: completer, logger: logger, now: time.Now}
}

// Generate runs the whole pipeline for one request. The request is
// normalized first so alias fields are resolved before any component
// sees it. No retries; a failed step short-circuits to the failure
// envelope.
func (s *Service) Generate(ctx context.Context, req domain.BlogRequest) *Result {
	req.Normalize()
	if req.Topic == "" || req.MainName == "" {
		return failure("Missing required fields: topic and mainName are required")
	}
	if !s.completer.HasCredentials() {
		return failureCode("NVIDIA API key not configured on server", CodeAPIKeyNotConfigured)
	}

	analysis := AnalyzeImages(req.Images)
	model := SelectModel(DefaultUseCase)
	system, prompt := BuildPrompt(req, analysis)

	completion, err := s.completer.Complete(ctx, model, system, prompt)
	if err != nil {
		s.logger.Error().Err(err).Str("model", model.Name).Msg("blog generation failed")
		return s.failureFromErr(err)
	}

	s.logger.Debug().Str("model", model.Name).Int("images", len(req.Images)).Msg("blog generated")
	return &Result{
		Success:       true,
		BlogPost:      completion.Content,
		WordCount:     len(strings.Fields(completion.Content)),
		Model:         model.Name,
		ImageAnalysis: analysis,
		Metadata: &Metadata{
			Topic:          req.Topic,
			MainName:       req.MainName,
			Type:           req.Type,
			Industry:       req.Industry,
			Location:       req.Location,
			TargetAudience: req.TargetAudience,
			Tone:           req.Tone,
			Length:         req.Length,
			ImageCount:     len(req.Images),
			GeneratedAt:    s.now().UTC().Format(time.RFC3339),
		},
	}
}

func (s *Service) failureFromErr(err error) *Result {
	if errors.Is(err, ErrMissingAPIKey) {
		return failureCode("NVIDIA API key not configured on server", CodeAPIKeyNotConfigured)
	}
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		res := failure(upstream.Error())
		res.StatusCode = upstream.StatusCode
		return res
	}
	return failure(err.Error())
}
