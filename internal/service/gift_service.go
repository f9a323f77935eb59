package service

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mousam-kumari/gift-flask/internal/logging"
	"github.com/mousam-kumari/gift-flask/internal/models"
	"github.com/mousam-kumari/gift-flask/internal/observability"
)

// Pipeline modes, used as log and metric labels.
const (
	ModeStructured = "structured"
	ModeSearch     = "search"
)

// GiftService runs the prompt → completion → normalize → extract →
// deduplicate pipeline for both entry points.
type GiftService interface {
	// Generate suggests gifts for structured criteria.
	Generate(ctx context.Context, criteria models.Criteria) ([]models.GiftIdea, error)
	// Search suggests gifts for a free-text query.
	Search(ctx context.Context, query string) ([]models.GiftIdea, error)
}

type giftService struct {
	llm     LLM
	history HistoryStore
	metrics *observability.Metrics
	timeout time.Duration
}

// GiftServiceOption customises NewGiftService.
type GiftServiceOption func(*giftService)

// WithMetrics records pipeline outcomes on m.
func WithMetrics(m *observability.Metrics) GiftServiceOption {
	return func(s *giftService) {
		s.metrics = m
	}
}

// WithCompletionTimeout bounds every completion call. Zero disables the
// bound and leaves deadlines to the caller's context.
func WithCompletionTimeout(d time.Duration) GiftServiceOption {
	return func(s *giftService) {
		s.timeout = d
	}
}

// NewGiftService wires the completion client and the history baseline.
func NewGiftService(llm LLM, history HistoryStore, opts ...GiftServiceOption) GiftService {
	s := &giftService{
		llm:     llm,
		history: history,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *giftService) Generate(ctx context.Context, criteria models.Criteria) ([]models.GiftIdea, error) {
	return s.run(ctx, ModeStructured, BuildStructuredPrompt(criteria))
}

func (s *giftService) Search(ctx context.Context, query string) ([]models.GiftIdea, error) {
	prompt, err := BuildSearchPrompt(query)
	if err != nil {
		s.metrics.ObserveGeneration(ModeSearch, observability.OutcomeInvalidInput)
		return nil, err
	}
	return s.run(ctx, ModeSearch, prompt)
}

func (s *giftService) run(ctx context.Context, mode, prompt string) ([]models.GiftIdea, error) {
	logger := logging.From(ctx).With("mode", mode)
	logger.Debug("generated prompt", "prompt", prompt)

	raw, err := s.complete(ctx, prompt)
	if err != nil {
		logger.Error("completion failed", "error", err)
		s.metrics.ObserveGeneration(mode, observability.OutcomeGenerationFailure)
		return nil, goerr.Wrap(ErrGenerationFailure, "failed to generate gift ideas", goerr.V("mode", mode), goerr.V("cause", err.Error()))
	}
	logger.Debug("model response", "text", raw)

	cleaned := Normalize(raw)
	logger.Debug("cleaned response text", "text", cleaned)

	ideas := Extract(cleaned)
	logger.Debug("processed gift ideas", "ideas", ideas)

	unique, err := FilterAndCommit(ctx, s.history, ideas)
	if err != nil {
		return nil, err
	}
	logger.Debug("unique gift ideas", "ideas", unique, "history_size", s.history.Len(ctx))

	s.metrics.ObserveGeneration(mode, observability.OutcomeOK)
	s.metrics.ObserveIdeas(mode, len(ideas), len(unique))
	s.metrics.SetHistorySize(s.history.Len(ctx))

	return unique, nil
}

// complete calls the LLM outside of any history lock.
func (s *giftService) complete(ctx context.Context, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.llm.GenerateResponse(ctx, prompt)
	s.metrics.ObserveCompletion(time.Since(start))
	if err != nil {
		return "", err
	}
	return text, nil
}
