// Package summarize turns free-form text into a shorter summary through an
// LLM gateway, enforcing locally what the model cannot be trusted with: a
// sentence ceiling, a result strictly shorter than the input and a non-empty
// result.
package summarize

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"text-summarizer/internal/llm"
	"text-summarizer/internal/sentences"
)

// MinInputChars is the shortest trimmed input worth summarizing.
const MinInputChars = 20

// Input is one summarization request.
type Input struct {
	Text string
	// MaxSentences is the explicit cap; nil, zero or negative means absent.
	MaxSentences *int
	// Length is used when no valid explicit cap is given; empty means absent.
	Length Length
}

// Output is a successful summary.
type Output struct {
	Summary string
}

// Service orchestrates one gateway call per request. It holds no per-call
// state and is safe for concurrent use.
type Service struct {
	gateway llm.Gateway
	log     *slog.Logger
	metrics MetricsRecorder
}

// NewService builds a Service. A nil metrics recorder records nothing.
func NewService(gateway llm.Gateway, log *slog.Logger, metrics MetricsRecorder) *Service {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &Service{gateway: gateway, log: log, metrics: metrics}
}

// Summarize returns a summary of in.Text. Gateway errors are returned as is.
func (s *Service) Summarize(ctx context.Context, in Input) (out Output, err error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveRequest(outcome(err), time.Since(start))
	}()

	text := strings.TrimSpace(in.Text)
	inputChars := sentences.Len(text)
	if inputChars < MinInputChars {
		return Output{}, ErrInputTooShort
	}

	maxSentences := ResolveCap(in.MaxSentences, in.Length)
	log := s.log.With("summary_id", uuid.NewString(), "cap", maxSentences, "input_chars", inputChars)

	raw, err := s.gateway.Generate(ctx, buildPrompt(text, maxSentences), maxSentences)
	if err != nil {
		log.Warn("llm generate failed", "err", err)
		return Output{}, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		log.Warn("llm returned empty output")
		return Output{}, ErrEmptyResponse
	}

	summary := strings.TrimSpace(sentences.Cap(raw, maxSentences))
	if n := sentences.Len(summary); n >= inputChars {
		log.Info("llm output not shorter than input, using extractive fallback", "llm_chars", n)
		s.metrics.ObserveFallback(FallbackExpansion)

		var shortened bool
		summary, shortened = extractiveSummary(text, maxSentences)
		if shortened {
			s.metrics.ObserveFallback(FallbackStrictShortness)
		}
	}
	if summary == "" {
		log.Error("guardrails produced an empty summary")
		return Output{}, ErrEmptyResponse
	}

	outputChars := sentences.Len(summary)
	s.metrics.ObserveLength(outputChars)
	log.Debug("summary produced", "output_chars", outputChars)
	return Output{Summary: summary}, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrInputTooShort):
		return OutcomeInputTooShort
	case errors.Is(err, ErrEmptyResponse):
		return OutcomeEmptyResponse
	default:
		return OutcomeProviderError
	}
}
