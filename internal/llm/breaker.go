package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerConfig holds the configuration for a gateway circuit breaker.
type BreakerConfig struct {
	// Name is reported as the provider of fast-fail errors and in logs.
	Name string

	// MaxRequests is the maximum number of requests allowed in half-open state.
	MaxRequests uint32

	// Interval is the cyclic period of the closed state to clear counts.
	Interval time.Duration

	// Timeout is how long the circuit stays open before probing again.
	Timeout time.Duration

	// FailureThreshold is the failure ratio that trips the circuit, e.g. 0.6.
	FailureThreshold float64

	// MinRequests is the minimum number of requests before the ratio counts.
	MinRequests uint32
}

// DefaultBreakerConfig returns settings suited to a remote LLM API.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// BreakerGateway fails fast while the wrapped gateway keeps failing. It never
// retries; every call is either forwarded once or rejected.
type BreakerGateway struct {
	next    Gateway
	name    string
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerGateway wraps next with a circuit breaker.
func NewBreakerGateway(next Gateway, cfg BreakerConfig, log *slog.Logger) *BreakerGateway {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureThreshold
		},
		// A caller hanging up says nothing about provider health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("llm circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}
	return &BreakerGateway{
		next:    next,
		name:    cfg.Name,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (g *BreakerGateway) Generate(ctx context.Context, prompt string, maxSentences int) (string, error) {
	out, err := g.breaker.Execute(func() (interface{}, error) {
		return g.next.Generate(ctx, prompt, maxSentences)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", &ProviderError{Provider: g.name, Message: "circuit breaker open", Err: err}
		}
		return "", err
	}
	return out.(string), nil
}

// State returns the current breaker state.
func (g *BreakerGateway) State() gobreaker.State {
	return g.breaker.State()
}
