package llm

import (
	"context"
	"errors"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerClient short-circuits calls to a provider that keeps failing.
// While open, Complete fails immediately with ErrServiceUnavailable so callers
// reach their fallback without waiting on retries.
type BreakerClient struct {
	inner Client
	cb    *gobreaker.CircuitBreaker
}

// WithBreaker wraps a Client with a circuit breaker.
func WithBreaker(c Client, cfg BreakerConfig, logger *zap.Logger) *BreakerClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	threshold := cfg.ConsecutiveFailures
	if threshold == 0 {
		threshold = DefaultBreakerConfig().ConsecutiveFailures
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "llm",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			// A rejected credential is not a provider outage.
			var authErr *ErrAuthentication
			return errors.As(err, &authErr)
		},
	})

	return &BreakerClient{inner: c, cb: cb}
}

// Complete runs the inner call through the breaker.
func (b *BreakerClient) Complete(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Complete(ctx, prompt, tier)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", &ErrServiceUnavailable{Err: err}
		}
		return "", err
	}
	return out.(string), nil
}

// State reports the breaker state (closed, half-open, open).
func (b *BreakerClient) State() string {
	return b.cb.State().String()
}

// Model delegates to the inner client.
func (b *BreakerClient) Model(tier ModelTier) string {
	return b.inner.Model(tier)
}

// Close delegates to the inner client.
func (b *BreakerClient) Close() error {
	return b.inner.Close()
}
