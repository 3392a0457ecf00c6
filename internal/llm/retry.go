package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RetryClient is a decorator that retries rate-limited calls with
// exponential backoff. Every other failure kind is returned immediately.
type RetryClient struct {
	inner  Client
	config RetryConfig
	logger *zap.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps a Client with retry logic.
func WithRetry(c Client, cfg RetryConfig, logger *zap.Logger) *RetryClient {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultRetryConfig().MaxAttempts
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RetryClient{inner: c, config: cfg, logger: logger, sleep: sleepContext}
}

// Complete calls the inner client, sleeping BaseDelay×2^attempt after each
// rate-limited attempt except the last.
func (r *RetryClient) Complete(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	var lastErr error
	for attempt := range r.config.MaxAttempts {
		text, err := r.inner.Complete(ctx, prompt, tier)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !IsRateLimited(err) {
			return "", err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt)
		r.logger.Warn("rate limited, backing off",
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", r.config.MaxAttempts),
			zap.Duration("wait", wait),
		)
		if r.config.OnRetry != nil {
			r.config.OnRetry(attempt+1, wait)
		}
		if err := r.sleep(ctx, wait); err != nil {
			return "", &ErrServiceUnavailable{Err: err}
		}
	}
	return "", lastErr
}

// Model delegates to the inner client.
func (r *RetryClient) Model(tier ModelTier) string {
	return r.inner.Model(tier)
}

// Close delegates to the inner client.
func (r *RetryClient) Close() error {
	return r.inner.Close()
}

// backoff computes the wait duration for the given zero-based attempt.
func (r *RetryClient) backoff(attempt int) time.Duration {
	return r.config.BaseDelay * time.Duration(1<<attempt)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
