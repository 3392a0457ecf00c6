// Package engine holds the plumbing shared by the dual-path engines: the
// optional model client, logging, metrics and the fallback bookkeeping.
package engine

import (
	"github.com/jonathan/skill-intel/internal/llm"
	"github.com/jonathan/skill-intel/internal/observability"
	"github.com/jonathan/skill-intel/internal/types"
	"go.uber.org/zap"
)

// Base is embedded by every engine. A nil Client means the engine only runs
// its deterministic fallback.
type Base struct {
	Name    string
	Client  llm.Client
	Tier    llm.ModelTier
	Logger  *zap.Logger
	Metrics *observability.Metrics
}

// Option configures a Base.
type Option func(*Base)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Base) {
		if l != nil {
			b.Logger = l
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *observability.Metrics) Option {
	return func(b *Base) {
		b.Metrics = m
	}
}

// WithTier overrides the engine's default model tier.
func WithTier(tier llm.ModelTier) Option {
	return func(b *Base) {
		if tier != "" {
			b.Tier = tier
		}
	}
}

// NewBase creates a Base for the named engine.
func NewBase(name string, client llm.Client, tier llm.ModelTier, opts ...Option) Base {
	b := Base{
		Name:   name,
		Client: client,
		Tier:   tier,
		Logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	b.Logger = b.Logger.With(zap.String("engine", name))
	return b
}

// Online reports whether the model path is available.
func (b *Base) Online() bool {
	return b.Client != nil
}

// FellBack logs why the model path was abandoned.
func (b *Base) FellBack(err error) {
	b.Logger.Warn("model path failed, using fallback", zap.Error(err))
}

// Done records the path that produced a result.
func (b *Base) Done(source types.ResultSource) {
	b.Metrics.RecordEngineResult(b.Name, source)
	b.Logger.Debug("engine result", zap.String("source", string(source)))
}
