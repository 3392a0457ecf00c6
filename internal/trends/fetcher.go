package trends

import (
	"context"

	"github.com/jonathan/skill-intel/internal/types"
	"go.uber.org/zap"
)

// Fetcher turns Source series into measurements. It never fails: any
// source error yields a zero measurement and an empty series.
type Fetcher struct {
	source    Source
	timeframe string
	region    string
	logger    *zap.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeframe overrides DefaultTimeframe.
func WithTimeframe(tf string) FetcherOption {
	return func(f *Fetcher) {
		if tf != "" {
			f.timeframe = tf
		}
	}
}

// WithRegion overrides DefaultRegion.
func WithRegion(region string) FetcherOption {
	return func(f *Fetcher) {
		if region != "" {
			f.region = region
		}
	}
}

// WithFetcherLogger sets the logger.
func WithFetcherLogger(l *zap.Logger) FetcherOption {
	return func(f *Fetcher) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFetcher creates a Fetcher over source.
func NewFetcher(source Source, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		source:    source,
		timeframe: DefaultTimeframe,
		region:    DefaultRegion,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch queries keyword and summarizes its series.
func (f *Fetcher) Fetch(ctx context.Context, keyword string) (types.TrendMeasurement, []types.TrendPoint) {
	if f.source == nil {
		return types.TrendMeasurement{}, []types.TrendPoint{}
	}

	points, err := f.source.Query(ctx, keyword, f.timeframe, f.region)
	if err != nil {
		f.logger.Warn("trend query failed, using zero measurement",
			zap.String("keyword", keyword),
			zap.Error(err),
		)
		return types.TrendMeasurement{}, []types.TrendPoint{}
	}
	if points == nil {
		points = []types.TrendPoint{}
	}
	return Measure(points), points
}
