package trends

import (
	"context"

	"github.com/jonathan/skill-intel/internal/types"
)

// Default query parameters
const (
	DefaultTimeframe = "today 12-m"
	DefaultRegion    = "IN"
)

// Source provides interest-over-time series for a keyword.
type Source interface {
	Query(ctx context.Context, keyword, timeframe, region string) ([]types.TrendPoint, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, keyword, timeframe, region string) ([]types.TrendPoint, error)

// Query calls f.
func (f SourceFunc) Query(ctx context.Context, keyword, timeframe, region string) ([]types.TrendPoint, error) {
	return f(ctx, keyword, timeframe, region)
}
