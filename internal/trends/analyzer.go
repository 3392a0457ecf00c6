package trends

import (
	"context"

	"github.com/jonathan/skill-intel/internal/types"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel source queries.
const DefaultConcurrency = 4

// Analyzer produces full trend analyses for batches of skills.
type Analyzer struct {
	fetcher     *Fetcher
	concurrency int
}

// NewAnalyzer creates an Analyzer. concurrency <= 0 uses DefaultConcurrency.
func NewAnalyzer(fetcher *Fetcher, concurrency int) *Analyzer {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Analyzer{fetcher: fetcher, concurrency: concurrency}
}

// Analyze measures, classifies and forecasts a single skill.
func (a *Analyzer) Analyze(ctx context.Context, skill string) types.SkillTrend {
	m, points := a.fetcher.Fetch(ctx, skill)
	return types.SkillTrend{
		Skill:         skill,
		CurrentDemand: m.AverageInterest,
		GrowthRate:    m.GrowthRate,
		TrendStatus:   ClassifyMeasurement(m),
		Forecasts:     Forecast(m.AverageInterest, m.GrowthRate),
		TrendData:     points,
	}
}

// AnalyzeSkills analyzes skills concurrently. Results keep input order.
// Only cancellation of ctx is returned as an error.
func (a *Analyzer) AnalyzeSkills(ctx context.Context, skills []string) ([]types.SkillTrend, error) {
	results := make([]types.SkillTrend, len(skills))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, skill := range skills {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = a.Analyze(gCtx, skill)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
