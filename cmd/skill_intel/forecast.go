package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-intel/internal/schemas"
	"github.com/jonathan/skill-intel/internal/types"
)

var (
	forecastSkill  string
	forecastDemand float64
	forecastGrowth float64
	forecastLive   bool
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Forecast demand for a skill",
	Long: "Projects demand at 6 months, 1 year and 3 years from a current demand and growth rate, or with --live " +
		"from the configured trend-data endpoint (TRENDS_API_URL). Writes a SkillForecast JSON.",
	RunE: runForecast,
}

func init() {
	forecastCmd.Flags().StringVarP(&forecastSkill, "skill", "s", "", "Skill name (required)")
	forecastCmd.Flags().Float64Var(&forecastDemand, "current-demand", 0, "Current demand, 0 to 100")
	forecastCmd.Flags().Float64Var(&forecastGrowth, "growth", 0, "Growth rate in percent")
	forecastCmd.Flags().BoolVar(&forecastLive, "live", false, "Measure the skill from the trend-data endpoint")

	if err := forecastCmd.MarkFlagRequired("skill"); err != nil {
		panic(fmt.Sprintf("failed to mark skill flag as required: %v", err))
	}

	rootCmd.AddCommand(forecastCmd)
}

func runForecast(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	var result *types.SkillForecast
	if forecastLive {
		analyzer := a.trendAnalyzer()
		if analyzer == nil {
			return fmt.Errorf("--live requires TRENDS_API_URL to be configured")
		}
		trend := analyzer.Analyze(cmd.Context(), forecastSkill)
		result = &types.SkillForecast{
			SkillName:      trend.Skill,
			CurrentDemand:  trend.CurrentDemand,
			TrendStatus:    trend.TrendStatus,
			TrendsScore:    trend.CurrentDemand,
			ForecastTriple: trend.Forecasts,
		}
	} else {
		req := types.ForecastRequest{CurrentDemand: forecastDemand, GrowthRate: forecastGrowth}
		if err := req.Validate(); err != nil {
			return fmt.Errorf("invalid forecast request: %w", err)
		}
		result = &types.SkillForecast{
			SkillName:      forecastSkill,
			CurrentDemand:  req.CurrentDemand,
			TrendStatus:    a.svc.ClassifyTrend(types.TrendMeasurement{AverageInterest: req.CurrentDemand, GrowthRate: req.GrowthRate}),
			TrendsScore:    req.CurrentDemand,
			ForecastTriple: a.svc.ForecastDemand(req.CurrentDemand, req.GrowthRate),
		}
	}

	if p := printer(cmd); p != nil {
		p.PrintForecast(result)
	}
	return emit(cmd, schemas.SkillForecast, result)
}
