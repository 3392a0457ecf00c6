package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-intel/internal/types"
)

var (
	classifyInterest float64
	classifyGrowth   float64
)

var classifyTrendCmd = &cobra.Command{
	Use:   "classify-trend",
	Short: "Classify a skill's demand trend",
	Long:  "Classifies a growth rate (percent) and average search interest (0-100) as emerging, high-growth, saturated or declining.",
	RunE:  runClassifyTrend,
}

type classification struct {
	types.TrendMeasurement
	TrendStatus types.TrendCategory `json:"trend_status"`
}

func init() {
	classifyTrendCmd.Flags().Float64Var(&classifyInterest, "interest", 0, "Average search interest, 0 to 100")
	classifyTrendCmd.Flags().Float64Var(&classifyGrowth, "growth", 0, "Growth rate in percent")

	if err := classifyTrendCmd.MarkFlagRequired("growth"); err != nil {
		panic(fmt.Sprintf("failed to mark growth flag as required: %v", err))
	}

	rootCmd.AddCommand(classifyTrendCmd)
}

func runClassifyTrend(cmd *cobra.Command, _ []string) error {
	m := types.TrendMeasurement{AverageInterest: classifyInterest, GrowthRate: classifyGrowth}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("invalid trend measurement: %w", err)
	}

	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	return emit(cmd, "", classification{TrendMeasurement: m, TrendStatus: a.svc.ClassifyTrend(m)})
}
