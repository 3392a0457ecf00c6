package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/skill-intel/internal/db"
	"github.com/jonathan/skill-intel/internal/types"
)

var (
	refreshSkills string
	refreshDomain string
)

var refreshTrendsCmd = &cobra.Command{
	Use:   "refresh-trends",
	Short: "Refresh stored skill demand from the trend-data endpoint",
	Long: "Measures catalogue skills (or --skills) against the trend-data endpoint and stores current demand, " +
		"trend status and forecasts. Requires DATABASE_URL and TRENDS_API_URL.",
	RunE: runRefreshTrends,
}

type refreshSummary struct {
	Updated []string           `json:"updated"`
	Missing []string           `json:"missing"`
	Trends  []types.SkillTrend `json:"trends"`
}

func init() {
	refreshTrendsCmd.Flags().StringVar(&refreshSkills, "skills", "", "Comma-separated skills to refresh (default: whole catalogue)")
	refreshTrendsCmd.Flags().StringVar(&refreshDomain, "domain", "", "Only refresh catalogue skills of this domain")
	rootCmd.AddCommand(refreshTrendsCmd)
}

func runRefreshTrends(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	analyzer := a.trendAnalyzer()
	if analyzer == nil {
		return fmt.Errorf("refresh-trends requires TRENDS_API_URL to be configured")
	}
	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	names := splitList(refreshSkills)
	if len(names) == 0 {
		catalogue, err := store.ListAllSkills(ctx, refreshDomain)
		if err != nil {
			return err
		}
		names = db.SkillNames(catalogue)
	}

	results, err := analyzer.AnalyzeSkills(ctx, names)
	if err != nil {
		return err
	}

	summary := refreshSummary{Updated: []string{}, Missing: []string{}, Trends: results}
	for _, trend := range results {
		ok, err := store.UpdateSkillTrend(ctx, trend)
		if err != nil {
			return err
		}
		if !ok {
			a.logger.Warn("skill not in catalogue", zap.String("skill", trend.Skill))
			summary.Missing = append(summary.Missing, trend.Skill)
			continue
		}
		summary.Updated = append(summary.Updated, trend.Skill)
	}
	a.logger.Info("refreshed skill trends", zap.Int("updated", len(summary.Updated)), zap.Int("missing", len(summary.Missing)))

	if p := printer(cmd); p != nil {
		p.PrintSkillTrends(results)
	}
	return emit(cmd, "", summary)
}
