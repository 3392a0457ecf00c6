package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedSkillsCmd = &cobra.Command{
	Use:   "seed-skills",
	Short: "Seed the skill catalogue",
	Long:  "Applies the database schema and installs the built-in skill catalogue when it is empty. Requires DATABASE_URL.",
	RunE:  runSeedSkills,
}

type seedSummary struct {
	Inserted int `json:"inserted"`
	Total    int `json:"total"`
}

func init() {
	rootCmd.AddCommand(seedSkillsCmd)
}

func runSeedSkills(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	inserted, err := store.SeedSkills(ctx)
	if err != nil {
		return err
	}
	total, err := store.CountSkills(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("seeded skill catalogue", zap.Int("inserted", inserted), zap.Int("total", total))
	return emit(cmd, "", seedSummary{Inserted: inserted, Total: total})
}
