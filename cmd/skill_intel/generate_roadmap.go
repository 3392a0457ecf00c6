package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-intel/internal/schemas"
	"github.com/jonathan/skill-intel/internal/types"
)

var (
	roadmapCurrent string
	roadmapRole    string
	roadmapMonths  int
	roadmapDomain  string
)

var generateRoadmapCmd = &cobra.Command{
	Use:   "generate-roadmap",
	Short: "Plan a learning roadmap toward a target role",
	Long:  "Plans the skills to learn, in order, to reach the target role within the timeline and writes a RoadmapPlan JSON.",
	RunE:  runGenerateRoadmap,
}

func init() {
	generateRoadmapCmd.Flags().StringVar(&roadmapCurrent, "current", "", "Comma-separated current skills")
	generateRoadmapCmd.Flags().StringVarP(&roadmapRole, "role", "r", "", "Target role (required)")
	generateRoadmapCmd.Flags().IntVar(&roadmapMonths, "months", 6, "Target timeline in months")
	generateRoadmapCmd.Flags().StringVar(&roadmapDomain, "domain", "", "Domain of the target role")

	if err := generateRoadmapCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(generateRoadmapCmd)
}

func runGenerateRoadmap(cmd *cobra.Command, _ []string) error {
	req := types.RoadmapRequest{
		CurrentSkills:  splitList(roadmapCurrent),
		TargetRole:     roadmapRole,
		TimelineMonths: roadmapMonths,
		Domain:         roadmapDomain,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid roadmap request: %w", err)
	}

	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	plan := a.svc.GenerateRoadmap(cmd.Context(), req.CurrentSkills, req.TargetRole, req.TimelineMonths, req.Domain)
	if p := printer(cmd); p != nil {
		p.PrintRoadmap(plan)
	}
	return emit(cmd, schemas.RoadmapPlan, plan)
}
