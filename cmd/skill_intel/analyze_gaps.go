package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-intel/internal/heuristics"
	"github.com/jonathan/skill-intel/internal/schemas"
	"github.com/jonathan/skill-intel/internal/types"
)

var (
	gapsCurrent  string
	gapsResume   string
	gapsRequired string
	gapsRole     string
	gapsDomain   string
)

var analyzeGapsCmd = &cobra.Command{
	Use:   "analyze-gaps",
	Short: "Compare current skills with a target role",
	Long: "Compares current skills (--current, or skills extracted from --resume) with the skills the target " +
		"role requires and writes a GapResult JSON. Without --required the role table supplies the list.",
	RunE: runAnalyzeGaps,
}

func init() {
	analyzeGapsCmd.Flags().StringVar(&gapsCurrent, "current", "", "Comma-separated current skills")
	analyzeGapsCmd.Flags().StringVar(&gapsResume, "resume", "", "Resume file or URL to extract current skills from")
	analyzeGapsCmd.Flags().StringVar(&gapsRequired, "required", "", "Comma-separated required skills")
	analyzeGapsCmd.Flags().StringVarP(&gapsRole, "role", "r", "", "Target role (required)")
	analyzeGapsCmd.Flags().StringVar(&gapsDomain, "domain", "", "Domain of the target role")
	analyzeGapsCmd.MarkFlagsMutuallyExclusive("current", "resume")

	if err := analyzeGapsCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeGapsCmd)
}

func runAnalyzeGaps(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	req := types.GapRequest{
		CurrentSkills:  splitList(gapsCurrent),
		RequiredSkills: splitList(gapsRequired),
		TargetRole:     gapsRole,
		Domain:         gapsDomain,
	}
	if gapsResume != "" {
		text, err := a.readText(cmd, gapsResume, "")
		if err != nil {
			return err
		}
		req.CurrentSkills = a.svc.ExtractSkills(cmd.Context(), text).Skills
	}
	if len(req.RequiredSkills) == 0 {
		req.RequiredSkills = heuristics.RequiredSkillsForRole(req.TargetRole)
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid gap request: %w", err)
	}

	result := a.svc.AnalyzeGaps(cmd.Context(), req.CurrentSkills, req.RequiredSkills, req.TargetRole)
	if p := printer(cmd); p != nil {
		p.PrintGapResult(result)
	}
	return emit(cmd, schemas.GapResult, result)
}
