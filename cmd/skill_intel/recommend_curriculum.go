package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-intel/internal/schemas"
	"github.com/jonathan/skill-intel/internal/types"
)

var (
	curriculumSkills   string
	curriculumSyllabus string
	curriculumIndustry string
	curriculumFuture   string
)

var recommendCurriculumCmd = &cobra.Command{
	Use:   "recommend-curriculum",
	Short: "Recommend curriculum changes against industry demand",
	Long: "Compares what a curriculum teaches (--skills, or skills extracted from --syllabus) with current " +
		"industry skills and future-demand skills, and writes a CurriculumRecommendation JSON.",
	RunE: runRecommendCurriculum,
}

func init() {
	recommendCurriculumCmd.Flags().StringVar(&curriculumSkills, "skills", "", "Comma-separated skills the curriculum teaches")
	recommendCurriculumCmd.Flags().StringVar(&curriculumSyllabus, "syllabus", "", "Syllabus file or URL to extract curriculum skills from")
	recommendCurriculumCmd.Flags().StringVar(&curriculumIndustry, "industry", "", "Comma-separated current industry skills (required)")
	recommendCurriculumCmd.Flags().StringVar(&curriculumFuture, "future", "", "Comma-separated future-demand skills")
	recommendCurriculumCmd.MarkFlagsMutuallyExclusive("skills", "syllabus")

	if err := recommendCurriculumCmd.MarkFlagRequired("industry"); err != nil {
		panic(fmt.Sprintf("failed to mark industry flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCurriculumCmd)
}

func runRecommendCurriculum(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	req := types.CurriculumRequest{
		CurriculumSkills: splitList(curriculumSkills),
		IndustrySkills:   splitList(curriculumIndustry),
		FutureSkills:     splitList(curriculumFuture),
	}
	if curriculumSyllabus != "" {
		text, err := a.readText(cmd, curriculumSyllabus, "")
		if err != nil {
			return err
		}
		req.CurriculumSkills = a.svc.ExtractCurriculumSkills(cmd.Context(), text).Skills
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid curriculum request: %w", err)
	}

	result := a.svc.RecommendCurriculum(cmd.Context(), req.CurriculumSkills, req.IndustrySkills, req.FutureSkills)
	if p := printer(cmd); p != nil {
		p.PrintCurriculumRecommendation(result)
	}
	return emit(cmd, schemas.CurriculumRecommendation, result)
}
