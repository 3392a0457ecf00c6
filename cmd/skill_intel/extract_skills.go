package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/skill-intel/internal/schemas"
	"github.com/jonathan/skill-intel/internal/types"
)

var (
	extractInput      string
	extractText       string
	extractCurriculum bool
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "Extract skills from a resume or syllabus",
	Long: "Reads a resume (or, with --curriculum, a syllabus) from a .txt, .md or .html file, an http(s) URL, " +
		"stdin (--in -) or --text and writes the extracted skill list as ExtractedSkills JSON.",
	RunE: runExtractSkills,
}

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractInput, "in", "i", "", "Path or URL of the input document, or - for stdin")
	extractSkillsCmd.Flags().StringVar(&extractText, "text", "", "Inline input text")
	extractSkillsCmd.Flags().BoolVar(&extractCurriculum, "curriculum", false, "Treat the input as a curriculum or syllabus")
	extractSkillsCmd.MarkFlagsMutuallyExclusive("in", "text")
	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	text, err := a.readText(cmd, extractInput, extractText)
	if err != nil {
		return err
	}

	var result *types.ExtractedSkills
	if extractCurriculum {
		result = a.svc.ExtractCurriculumSkills(cmd.Context(), text)
	} else {
		result = a.svc.ExtractSkills(cmd.Context(), text)
	}

	if p := printer(cmd); p != nil {
		p.PrintExtractedSkills(result)
	}
	return emit(cmd, schemas.ExtractedSkills, result)
}
