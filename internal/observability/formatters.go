package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/skill-intel/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose CLI mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-pads to the inner box width, counting runes
func pad(s string) string {
	if n := boxWidth - 4 - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}

// writeList writes a labelled bullet list, eliding past limit
func writeList(sb *strings.Builder, label string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	for _, item := range items[:min(len(items), limit)] {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

func sourceLine(source types.ResultSource, note string) string {
	line := fmt.Sprintf("Source:   %s", source)
	if note != "" {
		line += "\n" + note
	}
	return line
}

// PrintExtractedSkills outputs the skills found in a document.
func (p *Printer) PrintExtractedSkills(skills *types.ExtractedSkills) {
	if skills == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d skills\n\n", len(skills.Skills)))
	writeList(&sb, "Skills", skills.Skills, 10)
	sb.WriteString(sourceLine(skills.Source, ""))

	p.printBox("EXTRACTED SKILLS", sb.String())
}

// PrintGapResult outputs a gap analysis summary.
func (p *Printer) PrintGapResult(gap *types.GapResult) {
	if gap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Gap score: %.2f (1.00 = no gap)\n", gap.GapScore))
	sb.WriteString(fmt.Sprintf("Missing:   %d skills\n\n", len(gap.MissingSkills)))
	writeList(&sb, "Short-term priorities", gap.PriorityShortTerm, maxItemsToShow)
	writeList(&sb, "Long-term priorities", gap.PriorityLongTerm, maxItemsToShow)
	sb.WriteString(sourceLine(gap.Source, gap.Note))

	p.printBox("SKILL GAP ANALYSIS", sb.String())
}

// PrintCurriculumRecommendation outputs curriculum changes and readiness.
func (p *Printer) PrintCurriculumRecommendation(rec *types.CurriculumRecommendation) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Alignment: %.2f\n", rec.AlignmentScore))
	sb.WriteString("Readiness:\n")
	sb.WriteString(fmt.Sprintf("  placements %.2f\n", rec.ReadinessScores.Placements))
	sb.WriteString(fmt.Sprintf("  industry %.2f\n", rec.ReadinessScores.IndustryCollaboration))
	sb.WriteString(fmt.Sprintf("  accreditation %.2f\n\n", rec.ReadinessScores.Accreditation))
	writeList(&sb, "Add", rec.SkillsToAdd, maxItemsToShow)
	writeList(&sb, "Remove", rec.SkillsToRemove, 3)
	writeList(&sb, "Reduce focus", rec.SkillsToReduceFocus, 3)
	writeList(&sb, "Labs", rec.LabSuggestions, 3)
	sb.WriteString(sourceLine(rec.Source, rec.Note))

	p.printBox("CURRICULUM RECOMMENDATION", sb.String())
}

// PrintRoadmap outputs the roadmap steps with durations.
func (p *Printer) PrintRoadmap(plan *types.RoadmapPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(plan.Title + "\n")
	sb.WriteString(fmt.Sprintf("%d steps, %d weeks total\n\n", len(plan.Steps), plan.TotalEstimatedWeeks))

	count := min(len(plan.Steps), maxItemsToShow)
	for _, step := range plan.Steps[:count] {
		sb.WriteString(fmt.Sprintf("%2d. %s (%dw)\n", step.StepNumber, step.Skill, step.EstimatedTimeWeeks))
		if len(step.Prerequisites) > 0 {
			sb.WriteString(fmt.Sprintf("    after: %s\n", strings.Join(step.Prerequisites, ", ")))
		}
	}
	if len(plan.Steps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more steps\n", len(plan.Steps)-maxItemsToShow))
	}
	sb.WriteString("\n")
	writeList(&sb, "Capstones", plan.CapstoneIdeas, 3)
	sb.WriteString(sourceLine(plan.Source, plan.Note))

	p.printBox("LEARNING ROADMAP", sb.String())
}

// PrintSkillTrends outputs one line per analyzed skill.
func (p *Printer) PrintSkillTrends(trends []types.SkillTrend) {
	if len(trends) == 0 {
		return
	}

	var sb strings.Builder
	for _, t := range trends {
		sb.WriteString(fmt.Sprintf("%-20s %-12s %6.1f %+7.1f%%\n",
			truncate(t.Skill, 20), t.TrendStatus, t.CurrentDemand, t.GrowthRate))
	}

	p.printBox("SKILL TRENDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintForecast outputs a demand forecast.
func (p *Printer) PrintForecast(f *types.SkillForecast) {
	if f == nil {
		return
	}

	var sb strings.Builder
	if f.SkillName != "" {
		sb.WriteString(fmt.Sprintf("Skill:    %s\n", f.SkillName))
	}
	sb.WriteString(fmt.Sprintf("Status:   %s\n", f.TrendStatus))
	sb.WriteString(fmt.Sprintf("Now:      %.1f\n", f.CurrentDemand))
	sb.WriteString(fmt.Sprintf("6 months: %.1f\n", f.Forecast6M))
	sb.WriteString(fmt.Sprintf("1 year:   %.1f\n", f.Forecast1Y))
	sb.WriteString(fmt.Sprintf("3 years:  %.1f", f.Forecast3Y))

	p.printBox("DEMAND FORECAST", sb.String())
}
