// Package main provides the entry point for the skill intelligence CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	offline    bool
	outputFile string
	verbose    bool

	browserRender bool
)

var rootCmd = &cobra.Command{
	Use:   "skill_intel",
	Short: "Skill intelligence engine",
	Long: "Skill intelligence extracts skills from resumes and syllabi, analyzes skill gaps, recommends " +
		"curriculum changes, plans learning roadmaps and forecasts skill demand. Every model-backed " +
		"operation falls back to deterministic heuristics when the model is unavailable.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "Run without a model client (heuristics only)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "out", "o", "", "Write JSON output to this file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print a readable summary to stderr")
	rootCmd.PersistentFlags().BoolVar(&browserRender, "browser", false, "Render script-heavy input pages in headless Chrome")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
