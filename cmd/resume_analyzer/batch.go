package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/analysis"
)

var (
	batchJob         string
	batchJobURL      string
	batchSkills      string
	batchSynonyms    string
	batchConcurrency int
	batchVerbose     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <resume files...>",
	Short: "Score many resumes against one job description",
	Long:  "Score each resume file concurrently against the same job description and print results ranked by score.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job description text file")
	batchCmd.Flags().StringVarP(&batchJobURL, "job-url", "u", "", "URL to fetch the job description from")
	batchCmd.Flags().StringVar(&batchSkills, "skills", "", "Path to skills.json (built-in list when empty)")
	batchCmd.Flags().StringVar(&batchSynonyms, "synonyms", "", "Path to synonyms.json (built-in table when empty)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Resumes scored in parallel")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed progress information")
	rootCmd.AddCommand(batchCmd)
}

// batchResult pairs one resume file with its report or failure.
type batchResult struct {
	File   string           `json:"file"`
	Report *analysis.Report `json:"report,omitempty"`
	Error  string           `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchJob != "" && batchJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	analyzer, err := buildAnalyzer(batchSkills, batchSynonyms)
	if err != nil {
		return err
	}

	jobDescription, err := loadJobDescription(cmd, batchJob, batchJobURL, batchVerbose)
	if err != nil {
		return err
	}

	results := make([]batchResult, len(args))

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(batchConcurrency)
	for i, file := range args {
		g.Go(func() error {
			results[i] = scoreOne(analyzer, file, jobDescription)
			return nil
		})
	}
	// Per-file failures are reported in the result list, never as a group
	// error, so one unreadable file does not sink the whole batch.
	_ = g.Wait()

	sort.SliceStable(results, func(a, b int) bool {
		scoreA, scoreB := -1, -1
		if results[a].Report != nil {
			scoreA = results[a].Report.Score
		}
		if results[b].Report != nil {
			scoreB = results[b].Report.Score
		}
		return scoreA > scoreB
	})

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func scoreOne(analyzer *analysis.Analyzer, file, jobDescription string) batchResult {
	text, err := readResume(file)
	if err != nil {
		return batchResult{File: file, Error: err.Error()}
	}
	return batchResult{File: file, Report: analyzer.Analyze(text, jobDescription)}
}
