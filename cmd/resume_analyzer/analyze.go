package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/skillcfg"
)

var (
	analyzeResume     string
	analyzeJob        string
	analyzeJobURL     string
	analyzeConfigFile string
	analyzeSkills     string
	analyzeSynonyms   string
	analyzeFormat     string
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score one resume and print the report as JSON",
	Long:  "Score a resume file against a job description from a file or URL. Without a job description only resume quality signals contribute.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (.pdf, .docx, or .txt)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVarP(&analyzeJobURL, "job-url", "u", "", "URL to fetch the job description from")
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeSkills, "skills", "", "Path to skills.json (built-in list when empty)")
	analyzeCmd.Flags().StringVar(&analyzeSynonyms, "synonyms", "", "Path to synonyms.json (built-in table when empty)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "json", "Output format: json or text")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress information")
	rootCmd.AddCommand(analyzeCmd)
}

// analyzeOptions are the effective inputs after merging flags with an
// optional config file.
type analyzeOptions struct {
	Resume       string
	Job          string
	JobURL       string
	SkillsFile   string
	SynonymsFile string
	Verbose      bool
}

func resolveAnalyzeOptions() (*analyzeOptions, error) {
	flagCfg := config.Config{
		Resume:       analyzeResume,
		Job:          analyzeJob,
		JobURL:       analyzeJobURL,
		SkillsFile:   analyzeSkills,
		SynonymsFile: analyzeSynonyms,
	}

	merged := flagCfg
	if analyzeConfigFile != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return nil, err
		}
		merged = flagCfg.MergeWithDefaults(*fileCfg)
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	if merged.Resume == "" {
		return nil, fmt.Errorf("--resume is required (or 'resume' in the config file)")
	}

	return &analyzeOptions{
		Resume:       merged.Resume,
		Job:          merged.Job,
		JobURL:       merged.JobURL,
		SkillsFile:   merged.SkillsFile,
		SynonymsFile: merged.SynonymsFile,
		Verbose:      analyzeVerbose || merged.Verbose,
	}, nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	opts, err := resolveAnalyzeOptions()
	if err != nil {
		return err
	}

	analyzer, err := buildAnalyzer(opts.SkillsFile, opts.SynonymsFile)
	if err != nil {
		return err
	}

	resumeText, err := readResume(opts.Resume)
	if err != nil {
		return err
	}

	jobDescription, err := loadJobDescription(cmd, opts.Job, opts.JobURL, opts.Verbose)
	if err != nil {
		return err
	}

	report := analyzer.Analyze(resumeText, jobDescription)

	switch analyzeFormat {
	case "text":
		observability.NewPrinter(cmd.OutOrStdout()).PrintReport(report)
		return nil
	case "json":
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	default:
		return fmt.Errorf("unknown format: %s (expected json or text)", analyzeFormat)
	}
}

func buildAnalyzer(skillsFile, synonymsFile string) (*analysis.Analyzer, error) {
	skills, err := skillcfg.LoadSkills(skillsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}
	synonyms, err := skillcfg.LoadSynonyms(synonymsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load synonyms: %w", err)
	}
	return analysis.NewAnalyzer(synonyms, skills), nil
}

func readResume(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}
	text, err := extraction.ExtractText(path, data)
	if err != nil {
		return "", fmt.Errorf("failed to extract resume text: %w", err)
	}
	return text, nil
}

// loadJobDescription returns the JD text from a file or URL; empty when
// neither source is configured.
func loadJobDescription(cmd *cobra.Command, jobFile, jobURL string, verbose bool) (string, error) {
	switch {
	case jobFile != "":
		text, _, err := ingestion.IngestFromFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to ingest job description: %w", err)
		}
		return text, nil
	case jobURL != "":
		text, meta, err := ingestion.IngestFromURL(cmd.Context(), jobURL, verbose)
		if err != nil {
			return "", fmt.Errorf("failed to ingest job description: %w", err)
		}
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "Fetched %d words from %s posting\n", meta.WordCount, meta.Platform)
		}
		return text, nil
	default:
		return "", nil
	}
}
