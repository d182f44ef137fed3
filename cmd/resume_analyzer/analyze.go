package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long: `Runs the full matching pipeline for one resume and one job description:
keyword extraction, fuzzy skill alignment, semantic similarity, score
aggregation, and AI-written feedback.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeResume     string
	analyzeJob        string
	analyzeJobURL     string
	analyzeSkills     string
	analyzeLevel      string
	analyzeAPIKey     string
	analyzeVocabulary string
	analyzeThreshold  int
	analyzeSkipFB     bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	analyzeCmd.Flags().StringVar(&analyzeSkills, "skills", "", "Comma-separated required skills (skips AI skill derivation)")
	analyzeCmd.Flags().StringVar(&analyzeLevel, "experience-level", "", "Candidate experience level: fresher or experienced")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeVocabulary, "vocabulary", "", "Path to a custom skill vocabulary file (one phrase per line)")
	analyzeCmd.Flags().IntVar(&analyzeThreshold, "threshold", 0, "Fuzzy match threshold 0-100 (default 85)")
	analyzeCmd.Flags().BoolVar(&analyzeSkipFB, "skip-feedback", false, "Skip the AI feedback call")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var cfg config.Config
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("vocabulary") {
		cfg.VocabularyFile = analyzeVocabulary
	}
	if cmd.Flags().Changed("threshold") {
		cfg.FuzzyThreshold = analyzeThreshold
	}
	if cmd.Flags().Changed("skip-feedback") {
		cfg.SkipFeedback = analyzeSkipFB
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	resumeText, err := readTextFile(cfg.Resume)
	if err != nil {
		return err
	}

	jobText, err := loadJobText(ctx, cfg)
	if err != nil {
		return err
	}

	eng, client, err := newEngine(ctx, cfg, resolveAPIKey(cfg.APIKey), log)
	if err != nil {
		return err
	}
	defer func() {
		if client != nil {
			_ = client.Close()
		}
	}()

	requiredSkills := types.NewSkillSet(splitSkills(analyzeSkills)...)
	if len(requiredSkills) == 0 && client != nil {
		parsed, err := parsing.ParseJD(ctx, client, jobText)
		if err == nil && len(parsed.MustHaveSkills) > 0 {
			requiredSkills = types.NewSkillSet(parsed.MustHaveSkills...)
		}
	}
	if len(requiredSkills) == 0 {
		requiredSkills = eng.ExtractSkills(jobText)
	}
	if len(requiredSkills) == 0 {
		return fmt.Errorf("no required skills supplied and none could be derived from the job description")
	}

	job := &types.JobProfile{
		RawText:        jobText,
		RequiredSkills: requiredSkills,
	}
	candidate := &types.CandidateProfile{
		RawText:         resumeText,
		ExperienceLevel: analyzeLevel,
	}

	eval, err := eng.Evaluate(ctx, job, candidate)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintEvaluation(eval)
	return nil
}

// loadJobText reads the job description from a file or URL and normalizes it.
func loadJobText(ctx context.Context, cfg config.Config) (string, error) {
	if cfg.Job != "" {
		return readTextFile(cfg.Job)
	}
	text, err := fetch.JobDescription(ctx, cfg.JobURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return textnorm.Normalize(text), nil
}

func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return textnorm.Normalize(string(data)), nil
}

func splitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
