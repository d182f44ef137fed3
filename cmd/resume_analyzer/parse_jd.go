package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
)

var parseJDCmd = &cobra.Command{
	Use:   "parse-jd",
	Short: "Parse a job description into structured requirements",
	Long:  `Extracts the role title, must-have skills, good-to-have skills, and qualifications from a job description using the AI parser.`,
	RunE:  runParseJD,
}

var (
	parseJDFile   string
	parseJDURL    string
	parseJDAPIKey string
	parseJDAsJSON bool
)

func init() {
	parseJDCmd.Flags().StringVarP(&parseJDFile, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	parseJDCmd.Flags().StringVar(&parseJDURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	parseJDCmd.Flags().StringVar(&parseJDAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	parseJDCmd.Flags().BoolVar(&parseJDAsJSON, "output-json", false, "Print the parsed result as JSON")

	rootCmd.AddCommand(parseJDCmd)
}

func runParseJD(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if parseJDFile == "" && parseJDURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if parseJDFile != "" && parseJDURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	apiKey := resolveAPIKey(parseJDAPIKey)
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	var jdText string
	if parseJDFile != "" {
		text, err := readTextFile(parseJDFile)
		if err != nil {
			return err
		}
		jdText = text
	} else {
		text, err := fetch.JobDescription(ctx, parseJDURL, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
		jdText = textnorm.Normalize(text)
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultGeminiConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer func() { _ = client.Close() }()

	parsed, err := parsing.ParseJD(ctx, client, jdText)
	if err != nil {
		return fmt.Errorf("JD parsing failed: %w", err)
	}

	if parseJDAsJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(parsed)
	}

	observability.NewPrinter(os.Stdout).PrintParsedJD(parsed)
	return nil
}
