// Package config provides configuration loading and validation for the CLI
// and the server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the analyzer configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty"` // Path to resume text file
	Job    string `json:"job,omitempty"`    // Path to job posting text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch job posting from

	// Scoring knobs
	VocabularyFile string  `json:"vocabulary_file,omitempty"` // Path to a custom skill vocabulary (one phrase per line)
	FuzzyThreshold int     `json:"fuzzy_threshold,omitempty"` // Minimum fuzzy similarity for a skill match (0-100)
	HardWeight     float64 `json:"hard_weight,omitempty"`     // Weight of keyword coverage in the final score
	SemanticWeight float64 `json:"semantic_weight,omitempty"` // Weight of semantic similarity in the final score
	ShortlistCut   float64 `json:"shortlist_cut,omitempty"`   // Final score at or above which a candidate is shortlisted
	ReviewCut      float64 `json:"review_cut,omitempty"`      // Final score at or above which a candidate needs review

	// Behavior
	APIKey       string `json:"api_key,omitempty"`       // Gemini API key
	UseBrowser   bool   `json:"use_browser,omitempty"`   // Use headless browser for SPA job boards
	Verbose      bool   `json:"verbose,omitempty"`       // Print detailed debug information
	SkipFeedback bool   `json:"skip_feedback,omitempty"` // Skip the feedback call during evaluation
	DatabaseURL  string `json:"database_url,omitempty"`  // PostgreSQL connection URL
	Port         int    `json:"port,omitempty"`          // HTTP server port
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are not checked here; CLI flag validation after merging handles those.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 100 {
		return fmt.Errorf("config error: 'fuzzy_threshold' must be in [0,100], got %d", c.FuzzyThreshold)
	}
	if c.HardWeight < 0 || c.SemanticWeight < 0 {
		return fmt.Errorf("config error: score weights must be non-negative")
	}
	if c.ShortlistCut != 0 && c.ReviewCut != 0 && c.ShortlistCut <= c.ReviewCut {
		return fmt.Errorf("config error: 'shortlist_cut' must be greater than 'review_cut'")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.VocabularyFile != "" {
		if _, err := os.Stat(c.VocabularyFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.VocabularyFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Config file values act as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.VocabularyFile == "" {
		result.VocabularyFile = defaults.VocabularyFile
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = defaults.FuzzyThreshold
	}

	// A zero weight means unset; the pair is validated together later.
	if result.HardWeight == 0 && result.SemanticWeight == 0 {
		result.HardWeight = defaults.HardWeight
		result.SemanticWeight = defaults.SemanticWeight
	}
	if result.ShortlistCut == 0 {
		result.ShortlistCut = defaults.ShortlistCut
	}
	if result.ReviewCut == 0 {
		result.ReviewCut = defaults.ReviewCut
	}

	// Bool fields cannot distinguish unset from false, so CLI flags win.

	return result
}
