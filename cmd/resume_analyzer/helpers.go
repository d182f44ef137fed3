package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/engine"
	"github.com/jonathan/resume-analyzer/internal/feedback"
	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/semantic"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// newLogger builds the process logger from the global flags.
func newLogger() (*zap.Logger, error) {
	return logger.New(flagJSONLog, flagDebug)
}

// resolveAPIKey prefers the flag/config value and falls back to the
// GEMINI_API_KEY environment variable.
func resolveAPIKey(fromConfig string) string {
	if fromConfig != "" {
		return fromConfig
	}
	return os.Getenv("GEMINI_API_KEY")
}

// newAggregator builds the score aggregator from configuration, falling back
// to the reference weighting and verdict table where the config is silent.
func newAggregator(cfg config.Config) (*scoring.Aggregator, error) {
	weights := scoring.DefaultWeights()
	if cfg.HardWeight != 0 || cfg.SemanticWeight != 0 {
		weights = scoring.Weights{Hard: cfg.HardWeight, Semantic: cfg.SemanticWeight}
	}

	verdicts := scoring.DefaultVerdictTable()
	if cfg.ShortlistCut != 0 && cfg.ReviewCut != 0 {
		verdicts = scoring.VerdictTable{
			{Score: cfg.ShortlistCut, Verdict: types.VerdictShortlisted},
			{Score: cfg.ReviewCut, Verdict: types.VerdictReview},
		}
	}

	return scoring.NewAggregator(weights, verdicts)
}

// newExtractor builds the skill extractor, loading a custom vocabulary file
// when the config names one.
func newExtractor(cfg config.Config) (*keywords.Extractor, error) {
	if cfg.VocabularyFile == "" {
		return keywords.NewDefaultExtractor(), nil
	}
	vocabulary, err := keywords.LoadVocabulary(cfg.VocabularyFile)
	if err != nil {
		return nil, err
	}
	return keywords.NewExtractor(vocabulary), nil
}

// newEngine wires the full evaluation pipeline. When apiKey is empty the
// engine runs in keyword-only mode: the semantic score degrades to zero and
// no feedback is generated. The returned client is nil in that mode.
func newEngine(ctx context.Context, cfg config.Config, apiKey string, log *zap.Logger) (*engine.Engine, llm.Client, error) {
	extractor, err := newExtractor(cfg)
	if err != nil {
		return nil, nil, err
	}

	aggregator, err := newAggregator(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid scoring configuration: %w", err)
	}

	var client llm.Client
	if apiKey != "" {
		geminiClient, err := llm.NewGeminiClient(ctx, llm.DefaultGeminiConfig(), apiKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		client = geminiClient
	} else {
		log.Warn("no API key configured; semantic scoring and feedback are disabled")
	}

	var embedder semantic.Embedder
	if client != nil {
		embedder = client
	}
	scorer := semantic.NewScorer(embedder, semantic.DefaultTimeout, log)

	var fb *feedback.Generator
	if client != nil {
		fb = feedback.NewGenerator(client, feedback.DefaultTimeout, log)
	}

	eng, err := engine.New(
		extractor,
		scorer,
		aggregator,
		fb,
		engine.Options{
			FuzzyThreshold: cfg.FuzzyThreshold,
			SkipFeedback:   cfg.SkipFeedback,
		},
		log,
	)
	if err != nil {
		if client != nil {
			_ = client.Close()
		}
		return nil, nil, err
	}

	return eng, client, nil
}
