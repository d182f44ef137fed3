// Package engine runs the full matching pipeline for one (job, resume) pair:
// skill extraction, fuzzy alignment, semantic similarity, score aggregation,
// and best-effort feedback.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/feedback"
	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/semantic"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Options configures an Engine.
type Options struct {
	// FuzzyThreshold is the minimum similarity for a fuzzy skill match
	// (0-100). Zero falls back to matching.DefaultThreshold.
	FuzzyThreshold int
	// SkipFeedback disables the feedback call entirely (e.g. batch scoring).
	SkipFeedback bool
}

// Engine evaluates candidates against job profiles. It holds no per-request
// state: the extractor's vocabulary is read-only and every Evaluate call
// produces a fresh Evaluation, so one Engine serves concurrent requests.
type Engine struct {
	extractor  *keywords.Extractor
	scorer     *semantic.Scorer
	aggregator *scoring.Aggregator
	feedback   *feedback.Generator
	threshold  int
	skipFB     bool
	logger     *zap.Logger
}

// New creates an Engine. extractor, scorer, and aggregator are required;
// feedback may be nil, in which case evaluations carry no feedback text.
func New(
	extractor *keywords.Extractor,
	scorer *semantic.Scorer,
	aggregator *scoring.Aggregator,
	fb *feedback.Generator,
	opts Options,
	logger *zap.Logger,
) (*Engine, error) {
	if extractor == nil {
		return nil, fmt.Errorf("skill extractor is required")
	}
	if scorer == nil {
		return nil, fmt.Errorf("semantic scorer is required")
	}
	if aggregator == nil {
		return nil, fmt.Errorf("score aggregator is required")
	}
	threshold := opts.FuzzyThreshold
	if threshold == 0 {
		threshold = matching.DefaultThreshold
	}
	if threshold < 0 || threshold > 100 {
		return nil, fmt.Errorf("fuzzy threshold out of range [0,100]: %d", threshold)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		extractor:  extractor,
		scorer:     scorer,
		aggregator: aggregator,
		feedback:   fb,
		threshold:  threshold,
		skipFB:     opts.SkipFeedback,
		logger:     logger,
	}, nil
}

// ExtractSkills exposes the engine's dictionary matcher for callers that
// need skills outside a full evaluation (e.g. resume registration).
func (e *Engine) ExtractSkills(text string) types.SkillSet {
	return e.extractor.ExtractSkills(text)
}

// Evaluate scores candidate against job and returns a new Evaluation.
// It fails only when the pair is genuinely unevaluable (nil job or
// candidate); degraded collaborator calls produce zero scores with reasons
// in Warnings instead of errors.
func (e *Engine) Evaluate(ctx context.Context, job *types.JobProfile, candidate *types.CandidateProfile) (*types.Evaluation, error) {
	if job == nil {
		return nil, fmt.Errorf("job profile is required")
	}
	if candidate == nil {
		return nil, fmt.Errorf("candidate profile is required")
	}

	extracted := candidate.ExtractedSkills
	if extracted == nil {
		extracted = e.extractor.ExtractSkills(candidate.RawText)
	}

	result := matching.Align(job.RequiredSkills, extracted, e.threshold)

	var warnings []string
	semanticScore, reason := e.scorer.Score(ctx, candidate.RawText, job.RawText)
	if reason != "" {
		warnings = append(warnings, reason)
	}

	finalScore, verdict := e.aggregator.Aggregate(result.HardScore, semanticScore)

	eval := &types.Evaluation{
		ID:            uuid.New(),
		JobID:         job.ID,
		ResumeID:      candidate.ID,
		HardScore:     result.HardScore,
		SemanticScore: semanticScore,
		FinalScore:    finalScore,
		Verdict:       verdict,
		Matched:       result.Matched,
		Missing:       result.Missing,
		Warnings:      warnings,
		CreatedAt:     time.Now().UTC(),
	}

	if e.feedback != nil && !e.skipFB {
		eval.Feedback = e.feedback.RequestFeedback(ctx, candidate.RawText, job.RawText, candidate.ExperienceLevel, finalScore)
	}

	e.logger.Info("evaluation completed",
		zap.String("job_id", job.ID.String()),
		zap.String("resume_id", candidate.ID.String()),
		zap.Float64("hard_score", eval.HardScore),
		zap.Float64("semantic_score", eval.SemanticScore),
		zap.Float64("final_score", eval.FinalScore),
		zap.String("verdict", string(eval.Verdict)),
	)

	return eval, nil
}
