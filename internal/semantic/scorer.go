// Package semantic computes embedding-based similarity between resume and job
// description text, rescaled to a 0-100 score.
package semantic

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Embedder is the narrow interface to the external embedding collaborator.
// Implementations may return a nil vector without an error when the provider
// has no embedding for the input.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// DefaultTimeout bounds the two embedding calls for one score computation.
const DefaultTimeout = 30 * time.Second

// Scorer embeds both texts and converts their cosine similarity to a 0-100
// score. Collaborator failures degrade to a zero score with a logged
// diagnostic; they never abort the evaluation pipeline.
type Scorer struct {
	embedder Embedder
	timeout  time.Duration
	logger   *zap.Logger
}

// NewScorer creates a Scorer. A zero timeout falls back to DefaultTimeout and
// a nil logger to a no-op logger.
func NewScorer(embedder Embedder, timeout time.Duration, logger *zap.Logger) *Scorer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{embedder: embedder, timeout: timeout, logger: logger}
}

// Score embeds resumeText and jdText concurrently and returns
// round((cos+1)/2*100) clamped to [0,100]. Any embedding failure, nil vector,
// or zero-magnitude vector yields 0 and a non-empty reason.
func (s *Scorer) Score(ctx context.Context, resumeText, jdText string) (score float64, reason string) {
	if s.embedder == nil {
		s.logger.Warn("no embedding provider configured, semantic score degraded to 0")
		return 0, "no embedding provider configured"
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var resumeVec, jdVec []float32
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resumeVec, err = s.embedder.Embed(gCtx, resumeText)
		return err
	})
	g.Go(func() error {
		var err error
		jdVec, err = s.embedder.Embed(gCtx, jdText)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("embedding failed, semantic score degraded to 0", zap.Error(err))
		return 0, "embedding unavailable: " + err.Error()
	}

	if len(resumeVec) == 0 || len(jdVec) == 0 {
		s.logger.Warn("embedding returned empty vector, semantic score degraded to 0")
		return 0, "embedding returned no vector"
	}

	cos, ok := cosineSimilarity(resumeVec, jdVec)
	if !ok {
		s.logger.Warn("zero-magnitude embedding, semantic score degraded to 0")
		return 0, "zero-magnitude embedding"
	}

	return rescale(cos), ""
}

// cosineSimilarity returns dot(a,b)/(|a|*|b|) in float64 precision. The
// second return value is false for mismatched lengths or zero-magnitude
// vectors, guarding the division.
func cosineSimilarity(a, b []float32) (float64, bool) {
	if len(a) != len(b) {
		return 0, false
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// rescale maps cosine similarity from [-1,1] to [0,100], rounding half-up and
// clamping against floating-point drift.
func rescale(cos float64) float64 {
	scaled := math.Floor((cos+1)/2*100 + 0.5)
	if scaled < 0 {
		return 0
	}
	if scaled > 100 {
		return 100
	}
	return scaled
}
