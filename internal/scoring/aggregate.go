// Package scoring combines hard and semantic scores into a final score and
// maps it to a verdict tier.
package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights holds the relative contribution of each score component. Hard and
// Semantic must sum to 1.0; this is checked at construction, not per call.
type Weights struct {
	Hard     float64 `json:"hard"`
	Semantic float64 `json:"semantic"`
}

// DefaultWeights returns the reference 0.6/0.4 weighting.
func DefaultWeights() Weights {
	return Weights{Hard: 0.6, Semantic: 0.4}
}

// VerdictCut is one row of the verdict table: final scores at or above Score
// receive Verdict.
type VerdictCut struct {
	Score   float64       `json:"score"`
	Verdict types.Verdict `json:"verdict"`
}

// VerdictTable is an ordered list of cut points, highest first. Scores below
// every cut receive the fallback verdict (Rejected). The cut points are a
// product decision, so they live in configuration rather than code.
type VerdictTable []VerdictCut

// DefaultVerdictTable returns the reference policy: Shortlisted at 75,
// Review at 60, Rejected below.
func DefaultVerdictTable() VerdictTable {
	return VerdictTable{
		{Score: 75, Verdict: types.VerdictShortlisted},
		{Score: 60, Verdict: types.VerdictReview},
	}
}

// weightTolerance absorbs floating-point drift when checking the weight sum.
const weightTolerance = 1e-9

// Aggregator computes final scores and verdicts. Construct with NewAggregator
// so invalid configuration fails fast at startup.
type Aggregator struct {
	weights  Weights
	verdicts VerdictTable
}

// NewAggregator validates the configuration and returns an Aggregator.
// Weights must sum to 1.0 with non-negative components and the verdict table
// must have strictly descending cut points within [0,100].
func NewAggregator(weights Weights, verdicts VerdictTable) (*Aggregator, error) {
	if weights.Hard < 0 || weights.Semantic < 0 {
		return nil, fmt.Errorf("score weights must be non-negative, got hard=%v semantic=%v", weights.Hard, weights.Semantic)
	}
	if math.Abs(weights.Hard+weights.Semantic-1.0) > weightTolerance {
		return nil, fmt.Errorf("score weights must sum to 1.0, got %v", weights.Hard+weights.Semantic)
	}
	if len(verdicts) == 0 {
		return nil, fmt.Errorf("verdict table must have at least one cut point")
	}
	prev := math.Inf(1)
	for _, cut := range verdicts {
		if cut.Score < 0 || cut.Score > 100 {
			return nil, fmt.Errorf("verdict cut point %v out of range [0,100]", cut.Score)
		}
		if cut.Score >= prev {
			return nil, fmt.Errorf("verdict cut points must be strictly descending, got %v after %v", cut.Score, prev)
		}
		if cut.Verdict == "" {
			return nil, fmt.Errorf("verdict cut point %v has no verdict", cut.Score)
		}
		prev = cut.Score
	}

	return &Aggregator{weights: weights, verdicts: verdicts}, nil
}

// Aggregate combines the component scores into a final score and verdict.
// Inputs are expected in [0,100]; upstream components clamp at their own
// boundaries.
func (a *Aggregator) Aggregate(hardScore, semanticScore float64) (float64, types.Verdict) {
	final := hardScore*a.weights.Hard + semanticScore*a.weights.Semantic
	return final, a.verdict(final)
}

func (a *Aggregator) verdict(finalScore float64) types.Verdict {
	for _, cut := range a.verdicts {
		if finalScore >= cut.Score {
			return cut.Verdict
		}
	}
	return types.VerdictRejected
}
