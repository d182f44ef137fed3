package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func newDefaultAggregator(t *testing.T) *Aggregator {
	t.Helper()
	agg, err := NewAggregator(DefaultWeights(), DefaultVerdictTable())
	require.NoError(t, err)
	return agg
}

func TestAggregate_PerfectScores(t *testing.T) {
	agg := newDefaultAggregator(t)

	final, verdict := agg.Aggregate(100, 100)

	assert.Equal(t, 100.0, final)
	assert.Equal(t, types.VerdictShortlisted, verdict)
}

func TestAggregate_ZeroScores(t *testing.T) {
	agg := newDefaultAggregator(t)

	final, verdict := agg.Aggregate(0, 0)

	assert.Equal(t, 0.0, final)
	assert.Equal(t, types.VerdictRejected, verdict)
}

func TestAggregate_WeightedCombination(t *testing.T) {
	agg := newDefaultAggregator(t)

	final, _ := agg.Aggregate(66.67, 80)

	// 66.67*0.6 + 80*0.4 = 72.002
	assert.InDelta(t, 72.0, final, 0.01)
}

func TestAggregate_VerdictBoundaries(t *testing.T) {
	agg := newDefaultAggregator(t)

	cases := []struct {
		hard, semantic float64
		want           types.Verdict
	}{
		{75, 75, types.VerdictShortlisted}, // exactly at the shortlist cut
		{74, 74, types.VerdictReview},
		{60, 60, types.VerdictReview}, // exactly at the review cut
		{59, 59, types.VerdictRejected},
	}
	for _, tc := range cases {
		_, verdict := agg.Aggregate(tc.hard, tc.semantic)
		assert.Equal(t, tc.want, verdict, "hard=%v semantic=%v", tc.hard, tc.semantic)
	}
}

func TestAggregate_HardOnlyWeights(t *testing.T) {
	agg, err := NewAggregator(Weights{Hard: 1.0, Semantic: 0.0}, DefaultVerdictTable())
	require.NoError(t, err)

	final, _ := agg.Aggregate(80, 0)

	assert.Equal(t, 80.0, final)
}

func TestNewAggregator_RejectsBadWeights(t *testing.T) {
	_, err := NewAggregator(Weights{Hard: 0.5, Semantic: 0.4}, DefaultVerdictTable())
	assert.Error(t, err)

	_, err = NewAggregator(Weights{Hard: -0.2, Semantic: 1.2}, DefaultVerdictTable())
	assert.Error(t, err)
}

func TestNewAggregator_AcceptsWeightsWithinTolerance(t *testing.T) {
	// 0.1*3 + 0.7 accumulates float drift but sums to 1.0 within tolerance.
	_, err := NewAggregator(Weights{Hard: 0.1 + 0.1 + 0.1, Semantic: 0.7}, DefaultVerdictTable())
	assert.NoError(t, err)
}

func TestNewAggregator_RejectsBadVerdictTable(t *testing.T) {
	_, err := NewAggregator(DefaultWeights(), VerdictTable{})
	assert.Error(t, err)

	_, err = NewAggregator(DefaultWeights(), VerdictTable{
		{Score: 60, Verdict: types.VerdictReview},
		{Score: 75, Verdict: types.VerdictShortlisted}, // ascending
	})
	assert.Error(t, err)

	_, err = NewAggregator(DefaultWeights(), VerdictTable{
		{Score: 120, Verdict: types.VerdictShortlisted},
	})
	assert.Error(t, err)

	_, err = NewAggregator(DefaultWeights(), VerdictTable{
		{Score: 75, Verdict: ""},
	})
	assert.Error(t, err)
}
