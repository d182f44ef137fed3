package engine

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/semantic"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// constantEmbedder returns the same vector for every input, making any two
// texts perfectly similar.
type constantEmbedder struct{}

func (constantEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return []float32{1, 2, 3}, nil
}

func newTestEngine(t *testing.T, embedder semantic.Embedder) *Engine {
	t.Helper()

	aggregator, err := scoring.NewAggregator(scoring.DefaultWeights(), scoring.DefaultVerdictTable())
	require.NoError(t, err)

	eng, err := New(
		keywords.NewDefaultExtractor(),
		semantic.NewScorer(embedder, 0, nil),
		aggregator,
		nil,
		Options{},
		nil,
	)
	require.NoError(t, err)
	return eng
}

func TestEvaluate_PartialSkillCoverage(t *testing.T) {
	eng := newTestEngine(t, constantEmbedder{})

	job := &types.JobProfile{
		ID:             uuid.New(),
		RawText:        "Looking for python, sql, and docker experience.",
		RequiredSkills: types.NewSkillSet("python", "sql", "docker"),
	}
	candidate := &types.CandidateProfile{
		ID:      uuid.New(),
		RawText: "Wrote Python ETL pipelines backed by SQL databases.",
	}

	eval, err := eng.Evaluate(context.Background(), job, candidate)
	require.NoError(t, err)

	assert.Equal(t, types.SkillSet{"python", "sql"}, eval.Matched.Sorted())
	assert.Equal(t, types.SkillSet{"docker"}, eval.Missing)
	assert.InDelta(t, 66.67, eval.HardScore, 0.01)
	assert.Equal(t, 100.0, eval.SemanticScore)
	// 66.67*0.6 + 100*0.4 = 80.0
	assert.InDelta(t, 80.0, eval.FinalScore, 0.01)
	assert.Equal(t, types.VerdictShortlisted, eval.Verdict)
	assert.Empty(t, eval.Warnings)
}

func TestEvaluate_EmptyResume(t *testing.T) {
	eng := newTestEngine(t, constantEmbedder{})

	job := &types.JobProfile{
		ID:             uuid.New(),
		RawText:        "python role",
		RequiredSkills: types.NewSkillSet("python", "sql"),
	}
	candidate := &types.CandidateProfile{ID: uuid.New(), RawText: ""}

	eval, err := eng.Evaluate(context.Background(), job, candidate)
	require.NoError(t, err)

	assert.Empty(t, eval.Matched)
	assert.Equal(t, 0.0, eval.HardScore)
}

func TestEvaluate_DegradedSemanticScore(t *testing.T) {
	eng := newTestEngine(t, nil)

	job := &types.JobProfile{
		ID:             uuid.New(),
		RawText:        "python role",
		RequiredSkills: types.NewSkillSet("python"),
	}
	candidate := &types.CandidateProfile{ID: uuid.New(), RawText: "python developer"}

	eval, err := eng.Evaluate(context.Background(), job, candidate)
	require.NoError(t, err)

	assert.Equal(t, 0.0, eval.SemanticScore)
	require.Len(t, eval.Warnings, 1)
	assert.Contains(t, eval.Warnings[0], "no embedding provider")
	// Keyword component still counts: 100*0.6 = 60 -> review.
	assert.Equal(t, 60.0, eval.FinalScore)
	assert.Equal(t, types.VerdictReview, eval.Verdict)
}

func TestEvaluate_UsesPreExtractedSkills(t *testing.T) {
	eng := newTestEngine(t, constantEmbedder{})

	job := &types.JobProfile{
		ID:             uuid.New(),
		RawText:        "needs terraform",
		RequiredSkills: types.NewSkillSet("terraform"),
	}
	// ExtractedSkills set explicitly; RawText mentions nothing relevant.
	candidate := &types.CandidateProfile{
		ID:              uuid.New(),
		RawText:         "irrelevant text",
		ExtractedSkills: types.NewSkillSet("terraform"),
	}

	eval, err := eng.Evaluate(context.Background(), job, candidate)
	require.NoError(t, err)

	assert.Equal(t, 100.0, eval.HardScore)
}

func TestEvaluate_NilInputs(t *testing.T) {
	eng := newTestEngine(t, constantEmbedder{})

	_, err := eng.Evaluate(context.Background(), nil, &types.CandidateProfile{})
	assert.Error(t, err)

	_, err = eng.Evaluate(context.Background(), &types.JobProfile{}, nil)
	assert.Error(t, err)
}

func TestEvaluate_PopulatesIdentifiers(t *testing.T) {
	eng := newTestEngine(t, constantEmbedder{})

	job := &types.JobProfile{
		ID:             uuid.New(),
		RawText:        "python",
		RequiredSkills: types.NewSkillSet("python"),
	}
	candidate := &types.CandidateProfile{ID: uuid.New(), RawText: "python"}

	eval, err := eng.Evaluate(context.Background(), job, candidate)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, eval.ID)
	assert.Equal(t, job.ID, eval.JobID)
	assert.Equal(t, candidate.ID, eval.ResumeID)
	assert.False(t, eval.CreatedAt.IsZero())
	// No feedback generator was wired.
	assert.Empty(t, eval.Feedback)
}

func TestNew_Validation(t *testing.T) {
	aggregator, err := scoring.NewAggregator(scoring.DefaultWeights(), scoring.DefaultVerdictTable())
	require.NoError(t, err)
	scorer := semantic.NewScorer(constantEmbedder{}, 0, nil)
	extractor := keywords.NewDefaultExtractor()

	_, err = New(nil, scorer, aggregator, nil, Options{}, nil)
	assert.Error(t, err)

	_, err = New(extractor, nil, aggregator, nil, Options{}, nil)
	assert.Error(t, err)

	_, err = New(extractor, scorer, nil, nil, Options{}, nil)
	assert.Error(t, err)

	_, err = New(extractor, scorer, aggregator, nil, Options{FuzzyThreshold: 150}, nil)
	assert.Error(t, err)
}
