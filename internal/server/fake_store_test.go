package server

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/engine"
	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/semantic"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	jobs    map[uuid.UUID]db.JobRow
	resumes map[uuid.UUID]db.ResumeRow
	evals   map[uuid.UUID]db.EvaluationRow
	users   map[uuid.UUID]db.User
	failAll error // when set, every method returns this error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		jobs:    make(map[uuid.UUID]db.JobRow),
		resumes: make(map[uuid.UUID]db.ResumeRow),
		evals:   make(map[uuid.UUID]db.EvaluationRow),
		users:   make(map[uuid.UUID]db.User),
	}
}

func (f *fakeStore) CreateJob(_ context.Context, job *types.JobProfile) (uuid.UUID, error) {
	if f.failAll != nil {
		return uuid.Nil, f.failAll
	}
	id := uuid.New()
	f.jobs[id] = db.JobRow{
		ID:             id,
		Title:          job.Title,
		RawText:        job.RawText,
		RequiredSkills: db.StringArray(job.RequiredSkills),
		Location:       job.Location,
		CreatedAt:      time.Now(),
	}
	return id, nil
}

func (f *fakeStore) GetJob(_ context.Context, jobID uuid.UUID) (*db.JobRow, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	row, ok := f.jobs[jobID]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakeStore) ListJobs(_ context.Context, filters db.JobFilters) ([]db.JobRow, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var rows []db.JobRow
	for _, row := range f.jobs {
		if filters.Title != "" && !strings.Contains(strings.ToLower(row.Title), strings.ToLower(filters.Title)) {
			continue
		}
		if filters.Location != "" && !strings.Contains(strings.ToLower(row.Location), strings.ToLower(filters.Location)) {
			continue
		}
		rows = append(rows, row)
	}
	if filters.Limit > 0 && len(rows) > filters.Limit {
		rows = rows[:filters.Limit]
	}
	return rows, nil
}

func (f *fakeStore) DeleteJob(_ context.Context, jobID uuid.UUID) error {
	if f.failAll != nil {
		return f.failAll
	}
	if _, ok := f.jobs[jobID]; !ok {
		return fmt.Errorf("job not found: %s", jobID)
	}
	delete(f.jobs, jobID)
	return nil
}

func (f *fakeStore) CreateResume(_ context.Context, resume *types.CandidateProfile) (uuid.UUID, error) {
	if f.failAll != nil {
		return uuid.Nil, f.failAll
	}
	id := uuid.New()
	f.resumes[id] = db.ResumeRow{
		ID:              id,
		ApplicantName:   resume.ApplicantName,
		RawText:         resume.RawText,
		ExtractedSkills: db.StringArray(resume.ExtractedSkills),
		ExperienceLevel: resume.ExperienceLevel,
		UploadedAt:      time.Now(),
	}
	return id, nil
}

func (f *fakeStore) GetResume(_ context.Context, resumeID uuid.UUID) (*db.ResumeRow, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	row, ok := f.resumes[resumeID]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakeStore) ListResumes(_ context.Context, limit int) ([]db.ResumeRow, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var rows []db.ResumeRow
	for _, row := range f.resumes {
		rows = append(rows, row)
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (f *fakeStore) SaveEvaluation(_ context.Context, eval *types.Evaluation) error {
	if f.failAll != nil {
		return f.failAll
	}
	// Upsert by (job, resume) pair.
	for id, existing := range f.evals {
		if existing.JobID == eval.JobID && existing.ResumeID == eval.ResumeID {
			delete(f.evals, id)
		}
	}
	f.evals[eval.ID] = db.EvaluationRow{
		ID:            eval.ID,
		JobID:         eval.JobID,
		ResumeID:      eval.ResumeID,
		HardScore:     eval.HardScore,
		SemanticScore: eval.SemanticScore,
		FinalScore:    eval.FinalScore,
		Verdict:       string(eval.Verdict),
		Matched:       db.StringArray(eval.Matched),
		Missing:       db.StringArray(eval.Missing),
		Feedback:      eval.Feedback,
		Warnings:      db.StringArray(eval.Warnings),
		CreatedAt:     eval.CreatedAt,
	}
	return nil
}

func (f *fakeStore) GetEvaluation(_ context.Context, evalID uuid.UUID) (*db.EvaluationRow, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	row, ok := f.evals[evalID]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakeStore) ListEvaluations(_ context.Context, filters db.EvaluationFilters) ([]db.EvaluationRow, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var rows []db.EvaluationRow
	for _, row := range f.evals {
		if filters.JobID != uuid.Nil && row.JobID != filters.JobID {
			continue
		}
		if filters.Verdict != "" && row.Verdict != filters.Verdict {
			continue
		}
		if filters.MinScore > 0 && row.FinalScore < filters.MinScore {
			continue
		}
		rows = append(rows, row)
	}
	if filters.Limit > 0 && len(rows) > filters.Limit {
		rows = rows[:filters.Limit]
	}
	return rows, nil
}

func (f *fakeStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	if f.failAll != nil {
		return false, f.failAll
	}
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	if f.failAll != nil {
		return uuid.Nil, f.failAll
	}
	id := uuid.New()
	now := time.Now()
	f.users[id] = db.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return id, nil
}

func (f *fakeStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	user, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	for _, user := range f.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	if f.failAll != nil {
		return f.failAll
	}
	user, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()
	f.users[userID] = user
	return nil
}

// constEmbedder makes any two texts perfectly similar, so the semantic score
// is always 100.
type constEmbedder struct{}

func (constEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return []float32{1, 2, 3}, nil
}

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()

	aggregator, err := scoring.NewAggregator(scoring.DefaultWeights(), scoring.DefaultVerdictTable())
	require.NoError(t, err)

	eng, err := engine.New(
		keywords.NewDefaultExtractor(),
		semantic.NewScorer(constEmbedder{}, 0, nil),
		aggregator,
		nil,
		engine.Options{},
		zap.NewNop(),
	)
	require.NoError(t, err)
	return eng
}

func newTestServer(t *testing.T) (*Server, *fakeStore) {
	t.Helper()

	store := newFakeStore()
	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	userService := NewUserService(store, &config.PasswordConfig{BcryptCost: 10})

	s := &Server{
		store:       store,
		engine:      newTestEngine(t),
		logger:      zap.NewNop(),
		jwtService:  jwtService,
		userService: userService,
	}
	s.authHandler = NewAuthHandler(userService, jwtService)
	return s, store
}
