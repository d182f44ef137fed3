package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// EvaluationRow is the database representation of an evaluation.
type EvaluationRow struct {
	ID            uuid.UUID   `json:"id"`
	JobID         uuid.UUID   `json:"job_id"`
	ResumeID      uuid.UUID   `json:"resume_id"`
	HardScore     float64     `json:"hard_score"`
	SemanticScore float64     `json:"semantic_score"`
	FinalScore    float64     `json:"final_score"`
	Verdict       string      `json:"verdict"`
	Matched       StringArray `json:"matched_skills"`
	Missing       StringArray `json:"missing_skills"`
	Feedback      string      `json:"feedback,omitempty"`
	Warnings      StringArray `json:"warnings,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// ToEvaluation converts the row to the domain type.
func (r *EvaluationRow) ToEvaluation() *types.Evaluation {
	if r == nil {
		return nil
	}
	return &types.Evaluation{
		ID:            r.ID,
		JobID:         r.JobID,
		ResumeID:      r.ResumeID,
		HardScore:     r.HardScore,
		SemanticScore: r.SemanticScore,
		FinalScore:    r.FinalScore,
		Verdict:       types.Verdict(r.Verdict),
		Matched:       types.SkillSet(r.Matched),
		Missing:       types.SkillSet(r.Missing),
		Feedback:      r.Feedback,
		Warnings:      r.Warnings,
		CreatedAt:     r.CreatedAt,
	}
}

// SaveEvaluation stores an evaluation. Re-evaluating the same (job, resume)
// pair overwrites the previous result.
func (db *DB) SaveEvaluation(ctx context.Context, eval *types.Evaluation) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO evaluations
		    (id, job_id, resume_id, hard_score, semantic_score, final_score,
		     verdict, matched_skills, missing_skills, feedback, warnings)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (job_id, resume_id) DO UPDATE SET
		    hard_score = $4, semantic_score = $5, final_score = $6,
		    verdict = $7, matched_skills = $8, missing_skills = $9,
		    feedback = $10, warnings = $11, created_at = NOW()`,
		eval.ID, eval.JobID, eval.ResumeID,
		eval.HardScore, eval.SemanticScore, eval.FinalScore,
		string(eval.Verdict), StringArray(eval.Matched), StringArray(eval.Missing),
		eval.Feedback, StringArray(eval.Warnings),
	)
	if err != nil {
		return fmt.Errorf("failed to save evaluation: %w", err)
	}
	return nil
}

// GetEvaluation retrieves an evaluation by ID. Returns (nil, nil) when not found.
func (db *DB) GetEvaluation(ctx context.Context, evalID uuid.UUID) (*EvaluationRow, error) {
	var row EvaluationRow
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_id, resume_id, hard_score, semantic_score, final_score,
		        verdict, matched_skills, missing_skills, COALESCE(feedback, ''), warnings, created_at
		 FROM evaluations WHERE id = $1`,
		evalID,
	).Scan(&row.ID, &row.JobID, &row.ResumeID, &row.HardScore, &row.SemanticScore, &row.FinalScore,
		&row.Verdict, &row.Matched, &row.Missing, &row.Feedback, &row.Warnings, &row.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	return &row, nil
}

// EvaluationFilters holds optional filters for listing evaluations.
type EvaluationFilters struct {
	JobID    uuid.UUID
	Verdict  string
	MinScore float64
	Limit    int
}

// ListEvaluations retrieves evaluations with optional filters, best-scoring
// first.
func (db *DB) ListEvaluations(ctx context.Context, filters EvaluationFilters) ([]EvaluationRow, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, job_id, resume_id, hard_score, semantic_score, final_score,
		       verdict, matched_skills, missing_skills, COALESCE(feedback, ''), warnings, created_at
		FROM evaluations WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.JobID != uuid.Nil {
		query += fmt.Sprintf(" AND job_id = $%d", argNum)
		args = append(args, filters.JobID)
		argNum++
	}
	if filters.Verdict != "" {
		query += fmt.Sprintf(" AND verdict = $%d", argNum)
		args = append(args, filters.Verdict)
		argNum++
	}
	if filters.MinScore > 0 {
		query += fmt.Sprintf(" AND final_score >= $%d", argNum)
		args = append(args, filters.MinScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY final_score DESC, created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	var evals []EvaluationRow
	for rows.Next() {
		var row EvaluationRow
		if err := rows.Scan(&row.ID, &row.JobID, &row.ResumeID, &row.HardScore, &row.SemanticScore, &row.FinalScore,
			&row.Verdict, &row.Matched, &row.Missing, &row.Feedback, &row.Warnings, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		evals = append(evals, row)
	}
	return evals, nil
}
