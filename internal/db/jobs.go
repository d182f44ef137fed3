package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// JobRow is the database representation of a job profile.
type JobRow struct {
	ID             uuid.UUID   `json:"id"`
	Title          string      `json:"title"`
	RawText        string      `json:"raw_text"`
	RequiredSkills StringArray `json:"required_skills"`
	Location       string      `json:"location,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// ToProfile converts the row to the domain type.
func (r *JobRow) ToProfile() *types.JobProfile {
	if r == nil {
		return nil
	}
	return &types.JobProfile{
		ID:             r.ID,
		Title:          r.Title,
		RawText:        r.RawText,
		RequiredSkills: types.NewSkillSet(r.RequiredSkills...),
		Location:       r.Location,
		CreatedAt:      r.CreatedAt,
	}
}

// CreateJob inserts a job profile and returns its ID.
func (db *DB) CreateJob(ctx context.Context, job *types.JobProfile) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, raw_text, required_skills, location)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		job.Title, job.RawText, StringArray(job.RequiredSkills), job.Location,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// GetJob retrieves a job by ID. Returns (nil, nil) when not found.
func (db *DB) GetJob(ctx context.Context, jobID uuid.UUID) (*JobRow, error) {
	var row JobRow
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, raw_text, required_skills, COALESCE(location, ''), created_at
		 FROM jobs WHERE id = $1`,
		jobID,
	).Scan(&row.ID, &row.Title, &row.RawText, &row.RequiredSkills, &row.Location, &row.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &row, nil
}

// JobFilters holds optional filters for listing jobs.
type JobFilters struct {
	Title    string
	Location string
	Limit    int
}

// ListJobs retrieves jobs with optional filters, newest first.
func (db *DB) ListJobs(ctx context.Context, filters JobFilters) ([]JobRow, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, title, raw_text, required_skills, COALESCE(location, ''), created_at
		FROM jobs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Title != "" {
		query += fmt.Sprintf(" AND title ILIKE $%d", argNum)
		args = append(args, "%"+filters.Title+"%")
		argNum++
	}
	if filters.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE $%d", argNum)
		args = append(args, "%"+filters.Location+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []JobRow
	for rows.Next() {
		var row JobRow
		if err := rows.Scan(&row.ID, &row.Title, &row.RawText, &row.RequiredSkills, &row.Location, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, row)
	}
	return jobs, nil
}

// DeleteJob deletes a job and its evaluations (via cascade).
func (db *DB) DeleteJob(ctx context.Context, jobID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, jobID)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", jobID)
	}
	return nil
}
