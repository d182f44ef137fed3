package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// ResumeRow is the database representation of a candidate profile.
type ResumeRow struct {
	ID              uuid.UUID   `json:"id"`
	ApplicantName   string      `json:"applicant_name"`
	RawText         string      `json:"raw_text"`
	ExtractedSkills StringArray `json:"extracted_skills"`
	ExperienceLevel string      `json:"experience_level"`
	UploadedAt      time.Time   `json:"uploaded_at"`
}

// ToProfile converts the row to the domain type.
func (r *ResumeRow) ToProfile() *types.CandidateProfile {
	if r == nil {
		return nil
	}
	return &types.CandidateProfile{
		ID:              r.ID,
		ApplicantName:   r.ApplicantName,
		RawText:         r.RawText,
		ExtractedSkills: types.NewSkillSet(r.ExtractedSkills...),
		ExperienceLevel: r.ExperienceLevel,
		UploadedAt:      r.UploadedAt,
	}
}

// CreateResume inserts a candidate profile and returns its ID.
func (db *DB) CreateResume(ctx context.Context, resume *types.CandidateProfile) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (applicant_name, raw_text, extracted_skills, experience_level)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		resume.ApplicantName, resume.RawText, StringArray(resume.ExtractedSkills), resume.ExperienceLevel,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID. Returns (nil, nil) when not found.
func (db *DB) GetResume(ctx context.Context, resumeID uuid.UUID) (*ResumeRow, error) {
	var row ResumeRow
	err := db.pool.QueryRow(ctx,
		`SELECT id, applicant_name, raw_text, extracted_skills, experience_level, uploaded_at
		 FROM resumes WHERE id = $1`,
		resumeID,
	).Scan(&row.ID, &row.ApplicantName, &row.RawText, &row.ExtractedSkills, &row.ExperienceLevel, &row.UploadedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &row, nil
}

// ListResumes retrieves recent resumes, newest first.
func (db *DB) ListResumes(ctx context.Context, limit int) ([]ResumeRow, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, applicant_name, raw_text, extracted_skills, experience_level, uploaded_at
		 FROM resumes ORDER BY uploaded_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []ResumeRow
	for rows.Next() {
		var row ResumeRow
		if err := rows.Scan(&row.ID, &row.ApplicantName, &row.RawText, &row.ExtractedSkills, &row.ExperienceLevel, &row.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, row)
	}
	return resumes, nil
}
