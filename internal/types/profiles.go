package types

import (
	"time"

	"github.com/google/uuid"
)

// JobProfile represents a registered job posting with its required skills.
// Immutable once created; re-parsing the raw text produces a new profile.
type JobProfile struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	RawText        string    `json:"raw_text"`
	RequiredSkills SkillSet  `json:"required_skills"`
	Location       string    `json:"location,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CandidateProfile represents a submitted resume after text extraction.
// ExtractedSkills is derived deterministically from RawText by the skill
// dictionary matcher.
type CandidateProfile struct {
	ID              uuid.UUID `json:"id"`
	ApplicantName   string    `json:"applicant_name,omitempty"`
	RawText         string    `json:"raw_text"`
	ExtractedSkills SkillSet  `json:"extracted_skills"`
	ExperienceLevel string    `json:"experience_level,omitempty"`
	UploadedAt      time.Time `json:"uploaded_at"`
}

// ParsedJD holds the structured fields extracted from a raw job description
// by the AI parser.
type ParsedJD struct {
	RoleTitle        string   `json:"role_title"`
	MustHaveSkills   []string `json:"must_have_skills"`
	GoodToHaveSkills []string `json:"good_to_have_skills"`
	Qualifications   string   `json:"qualifications"`
}
