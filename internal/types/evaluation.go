package types

import (
	"time"

	"github.com/google/uuid"
)

// Verdict is the coarse tier derived from the final score.
type Verdict string

// Verdict tiers, ordered from best to worst.
const (
	VerdictShortlisted Verdict = "shortlisted"
	VerdictReview      Verdict = "review"
	VerdictRejected    Verdict = "rejected"
)

// MatchResult is the outcome of aligning a job's required skills against a
// resume's extracted skills. Matched and Missing partition the required set:
// their union is the required set and their intersection is empty. Both
// preserve the job's required-skill order.
type MatchResult struct {
	Matched   SkillSet `json:"matched_skills"`
	Missing   SkillSet `json:"missing_skills"`
	HardScore float64  `json:"hard_score"`
}

// Evaluation is the complete scoring outcome for one (job, resume) pair.
// Created once at analysis time and never mutated; a re-analysis produces a
// new Evaluation. Warnings records degraded-score reasons (e.g. embedding
// unavailable) so callers can distinguish a genuine zero from a fallback.
type Evaluation struct {
	ID            uuid.UUID `json:"id"`
	JobID         uuid.UUID `json:"job_id"`
	ResumeID      uuid.UUID `json:"resume_id"`
	HardScore     float64   `json:"hard_score"`
	SemanticScore float64   `json:"semantic_score"`
	FinalScore    float64   `json:"final_score"`
	Verdict       Verdict   `json:"verdict"`
	Matched       SkillSet  `json:"matched_skills"`
	Missing       SkillSet  `json:"missing_skills"`
	Feedback      string    `json:"feedback,omitempty"`
	Warnings      []string  `json:"warnings,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
