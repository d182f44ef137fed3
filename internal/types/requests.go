package types

import "github.com/go-playground/validator/v10"

// CreateJobRequest represents the request to register a job posting.
// Exactly one of Description or DescriptionURL must be set; Skills may be
// supplied directly or derived from the description by the AI parser.
type CreateJobRequest struct {
	Title          string   `json:"title" validate:"required,min=1"`
	Description    string   `json:"description,omitempty"`
	DescriptionURL string   `json:"description_url,omitempty" validate:"omitempty,url"`
	Skills         []string `json:"skills,omitempty"`
	Location       string   `json:"location,omitempty"`
}

// CreateResumeRequest represents a resume submission. Text is the extracted
// plain text; binary document conversion happens upstream.
type CreateResumeRequest struct {
	ApplicantName   string `json:"applicant_name,omitempty"`
	Text            string `json:"text" validate:"required,min=1"`
	ExperienceLevel string `json:"experience_level,omitempty" validate:"omitempty,oneof=fresher experienced"`
}

// ParseJDRequest represents a request to parse raw job description text.
type ParseJDRequest struct {
	JDText string `json:"jd_text" validate:"required,min=1"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the ParseJDRequest using the validator.
func (r *ParseJDRequest) Validate() error {
	return validator.New().Struct(r)
}
