package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateParsedJD_ValidDocument(t *testing.T) {
	doc := []byte(`{
		"role_title": "Backend Engineer",
		"must_have_skills": ["python", "sql"],
		"good_to_have_skills": ["docker"],
		"qualifications": "BS in CS or equivalent experience"
	}`)

	assert.NoError(t, ValidateParsedJD(doc))
}

func TestValidateParsedJD_MinimalDocument(t *testing.T) {
	doc := []byte(`{"role_title": "Engineer", "must_have_skills": []}`)
	assert.NoError(t, ValidateParsedJD(doc))
}

func TestValidateParsedJD_MissingRequiredFields(t *testing.T) {
	doc := []byte(`{"good_to_have_skills": ["docker"]}`)

	err := ValidateParsedJD(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Errors, 2)
}

func TestValidateParsedJD_EmptyRoleTitle(t *testing.T) {
	doc := []byte(`{"role_title": "", "must_have_skills": ["python"]}`)

	err := ValidateParsedJD(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.NotEmpty(t, ve.Errors)
	assert.Equal(t, "role_title", ve.Errors[0].Field)
}

func TestValidateParsedJD_WrongSkillType(t *testing.T) {
	doc := []byte(`{"role_title": "Engineer", "must_have_skills": "python"}`)

	err := ValidateParsedJD(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Error(), "must_have_skills")
}

func TestValidateParsedJD_AllowsExtraFields(t *testing.T) {
	doc := []byte(`{
		"role_title": "Engineer",
		"must_have_skills": ["go"],
		"seniority": "mid"
	}`)

	assert.NoError(t, ValidateParsedJD(doc))
}

func TestValidateParsedJD_MalformedJSON(t *testing.T) {
	err := ValidateParsedJD([]byte(`{not json`))
	require.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
}

func TestValidationError_ErrorMessage(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "role_title", Message: "is required"},
		{Field: "must_have_skills", Message: "expected array"},
	}}

	msg := ve.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. role_title: is required")
	assert.Contains(t, msg, "2. must_have_skills: expected array")
}
