package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "python and sql", Normalize("  python\n\n   and\t sql  "))
}

func TestNormalize_RemovesPageNumbers(t *testing.T) {
	out := Normalize("Experienced developer Page 1 of 2 with python")
	assert.NotContains(t, out, "Page 1")
	assert.Contains(t, out, "python")
}

func TestNormalize_RemovesEmailAndPhone(t *testing.T) {
	out := Normalize("Reach me at jane.doe@example.com or (555) 123-4567 anytime")
	assert.NotContains(t, out, "example.com")
	assert.NotContains(t, out, "123-4567")
	assert.Contains(t, out, "Reach me at")
}

func TestNormalize_RemovesBoilerplatePhrases(t *testing.T) {
	out := Normalize("Curriculum Vitae References available upon request python developer")
	assert.NotContains(t, out, "Curriculum Vitae")
	assert.NotContains(t, out, "References available")
	assert.Contains(t, out, "python developer")
}

func TestNormalize_KeepsSkillContent(t *testing.T) {
	out := Normalize("Skills: python, sql, docker")
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "sql")
	assert.Contains(t, out, "docker")
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize("Resume   page 2 of 3 python\n developer")
	assert.Equal(t, once, Normalize(once))
}
