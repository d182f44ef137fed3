package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestPrintEvaluation_BasicOutput(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintEvaluation(&types.Evaluation{
		HardScore:     66.67,
		SemanticScore: 80.00,
		FinalScore:    72.00,
		Verdict:       types.VerdictReview,
		Matched:       types.NewSkillSet("python", "sql"),
		Missing:       types.NewSkillSet("docker"),
	})

	out := buf.String()
	assert.Contains(t, out, "EVALUATION RESULT")
	assert.Contains(t, out, "Final Score:    72.00 / 100")
	assert.Contains(t, out, "Keyword Score:  66.67")
	assert.Contains(t, out, "Semantic Score: 80.00")
	assert.Contains(t, out, "review")
	assert.Contains(t, out, "python, sql")
	assert.Contains(t, out, "docker")
}

func TestPrintEvaluation_WarningsAndFeedback(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintEvaluation(&types.Evaluation{
		Verdict:  types.VerdictRejected,
		Warnings: []string{"semantic scoring unavailable"},
		Feedback: "Consider adding Docker experience.",
	})

	out := buf.String()
	assert.Contains(t, out, "Warnings:")
	assert.Contains(t, out, "semantic scoring unavailable")
	assert.Contains(t, out, "Consider adding Docker experience.")
}

func TestPrintEvaluation_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintEvaluation(nil)
	assert.Empty(t, buf.String())
}

func TestPrintEvaluation_EmptySkills(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintEvaluation(&types.Evaluation{Verdict: types.VerdictRejected})

	assert.Contains(t, buf.String(), "Matched:  (none)")
	assert.Contains(t, buf.String(), "Missing:  (none)")
}

func TestSkillList_Truncation(t *testing.T) {
	skills := types.NewSkillSet("a1", "b2", "c3", "d4", "e5", "f6", "g7")
	assert.Equal(t, "a1, b2, c3, d4, e5 ... and 2 more", skillList(skills))
}

func TestSkillList_ShortList(t *testing.T) {
	assert.Equal(t, "go, sql", skillList(types.NewSkillSet("go", "sql")))
}

func TestPrintParsedJD_Output(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintParsedJD(&types.ParsedJD{
		RoleTitle:        "Backend Engineer",
		MustHaveSkills:   []string{"python", "sql"},
		GoodToHaveSkills: []string{"docker"},
	})

	out := buf.String()
	assert.Contains(t, out, "PARSED JOB DESCRIPTION")
	assert.Contains(t, out, "Role:  Backend Engineer")
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "docker")
}

func TestPrintParsedJD_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedJD(nil)
	assert.Empty(t, buf.String())
}

func TestPrintParsedJD_TruncatesLongSkillLists(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintParsedJD(&types.ParsedJD{
		RoleTitle:      "Engineer",
		MustHaveSkills: []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7"},
	})

	assert.Contains(t, buf.String(), "... and 2 more")
}
