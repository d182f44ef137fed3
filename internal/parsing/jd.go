// Package parsing extracts structured job requirements from raw job
// description text using LLM extraction.
package parsing

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ParseJD extracts a structured ParsedJD from raw job description text.
// The collaborator response is schema-validated before use and skill lists
// are normalized to lower-cased, deduplicated tokens.
func ParseJD(ctx context.Context, client llm.Client, jdText string) (*types.ParsedJD, error) {
	if jdText == "" {
		return nil, &ParseError{Message: "job description text is empty"}
	}

	prompt := buildParsePrompt(jdText)

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate content from LLM",
			Cause:   err,
		}
	}

	raw := []byte(llm.CleanJSONBlock(responseText))
	if err := schemas.ValidateParsedJD(raw); err != nil {
		return nil, &ParseError{
			Message: "LLM response failed schema validation",
			Cause:   err,
		}
	}

	var parsed types.ParsedJD
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ParseError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	parsed.MustHaveSkills = types.NewSkillSet(parsed.MustHaveSkills...)
	parsed.GoodToHaveSkills = types.NewSkillSet(parsed.GoodToHaveSkills...)

	return &parsed, nil
}

// buildParsePrompt constructs the prompt for structured extraction
func buildParsePrompt(jdText string) string {
	template := prompts.MustGet("parsing.json", "parse-job-description")
	return prompts.Format(template, map[string]string{
		"JDText": jdText,
	})
}
