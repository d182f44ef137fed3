// Package feedback requests AI-generated resume feedback from the generative
// collaborator. Feedback is best-effort: collaborator failures produce a
// user-facing explanatory string, never an error, so scoring stays available
// when feedback generation is down.
package feedback

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/prompts"
)

// DefaultTimeout bounds one feedback generation call.
const DefaultTimeout = 60 * time.Second

// FallbackMessage is returned whenever the collaborator cannot produce
// feedback.
const FallbackMessage = "Automated feedback is temporarily unavailable for this evaluation. " +
	"The match scores above were computed normally; please retry the analysis later for written suggestions."

// Generator builds the feedback prompt and delegates to the LLM client.
type Generator struct {
	client  llm.Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewGenerator creates a Generator. A zero timeout falls back to
// DefaultTimeout and a nil logger to a no-op logger.
func NewGenerator(client llm.Client, timeout time.Duration, logger *zap.Logger) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{client: client, timeout: timeout, logger: logger}
}

// RequestFeedback generates coaching feedback for the resume against the job
// description. experienceLevel is free-form ("fresher", "experienced");
// an empty value defaults to "experienced". Never returns an error: any
// collaborator failure is logged and replaced with FallbackMessage.
func (g *Generator) RequestFeedback(ctx context.Context, resumeText, jdText, experienceLevel string, score float64) string {
	if g.client == nil {
		return FallbackMessage
	}
	if experienceLevel == "" {
		experienceLevel = "experienced"
	}

	template := prompts.MustGet("feedback.json", "resume-feedback")
	prompt := prompts.Format(template, map[string]string{
		"ResumeText":      resumeText,
		"JobText":         jdText,
		"ExperienceLevel": experienceLevel,
		"Score":           strconv.FormatFloat(score, 'f', 0, 64),
	})

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		g.logger.Warn("feedback generation failed, returning fallback", zap.Error(err))
		return FallbackMessage
	}
	if text == "" {
		g.logger.Warn("feedback generation returned empty text, returning fallback")
		return FallbackMessage
	}
	return text
}
