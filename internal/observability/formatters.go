// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the one-shot analyze command.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// skillList joins up to maxItemsToShow skills, noting how many were omitted.
func skillList(skills types.SkillSet) string {
	if len(skills) == 0 {
		return "(none)"
	}
	count := min(len(skills), maxItemsToShow)
	joined := strings.Join(skills[:count], ", ")
	if len(skills) > maxItemsToShow {
		joined += fmt.Sprintf(" ... and %d more", len(skills)-maxItemsToShow)
	}
	return joined
}

// PrintEvaluation outputs a human-readable summary of an evaluation.
func (p *Printer) PrintEvaluation(eval *types.Evaluation) {
	if eval == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Final Score:    %.2f / 100\n", eval.FinalScore))
	sb.WriteString(fmt.Sprintf("Verdict:        %s\n", eval.Verdict))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Keyword Score:  %.2f\n", eval.HardScore))
	sb.WriteString(fmt.Sprintf("Semantic Score: %.2f\n", eval.SemanticScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Matched:  %s\n", skillList(eval.Matched)))
	sb.WriteString(fmt.Sprintf("Missing:  %s\n", skillList(eval.Missing)))

	if len(eval.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, warning := range eval.Warnings {
			sb.WriteString(fmt.Sprintf("  • %s\n", warning))
		}
	}

	p.printBox("EVALUATION RESULT", strings.TrimSuffix(sb.String(), "\n"))

	if eval.Feedback != "" {
		fmt.Fprintf(p.out, "\n%s\n", eval.Feedback)
	}
}

// PrintParsedJD outputs a human-readable summary of a parsed job description.
func (p *Printer) PrintParsedJD(parsed *types.ParsedJD) {
	if parsed == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:  %s\n", parsed.RoleTitle))
	sb.WriteString("\n")

	if len(parsed.MustHaveSkills) > 0 {
		sb.WriteString("Must-have skills:\n")
		count := min(len(parsed.MustHaveSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", parsed.MustHaveSkills[i]))
		}
		if len(parsed.MustHaveSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(parsed.MustHaveSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(parsed.GoodToHaveSkills) > 0 {
		sb.WriteString("Good-to-have skills:\n")
		count := min(len(parsed.GoodToHaveSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", parsed.GoodToHaveSkills[i]))
		}
		if len(parsed.GoodToHaveSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(parsed.GoodToHaveSkills)-3))
		}
	}

	p.printBox("PARSED JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}
