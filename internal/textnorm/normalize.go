// Package textnorm strips boilerplate from extracted resume and job text
// before the matching engine sees it: page numbers, contact details, section
// headers, and excess whitespace.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	pageNumberRe   = regexp.MustCompile(`(?i)page\s*\d+\s*(of\s*\d+)?`)
	pageFractionRe = regexp.MustCompile(`\b\d+\s*(/|of|-)\s*\d+\b`)
	emailRe        = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
	phoneRe        = regexp.MustCompile(`\b(\+?\d{1,2}\s?)?(\(\d{3}\)|\d{3})[\s.-]?\d{3}[\s.-]?\d{4}\b`)
	multiSpaceRe   = regexp.MustCompile(`\s{2,}`)

	// Common header/footer phrases that carry no signal for matching.
	boilerplateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bcurriculum vitae\b`),
		regexp.MustCompile(`(?i)\bresume\b`),
		regexp.MustCompile(`(?i)\bcontact\b`),
		regexp.MustCompile(`(?i)\baddress\b`),
		regexp.MustCompile(`(?i)\bpersonal details\b`),
		regexp.MustCompile(`(?i)\breferences available upon request\b`),
	}
)

// Normalize cleans and standardizes raw extracted text. Empty input yields
// an empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	text = pageNumberRe.ReplaceAllString(text, "")
	text = pageFractionRe.ReplaceAllString(text, "")

	for _, re := range boilerplateRes {
		text = re.ReplaceAllString(text, "")
	}

	text = emailRe.ReplaceAllString(text, "")
	text = phoneRe.ReplaceAllString(text, "")

	text = multiSpaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
