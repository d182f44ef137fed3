// Package keywords extracts known skill tokens from free text using a fixed,
// injected vocabulary of skill phrases.
package keywords

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Extractor matches vocabulary phrases against free text. The vocabulary is
// read-only after construction, so a single Extractor is safe for concurrent
// use across evaluations.
type Extractor struct {
	vocabulary []string
}

// NewExtractor creates an Extractor over the given vocabulary. Phrases are
// normalized to lower case and deduplicated; an empty vocabulary yields an
// extractor that never matches.
func NewExtractor(vocabulary []string) *Extractor {
	normalized := make([]string, 0, len(vocabulary))
	seen := make(map[string]bool, len(vocabulary))
	for _, phrase := range vocabulary {
		p := types.NormalizeSkillToken(phrase)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		normalized = append(normalized, p)
	}
	return &Extractor{vocabulary: normalized}
}

// NewDefaultExtractor creates an Extractor over the built-in vocabulary.
func NewDefaultExtractor() *Extractor {
	return NewExtractor(DefaultVocabulary())
}

// ExtractSkills returns the set of vocabulary phrases that occur in text as
// whole words or whole phrases, sorted alphabetically for determinism.
// Empty or unmatched text yields an empty set.
func (e *Extractor) ExtractSkills(text string) types.SkillSet {
	if text == "" {
		return types.SkillSet{}
	}

	lower := strings.ToLower(text)
	found := make(types.SkillSet, 0)
	for _, phrase := range e.vocabulary {
		if containsWholePhrase(lower, phrase) {
			found = append(found, phrase)
		}
	}
	return found.Sorted()
}

// containsWholePhrase reports whether phrase occurs in text with word
// boundaries on both sides. A boundary is the start/end of text or any
// non-alphanumeric rune, so a bare "c" matches in "I use C daily" but not
// inside "css".
func containsWholePhrase(text, phrase string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], phrase)
		if idx < 0 {
			return false
		}
		idx += start

		if boundaryBefore(text, idx) && boundaryAfter(text, idx+len(phrase)) {
			return true
		}
		start = idx + 1
	}
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	runes := []rune(text[:idx])
	return !isWordRune(runes[len(runes)-1])
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	for _, r := range text[end:] {
		return !isWordRune(r)
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
