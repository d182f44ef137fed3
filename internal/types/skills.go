// Package types provides type definitions for structured data used throughout the resume-analyzer system.
package types

import (
	"sort"
	"strings"
)

// SkillSet is an ordered collection of normalized skill tokens with set
// semantics: no duplicates, identity is the lower-cased token text.
// Order is preserved as given because the fuzzy aligner is order-sensitive.
type SkillSet []string

// NewSkillSet builds a SkillSet from raw tokens, normalizing and deduplicating
// while preserving first-seen order.
func NewSkillSet(tokens ...string) SkillSet {
	set := make(SkillSet, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		normalized := NormalizeSkillToken(tok)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		set = append(set, normalized)
	}
	return set
}

// NormalizeSkillToken lower-cases and trims a skill token.
func NormalizeSkillToken(tok string) string {
	return strings.ToLower(strings.TrimSpace(tok))
}

// Contains reports whether the set holds the given token (after normalization).
func (s SkillSet) Contains(tok string) bool {
	normalized := NormalizeSkillToken(tok)
	for _, t := range s {
		if t == normalized {
			return true
		}
	}
	return false
}

// Sorted returns an alphabetically sorted copy for deterministic presentation.
func (s SkillSet) Sorted() SkillSet {
	out := make(SkillSet, len(s))
	copy(out, s)
	sort.Strings(out)
	return out
}
