// Package matching aligns a job's required skills against a resume's
// extracted skills using fuzzy string similarity.
package matching

import "strings"

// PartialRatio computes a substring-aware similarity score between two
// strings on a 0-100 scale. The shorter string is slid across every
// equal-length window of the longer string and the best edit-distance ratio
// wins, so "sql" scores 100 against "sqlite". Comparison is case-insensitive
// and symmetric.
func PartialRatio(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}

	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	best := 0
	for start := 0; start+len(shorter) <= len(longer); start++ {
		window := longer[start : start+len(shorter)]
		dist := levenshtein(shorter, window)
		score := (len(shorter) - dist) * 100 / len(shorter)
		if score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}

// levenshtein computes the edit distance between two rune slices using a
// single-row DP table.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr := make([]int, len(b)+1)
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(curr[j-1]+1, minInt(prev[j]+1, prev[j-1]+cost))
		}
		prev = curr
	}
	return prev[len(b)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
