package matching

import "github.com/jonathan/resume-analyzer/internal/types"

// DefaultThreshold is the minimum PartialRatio score for a fuzzy match.
const DefaultThreshold = 85

// Align matches each required job skill against the resume's extracted skills
// using greedy bipartite matching: job skills are visited in their given
// order, each takes the highest-scoring unconsumed resume skill, and a resume
// skill satisfies at most one job skill. Ties go to the first resume skill
// with the maximum score, so results depend on the iteration order of both
// inputs.
//
// This is intentionally a greedy heuristic, not an optimal assignment; a
// maximum-weight matching could be substituted without changing the contract
// as long as the threshold and one-to-one consumption semantics hold.
func Align(jobSkills, resumeSkills types.SkillSet, threshold int) types.MatchResult {
	matched := make(types.SkillSet, 0, len(jobSkills))
	missing := make(types.SkillSet, 0)
	consumed := make([]bool, len(resumeSkills))

	for _, jobSkill := range jobSkills {
		bestScore := 0
		bestIdx := -1
		for i, resumeSkill := range resumeSkills {
			if consumed[i] {
				continue
			}
			if score := PartialRatio(jobSkill, resumeSkill); score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		if bestIdx >= 0 && bestScore >= threshold {
			matched = append(matched, jobSkill)
			consumed[bestIdx] = true
		} else {
			missing = append(missing, jobSkill)
		}
	}

	hardScore := 0.0
	if len(jobSkills) > 0 {
		hardScore = float64(len(matched)) / float64(len(jobSkills)) * 100
	}

	return types.MatchResult{
		Matched:   matched,
		Missing:   missing,
		HardScore: hardScore,
	}
}
