package recommend

import (
	"strings"

	"github.com/elenavoss/advisor/internal/domain"
)

// Resolve maps a final answer store to the rule-based recommendation bundle.
// It is a pure function: it never mutates the store and identical inputs
// yield identical output.
//
// The program-length lookup is an exact match on the time-commitment bucket;
// an absent key yields a nil Length. The idea lookup is an exact match on
// the chosen category, falling back to the primary method when the path
// collected no category (full-program paths). The returned idea list
// preserves table order and is never deduplicated.
func Resolve(t *Tables, answers *domain.AnswerStore) domain.Recommendation {
	var rec domain.Recommendation

	if length, ok := t.Lengths[answers.Text(domain.FieldTimeCommitment)]; ok {
		rec.Length = &length
	}

	key := answers.Text(domain.FieldCategory)
	if key == "" {
		key = answers.Text(domain.FieldMethod)
	}
	if ideas, ok := t.Ideas[key]; ok {
		rec.Ideas = append([]string(nil), ideas...)
	}

	if match := matchProblem(t.Problems, answers.Text(domain.FieldClientProblem)); match != nil {
		rec.Problem = match
	}

	return rec
}

// matchProblem scans the problem text for rule keywords, case-insensitively,
// returning the first matching rule's guidance.
func matchProblem(rules []ProblemRule, problem string) *domain.ProblemFocus {
	if problem == "" {
		return nil
	}
	lower := strings.ToLower(problem)
	for _, r := range rules {
		if r.Keyword == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(r.Keyword)) {
			return &domain.ProblemFocus{
				RecommendedProgram: r.RecommendedProgram,
				TargetAudience:     r.TargetAudience,
			}
		}
	}
	return nil
}
