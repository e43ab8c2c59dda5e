package services

import (
	"strings"

	"github.com/agext/levenshtein"
)

// reviewedCriterion is the matching view of a criterion from a superseded
// batch that carries a reviewer decision.
type reviewedCriterion struct {
	ID           string
	Text         string
	Decision     string
	Modification map[string]interface{}
}

// normalizeCriterionText lower-cases and collapses whitespace so small
// formatting differences between extraction runs don't break matching.
func normalizeCriterionText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// nearestReviewed finds the reviewed criterion whose normalized text is most
// similar to text, provided the similarity meets the threshold.
func nearestReviewed(text string, candidates []reviewedCriterion, threshold float64) (reviewedCriterion, bool) {
	normalized := normalizeCriterionText(text)

	var best reviewedCriterion
	bestScore := -1.0
	for _, candidate := range candidates {
		score := levenshtein.Similarity(normalized, normalizeCriterionText(candidate.Text), nil)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	if bestScore < threshold {
		return reviewedCriterion{}, false
	}
	return best, true
}
