package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCriterionText(t *testing.T) {
	assert.Equal(t, "age >= 18 years", normalizeCriterionText("  Age >=  18\n\tYears "))
	assert.Equal(t, "", normalizeCriterionText("   "))
}

func TestNearestReviewed_ExactMatchIgnoresFormatting(t *testing.T) {
	candidates := []reviewedCriterion{
		{ID: "c1", Text: "Age >= 18 years", Decision: "approved"},
		{ID: "c2", Text: "Pregnant or breastfeeding", Decision: "rejected"},
	}

	match, ok := nearestReviewed("age  >= 18\nyears", candidates, 0.85)
	require.True(t, ok)
	assert.Equal(t, "c1", match.ID)
	assert.Equal(t, "approved", match.Decision)
}

func TestNearestReviewed_MinorRewordingStillMatches(t *testing.T) {
	candidates := []reviewedCriterion{
		{ID: "c1", Text: "Hemoglobin >= 9.0 g/dL within 14 days of enrollment", Decision: "modified"},
	}

	match, ok := nearestReviewed("Hemoglobin >= 9.0 g/dL within 14 days of enrolment", candidates, 0.85)
	require.True(t, ok)
	assert.Equal(t, "c1", match.ID)
}

func TestNearestReviewed_DissimilarTextDoesNotInherit(t *testing.T) {
	candidates := []reviewedCriterion{
		{ID: "c1", Text: "Age >= 18 years", Decision: "approved"},
	}

	_, ok := nearestReviewed("History of myocardial infarction within 6 months", candidates, 0.85)
	assert.False(t, ok)
}

func TestNearestReviewed_PicksClosestCandidate(t *testing.T) {
	candidates := []reviewedCriterion{
		{ID: "far", Text: "ECOG performance status 0-1", Decision: "approved"},
		{ID: "near", Text: "ECOG performance status 0-2", Decision: "rejected"},
	}

	match, ok := nearestReviewed("ECOG Performance Status 0-2", candidates, 0.85)
	require.True(t, ok)
	assert.Equal(t, "near", match.ID)
}

func TestNearestReviewed_NoCandidates(t *testing.T) {
	_, ok := nearestReviewed("Age >= 18 years", nil, 0.85)
	assert.False(t, ok)
}
