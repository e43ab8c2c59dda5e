package config

// ReviewConfig controls review-decision inheritance on re-extraction.
type ReviewConfig struct {
	// InheritanceSimilarity is the minimum normalized-text similarity
	// (0..1) for a new criterion to inherit the decision of an archived one.
	InheritanceSimilarity float64
}

// DefaultReviewConfig returns the built-in review defaults.
func DefaultReviewConfig() *ReviewConfig {
	return &ReviewConfig{
		InheritanceSimilarity: 0.85,
	}
}
