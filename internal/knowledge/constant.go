package knowledge

const (
	DefaultMaxHistory = 1000

	// SimilarityThreshold is exclusive: a match must score strictly above it.
	SimilarityThreshold = 0.6

	weightAction = 0.5
	weightTarget = 0.3
	weightParams = 0.2
)
