package scorer

import "github.com/s4cindia/ninja-cli/pkg/interfaces"

// Default rating threshold values.
const (
	DefaultConformantThreshold = 90
	DefaultPartialThreshold    = 60
)

// RatingFromScore returns the conformance rating for a given score.
// CONFORMANT: score >= conformantThreshold
// PARTIAL: score >= partialThreshold
// NON_CONFORMANT: score < partialThreshold
func RatingFromScore(score int, conformantThreshold int, partialThreshold int) interfaces.Rating {
	switch {
	case score >= conformantThreshold:
		return interfaces.RatingConformant
	case score >= partialThreshold:
		return interfaces.RatingPartial
	default:
		return interfaces.RatingNonConformant
	}
}
