package scorer

import (
	"fmt"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"
)

// ValidationError reports a malformed severity count at the calculator boundary.
type ValidationError struct {
	Field string
	Value int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("scorer: count %q must be non-negative, got %d", e.Field, e.Value)
}

// Calculator computes compliance scores from issue severity counts.
type Calculator struct {
	weights             SeverityWeights
	conformantThreshold int
	partialThreshold    int
}

// Option configures the Calculator.
type Option func(*Calculator)

// WithSeverityWeights overrides the default severity weights.
func WithSeverityWeights(w SeverityWeights) Option {
	return func(c *Calculator) {
		c.weights = w
	}
}

// WithThresholds overrides the default CONFORMANT/PARTIAL rating thresholds.
func WithThresholds(conformant, partial int) Option {
	return func(c *Calculator) {
		c.conformantThreshold = conformant
		c.partialThreshold = partial
	}
}

// NewCalculator creates a scorer with optional configuration.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		weights:             DefaultSeverityWeights(),
		conformantThreshold: DefaultConformantThreshold,
		partialThreshold:    DefaultPartialThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Breakdown computes a ScoreBreakdown from issue severity counts.
// Formula: per tier, points = count * weight; total deduction is the sum;
// final score = max(0, 100 - total deduction). The lower clamp is
// load-bearing: a document with many critical issues must not report a
// negative score. The total deduction itself is not clamped and may
// exceed 100.
//
// Negative counts are rejected with a ValidationError rather than being
// allowed to inflate the score.
func (c *Calculator) Breakdown(counts interfaces.IssueSeverityCounts) (*interfaces.ScoreBreakdown, error) {
	if err := validateCounts(counts); err != nil {
		return nil, err
	}

	deductions := make(map[interfaces.Severity]interfaces.Deduction, 4)
	total := 0

	for _, tier := range interfaces.Tiers() {
		count := counts.Count(tier)
		points := count * c.weights.Weight(tier)
		deductions[tier] = interfaces.Deduction{Count: count, Points: points}
		total += points
	}

	score := 100 - total
	if score < 0 {
		score = 0
	}

	return &interfaces.ScoreBreakdown{
		Weights:        c.weights.clone(),
		Deductions:     deductions,
		TotalDeduction: total,
		FinalScore:     score,
	}, nil
}

// Rate maps a final score onto a conformance rating using the calculator's thresholds.
func (c *Calculator) Rate(score int) interfaces.Rating {
	return RatingFromScore(score, c.conformantThreshold, c.partialThreshold)
}

func validateCounts(counts interfaces.IssueSeverityCounts) error {
	fields := []struct {
		name  string
		value int
	}{
		{"critical", counts.Critical},
		{"serious", counts.Serious},
		{"moderate", counts.Moderate},
		{"minor", counts.Minor},
	}
	for _, f := range fields {
		if f.value < 0 {
			return &ValidationError{Field: f.name, Value: f.value}
		}
	}
	return nil
}
