// Package scorer converts issue severity counts into compliance scores.
package scorer

import "github.com/s4cindia/ninja-cli/pkg/interfaces"

// Default severity weights define the deduction points per issue at each tier.
const (
	DefaultWeightCritical = 25
	DefaultWeightSerious  = 10
	DefaultWeightModerate = 5
	DefaultWeightMinor    = 1
)

// SeverityWeights maps severity tiers to their deduction points.
type SeverityWeights map[interfaces.Severity]int

// DefaultSeverityWeights returns the platform's fixed weight table.
func DefaultSeverityWeights() SeverityWeights {
	return SeverityWeights{
		interfaces.SeverityCritical: DefaultWeightCritical,
		interfaces.SeveritySerious:  DefaultWeightSerious,
		interfaces.SeverityModerate: DefaultWeightModerate,
		interfaces.SeverityMinor:    DefaultWeightMinor,
	}
}

// Weight returns the deduction points for a tier, falling back to 0 for unknown tiers.
func (w SeverityWeights) Weight(s interfaces.Severity) int {
	if v, ok := w[s]; ok {
		return v
	}
	return 0
}

// clone returns a copy of the weight table for inclusion in a breakdown,
// so callers cannot mutate the calculator's configuration through the result.
func (w SeverityWeights) clone() map[interfaces.Severity]int {
	out := make(map[interfaces.Severity]int, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}
