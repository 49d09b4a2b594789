// Package energy - Part-load bin profile
package energy

import (
	"math"

	"chiller-payback/internal/errors"
)

// BinProfile holds the time-weight fractions for the four part-load bins.
// The weights are a seasonal approximation in the spirit of IPLV bin profiles,
// not derived from actual load data, which is why they are a configurable
// policy value rather than a constant.
type BinProfile struct {
	// Weight100 is the time fraction spent at 100% of installed capacity
	Weight100 float64 `json:"weight_100"`

	// Weight75 is the time fraction at 75% capacity
	Weight75 float64 `json:"weight_75"`

	// Weight50 is the time fraction at 50% capacity
	Weight50 float64 `json:"weight_50"`

	// Weight25 is the time fraction at 25% capacity
	Weight25 float64 `json:"weight_25"`
}

// DefaultBinProfile returns the standard weights: 1% / 42% / 45% / 12%
func DefaultBinProfile() BinProfile {
	return BinProfile{
		Weight100: 0.01,
		Weight75:  0.42,
		Weight50:  0.45,
		Weight25:  0.12,
	}
}

// Sum returns the total of the four weights
func (b BinProfile) Sum() float64 {
	return b.Weight100 + b.Weight75 + b.Weight50 + b.Weight25
}

// Validate checks the profile is a proper time distribution:
// non-negative weights summing to 1.
func (b BinProfile) Validate() error {
	for _, w := range []float64{b.Weight100, b.Weight75, b.Weight50, b.Weight25} {
		if w < 0 {
			return errors.Newf(errors.TypeConfig, "bin weight must be non-negative, got %v", w)
		}
	}
	if math.Abs(b.Sum()-1.0) > 1e-9 {
		return errors.Newf(errors.TypeConfig, "bin weights must sum to 1.0, got %v", b.Sum())
	}
	return nil
}
