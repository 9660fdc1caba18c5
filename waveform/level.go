// SPDX-License-Identifier: EPL-2.0

package waveform

import "fmt"

// DetailLevel is the drawing strategy chosen from the zoom scale.
type DetailLevel int

const (
	// Low draws one vertical tick per bin.
	Low DetailLevel = iota
	// High draws a connected min/max polyline through the bins.
	High
	// VeryHigh draws every sample; the bin cache is not used.
	VeryHigh
)

func (l DetailLevel) String() string {
	switch l {
	case Low:
		return "low"
	case High:
		return "high"
	case VeryHigh:
		return "very-high"
	default:
		return fmt.Sprintf("DetailLevel(%d)", int(l))
	}
}

// Binned reports whether the level reads from the bin cache.
func (l DetailLevel) Binned() bool {
	return l != VeryHigh
}

// Cutoffs are bin sizes, in frames per bin, at which the detail level
// changes. Max <= VeryHigh < High.
type Cutoffs struct {
	// Max is the bin size at or below which no further detail is possible.
	Max float64 `yaml:"max"`
	// VeryHigh is the largest bin size still drawn sample by sample.
	VeryHigh float64 `yaml:"very_high"`
	// High is the largest bin size drawn as a polyline.
	High float64 `yaml:"high"`
}

// DefaultCutoffs suit typical sample rates on desktop displays.
func DefaultCutoffs() Cutoffs {
	return Cutoffs{Max: 0.1, VeryHigh: 10, High: 60}
}

// Validate reports ErrInvalidCutoffs unless 0 < Max <= VeryHigh < High.
func (c Cutoffs) Validate() error {
	switch {
	case c.Max <= 0 || c.VeryHigh <= 0 || c.High <= 0:
		return fmt.Errorf("%w: cutoffs must be positive (max=%g very_high=%g high=%g)",
			ErrInvalidCutoffs, c.Max, c.VeryHigh, c.High)
	case c.Max > c.VeryHigh:
		return fmt.Errorf("%w: max cutoff %g exceeds very-high cutoff %g", ErrInvalidCutoffs, c.Max, c.VeryHigh)
	case c.VeryHigh >= c.High:
		return fmt.Errorf("%w: very-high cutoff %g must be below high cutoff %g", ErrInvalidCutoffs, c.VeryHigh, c.High)
	}

	return nil
}

// Level maps a bin size to a detail level. maxReached is true when the
// bin size is at or below the Max cutoff.
func (c Cutoffs) Level(binSize float64) (level DetailLevel, maxReached bool) {
	switch {
	case binSize <= c.VeryHigh:
		return VeryHigh, binSize <= c.Max
	case binSize <= c.High:
		return High, false
	default:
		return Low, false
	}
}
