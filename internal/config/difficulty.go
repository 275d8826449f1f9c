package config

import "math"

// Ramp is a linear difficulty curve clamped to [Min, Max].
// Max <= 0 leaves the curve unbounded above.
type Ramp struct {
	Base float64 `yaml:"base"`
	Rate float64 `yaml:"rate"` // change per unit of progress (seconds, blocks...)
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

// At returns the curve value after progress x.
func (r Ramp) At(x float64) float64 {
	v := r.Base + r.Rate*x
	v = math.Max(r.Min, v)
	if r.Max > 0 {
		v = math.Min(r.Max, v)
	}
	return v
}

// Level returns how far along the curve x is, from 0 at Base to 1 at the
// clamp bound it moves toward. Unbounded curves report 0.
func (r Ramp) Level(x float64) float64 {
	var end float64
	switch {
	case r.Rate > 0 && r.Max > 0:
		end = r.Max
	case r.Rate < 0:
		end = r.Min
	default:
		return 0
	}
	if end == r.Base {
		return 1
	}
	return clampF((r.At(x)-r.Base)/(end-r.Base), 0, 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
