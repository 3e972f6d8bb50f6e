package scale

import "math"

func clamp(t, min, max float64) float64 {
	min, max = math.Min(min, max), math.Max(min, max)
	return math.Max(math.Min(t, max), min)
}

// Clamp returns a function that scales a number from the interval [rMin,rMax]
// to the interval [tMin,tMax], clamping results that fall outside it.
func Clamp(rMin, rMax, tMin, tMax float64) func(m float64) float64 {
	return func(m float64) float64 {
		if rMax == rMin {
			return tMin
		}
		scaled := tMin + (m-rMin)*(tMax-tMin)/(rMax-rMin)
		return clamp(scaled, tMin, tMax)
	}
}

// ToUnitClamp returns a function that scales a number from the interval [rMin,rMax]
// to the unit interval ([0,1]), if the result falls outside [0,1], it is clamped
// to 0 or 1.
func ToUnitClamp(rMin, rMax float64) func(m float64) float64 {
	return Clamp(rMin, rMax, 0, 1)
}

// ToUnit rescales a bipolar value in [-1,1] to the unit interval.
func ToUnit(m float64) float64 {
	return (m + 1) / 2
}

// ToBipolar rescales a unit value in [0,1] to [-1,1].
func ToBipolar(m float64) float64 {
	return m*2 - 1
}
