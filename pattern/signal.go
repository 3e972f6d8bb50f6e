package pattern

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/weftlang/weft/engine/scale"
)

// Continuous waveforms. Each is a signal over the cycle, valued in the unit
// interval, so they can drive any parameter directly or be rescaled with
// the numeric operators.

var clamp01 = scale.ToUnitClamp(0, 1)

// Sine is a sine wave, one period per cycle, rescaled to [0,1].
var Sine = Sig(func(t Time) float64 {
	return scale.ToUnit(math.Sin(2 * math.Pi * t.Float()))
})

// Cosine is Sine a quarter cycle later.
var Cosine = RotR(NewTime(1, 4), Sine)

// Saw ramps from 0 to 1 over each cycle.
var Saw = Sig(func(t Time) float64 {
	return t.CyclePos().Float()
})

// Tri ramps up for a cycle, then back down for the next.
var Tri = Append(Saw, Rev(Saw))

// Square is 0 for the first half of each cycle and 1 for the second.
var Square = Sig(func(t Time) float64 {
	return math.Floor(t.CyclePos().Float() * 2)
})

// EnvL rises linearly from 0 to 1 over the first cycle, then holds.
var EnvL = Sig(func(t Time) float64 {
	return clamp01(t.Float())
})

// EnvLR falls linearly from 1 to 0 over the first cycle, then holds.
var EnvLR = Sig(func(t Time) float64 {
	return 1 - clamp01(t.Float())
})

// EnvEq is an equal-power fade out over the first cycle.
var EnvEq = Sig(func(t Time) float64 {
	return math.Sin(math.Pi / 2 * clamp01(1-t.Float()))
})

// EnvEqR is an equal-power fade in over the first cycle.
var EnvEqR = Sig(func(t Time) float64 {
	return math.Sin(math.Pi / 2 * clamp01(t.Float()))
})

// EnvEase shapes the first cycle with an easing function, holding its final
// value afterwards. Any of the fogleman/ease curves drops straight in:
//
//	swell := pattern.EnvEase(ease.InOutQuad)
func EnvEase(f ease.Function) Pattern[float64] {
	return Sig(func(t Time) float64 {
		return f(clamp01(t.Float()))
	})
}
