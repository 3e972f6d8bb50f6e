package pattern

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color patterns, for driving lights or visualising a show. Colors are just
// another value type to the algebra; these helpers cover the common ways of
// building them.

// ColorWheel sweeps the hue circle once per cycle, fully saturated.
var ColorWheel = Sig(func(t Time) colorful.Color {
	return colorful.Hsv(t.CyclePos().Float()*360, 1, 1)
})

// Gradient blends two color patterns halfway in Luv space, which keeps the
// blend perceptually even. Structure comes from both sides.
func Gradient(a, b Pattern[colorful.Color]) Pattern[colorful.Color] {
	return Lift2(func(x, y colorful.Color) colorful.Color {
		return x.BlendLuv(y, 0.5)
	}, a, b)
}

// HexColors packs hex strings like "#FF8800" into one cycle. A string that
// does not parse leaves a rest in its slot.
func HexColors(hexes []string) Pattern[colorful.Color] {
	ps := make([]*colorful.Color, len(hexes))
	for i, h := range hexes {
		if c, err := colorful.Hex(h); err == nil {
			c := c
			ps[i] = &c
		}
	}
	return FromMaybes(ps)
}
