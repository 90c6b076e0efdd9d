package poline

import (
	"math"
	"math/rand"
)

// Random anchor generation. The randomness source is always injected so that
// callers control reproducibility; the library keeps no global source.

// RandomAnchorPair draws two anchor colors: a uniform start hue, a second hue
// 60 to 240 degrees further around the wheel, uniform saturations, and
// lightness biased into the bright 0.75–0.95 band.
func RandomAnchorPair(rng *rand.Rand) []Hsl {
	h := rng.Float64() * 360
	sat := MakePoint2(rng.Float64(), rng.Float64())
	light := MakePoint2(0.75+rng.Float64()*0.2, 0.75+rng.Float64()*0.2)

	return []Hsl{
		{H: h, S: sat.X, L: light.X},
		{H: math.Mod(h+60+rng.Float64()*180, 360), S: sat.Y, L: light.Y},
	}
}

// RandomAnchorTriple draws three anchor colors. Hues follow the same
// 60–240 degree offsets as RandomAnchorPair; the middle color is dark
// (lightness below 0.2) to give the palette a low-lightness turn.
func RandomAnchorTriple(rng *rand.Rand) []Hsl {
	h := rng.Float64() * 360
	sat := MakePoint3(rng.Float64(), rng.Float64(), rng.Float64())
	light := MakePoint3(0.75+rng.Float64()*0.2, rng.Float64()*0.2, 0.75+rng.Float64()*0.2)

	return []Hsl{
		{H: h, S: sat.X, L: light.X},
		{H: math.Mod(h+60+rng.Float64()*180, 360), S: sat.Y, L: light.Y},
		{H: math.Mod(h+60+rng.Float64()*180, 360), S: sat.Z, L: light.Z},
	}
}
