package poline

import (
	"math"
	"strings"
)

// Transformer reshapes an interpolation parameter t in [0,1] along a single
// axis. The inverted flag mirrors an ease-in curve into its ease-out
// counterpart; curves that are already symmetric ignore it. Any function with
// this signature can be used as an easing, the named ones below are the
// built-in set.
type Transformer func(t float64, inverted bool) float64

// Linear leaves t untouched.
func Linear(t float64, _ bool) float64 {
	return t
}

// Quadratic eases in with t².
func Quadratic(t float64, inverted bool) float64 {
	if inverted {
		return 1 - (1-t)*(1-t)
	}
	return t * t
}

// Cubic eases in with t³.
func Cubic(t float64, inverted bool) float64 {
	if inverted {
		return 1 - (1-t)*(1-t)*(1-t)
	}
	return t * t * t
}

// Quartic eases in with t⁴.
func Quartic(t float64, inverted bool) float64 {
	if inverted {
		return 1 - math.Pow(1-t, 4)
	}
	return math.Pow(t, 4)
}

// Quintic eases in with t⁵.
func Quintic(t float64, inverted bool) float64 {
	if inverted {
		return 1 - math.Pow(1-t, 5)
	}
	return math.Pow(t, 5)
}

// Sinusoidal eases with the first quarter of a sine wave.
func Sinusoidal(t float64, inverted bool) float64 {
	if inverted {
		return 1 - math.Sin((1-t)*math.Pi/2)
	}
	return math.Sin(t * math.Pi / 2)
}

// Asinusoidal eases with the arcsine, the inverse of Sinusoidal. Only
// well-defined for t in [-1,1]; callers stay within [0,1].
func Asinusoidal(t float64, inverted bool) float64 {
	if inverted {
		return 1 - math.Asin(1-t)/(math.Pi/2)
	}
	return math.Asin(t) / (math.Pi / 2)
}

// Arc eases along a quarter circle: 1−√(1−t) easing in, √(1−(1−t)²) easing
// out. The two branches are not reflections of each other.
func Arc(t float64, inverted bool) float64 {
	if inverted {
		return math.Sqrt(1 - (1-t)*(1-t))
	}
	return 1 - math.Sqrt(1-t)
}

// SmoothStep is the Hermite t²(3−2t), symmetric around t=0.5.
func SmoothStep(t float64, _ bool) float64 {
	return t * t * (3 - 2*t)
}

// TransformerByName resolves a built-in easing curve by its lowercase name:
// linear, quadratic, cubic, quartic, quintic, sinusoidal, asinusoidal, arc or
// smoothstep.
func TransformerByName(name string) (Transformer, bool) {
	switch strings.ToLower(name) {
	case "linear":
		return Linear, true
	case "quadratic":
		return Quadratic, true
	case "cubic":
		return Cubic, true
	case "quartic":
		return Quartic, true
	case "quintic":
		return Quintic, true
	case "sinusoidal":
		return Sinusoidal, true
	case "asinusoidal":
		return Asinusoidal, true
	case "arc":
		return Arc, true
	case "smoothstep":
		return SmoothStep, true
	}
	return nil, false
}
