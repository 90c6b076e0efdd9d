package poline

import "math"

// PartialPoint3 is a 3-tuple of optionally-present coordinates for masked
// distance comparisons. It covers both color representations: (h, s, l) maps
// onto (X, Y, Z) just like (x, y, z) does. An absent axis on either side
// contributes nothing to the distance.
type PartialPoint3 struct {
	X *float64
	Y *float64
	Z *float64
}

// PartialFromHsl exposes all three color components for comparison, hue on
// the first axis.
func PartialFromHsl(h Hsl) PartialPoint3 {
	return PartialPoint3{X: &h.H, Y: &h.S, Z: &h.L}
}

// PartialFromPoint exposes all three Cartesian coordinates for comparison.
func PartialFromPoint(p Point3) PartialPoint3 {
	return PartialPoint3{X: &p.X, Y: &p.Y, Z: &p.Z}
}

// Distance is the Euclidean norm over the axes present on both sides. With
// circular set, the first axis is treated as a hue angle in degrees and its
// term becomes min(|a−b|, 360−|a−b|)/360; otherwise every term is a plain
// difference.
func (p PartialPoint3) Distance(other PartialPoint3, circular bool) float64 {
	var a, b, c float64

	if p.X != nil && other.X != nil {
		if circular {
			d := math.Abs(*p.X - *other.X)
			a = math.Min(d, 360-d) / 360
		} else {
			a = *p.X - *other.X
		}
	}
	if p.Y != nil && other.Y != nil {
		b = *other.Y - *p.Y
	}
	if p.Z != nil && other.Z != nil {
		c = *other.Z - *p.Z
	}

	return math.Sqrt(a*a + b*b + c*c)
}
