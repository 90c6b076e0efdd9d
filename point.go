package poline

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Point2 is a 2D point in Cartesian coordinates.
type Point2 struct {
	X float64
	Y float64
}

// Point3 is a 3D point in Cartesian coordinates.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Hsl is a color in hue/saturation/lightness form. Hue is in degrees,
// conventionally [0,360); saturation and lightness conventionally [0,1].
// Components are never validated, out-of-range values propagate unchanged all
// the way to the CSS output.
type Hsl struct {
	H float64
	S float64
	L float64
}

func MakePoint2(x, y float64) Point2    { return Point2{X: x, Y: y} }
func MakePoint3(x, y, z float64) Point3 { return Point3{X: x, Y: y, Z: z} }
func MakeHsl(h, s, l float64) Hsl       { return Hsl{H: h, S: s, L: l} }

// polarCenter is both the center of the unit square the colors are mapped
// into and the scale applied to the polar radius.
const polarCenter = 0.5

// Point maps the color onto Cartesian coordinates: hue becomes the angle,
// lightness (or 1−lightness when inverted) the radius around
// (polarCenter, polarCenter), and saturation passes through as Z.
func (h Hsl) Point(inverted bool) Point3 {
	radians := h.H / (180 / math.Pi)

	dist := h.L
	if inverted {
		dist = 1 - h.L
	}
	dist *= polarCenter

	return Point3{
		X: polarCenter + dist*math.Cos(radians),
		Y: polarCenter + dist*math.Sin(radians),
		Z: h.S,
	}
}

// Hsl is the inverse of Hsl.Point. The inverted flag must match the one used
// on the forward conversion for the round trip to be exact.
func (p Point3) Hsl(inverted bool) Hsl {
	radians := math.Atan2(p.Y-polarCenter, p.X-polarCenter)
	deg := math.Mod(360+radians*(180/math.Pi), 360)

	dist := math.Hypot(p.X-polarCenter, p.Y-polarCenter)
	l := dist / polarCenter
	if inverted {
		l = 1 - l
	}

	return Hsl{H: deg, S: p.Z, L: l}
}

// Colorful converts the color into a go-colorful color for RGB projection
// and further color math. No clamping is applied here.
func (h Hsl) Colorful() colorful.Color {
	return colorful.Hsl(h.H, h.S, h.L)
}

// RGB255 projects the color to 8-bit RGB, clamped into sRGB.
func (h Hsl) RGB255() (r, g, b uint8) {
	return h.Colorful().Clamped().RGB255()
}

// ColorPoint pairs a color with its Cartesian image. The two representations
// always agree under the point's inversion flag: every setter that changes
// one side re-derives the other using that flag.
type ColorPoint struct {
	Color    Hsl
	Point    Point3
	Inverted bool
}

// ColorPointFromHsl builds a ColorPoint from a color, deriving its Cartesian
// point.
func ColorPointFromHsl(hsl Hsl, inverted bool) ColorPoint {
	return ColorPoint{Color: hsl, Point: hsl.Point(inverted), Inverted: inverted}
}

// ColorPointFromPoint builds a ColorPoint from a Cartesian point, deriving
// its color.
func ColorPointFromPoint(point Point3, inverted bool) ColorPoint {
	return ColorPoint{Color: point.Hsl(inverted), Point: point, Inverted: inverted}
}

// SetHsl replaces the color and re-derives the Cartesian point.
func (cp *ColorPoint) SetHsl(hsl Hsl) {
	cp.Color = hsl
	cp.Point = hsl.Point(cp.Inverted)
}

// SetPosition replaces the Cartesian point and re-derives the color.
func (cp *ColorPoint) SetPosition(point Point3) {
	cp.Point = point
	cp.Color = point.Hsl(cp.Inverted)
}

// SetInverted switches the radius convention, keeping the color fixed and
// re-deriving the Cartesian point under the new flag.
func (cp *ColorPoint) SetInverted(inverted bool) {
	cp.Inverted = inverted
	cp.Point = cp.Color.Point(inverted)
}

// ShiftHue rotates the hue by angle degrees, wrapping at 360, and re-derives
// the Cartesian point.
func (cp *ColorPoint) ShiftHue(angle float64) {
	cp.Color.H = math.Mod(360+cp.Color.H+angle, 360)
	cp.Point = cp.Color.Point(cp.Inverted)
}

// CSS renders the color as a CSS hsl() string. The hue is zero-padded with
// two decimals; saturation and lightness are unrounded percentages.
func (cp ColorPoint) CSS() string {
	return fmt.Sprintf("hsl(%06.2f, %v%%, %v%%)", cp.Color.H, cp.Color.S*100, cp.Color.L*100)
}

// vectorOnLine interpolates each axis of the segment p1→p2 independently,
// with the interpolation parameter reshaped per axis.
func vectorOnLine(t float64, p1, p2 Point3, inverted bool, fx, fy, fz Transformer) Point3 {
	tx := fx(t, inverted)
	ty := fy(t, inverted)
	tz := fz(t, inverted)

	return Point3{
		X: (1-tx)*p1.X + tx*p2.X,
		Y: (1-ty)*p1.Y + ty*p2.Y,
		Z: (1-tz)*p1.Z + tz*p2.Z,
	}
}

// vectorsOnLine samples numPoints points along p1→p2, both endpoints
// included. numPoints must be at least two.
func vectorsOnLine(p1, p2 Point3, numPoints int, inverted bool, fx, fy, fz Transformer) []Point3 {
	points := make([]Point3, numPoints)
	for i := range points {
		t := float64(i) / float64(numPoints-1)
		points[i] = vectorOnLine(t, p1, p2, inverted, fx, fy, fz)
	}
	return points
}
