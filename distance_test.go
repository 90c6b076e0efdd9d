package poline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestPartialDistance(t *testing.T) {
	a := PartialPoint3{X: fptr(0), Y: fptr(0), Z: fptr(0)}
	b := PartialPoint3{X: fptr(3), Y: fptr(4)}
	assert.InDelta(t, 5, a.Distance(b, false), 1e-12)

	// Absent axes on either side are ignored.
	a = PartialPoint3{X: fptr(5)}
	b = PartialPoint3{X: fptr(1), Y: fptr(9)}
	assert.InDelta(t, 4, a.Distance(b, false), 1e-12)

	assert.Zero(t, PartialPoint3{}.Distance(PartialPoint3{}, false))
}

func TestPartialDistanceCircularFirstAxis(t *testing.T) {
	a := PartialPoint3{X: fptr(350)}
	b := PartialPoint3{X: fptr(10)}

	assert.InDelta(t, 340, a.Distance(b, false), 1e-12)
	assert.InDelta(t, 20.0/360.0, a.Distance(b, true), 1e-12)

	// Circular mode only affects the first axis.
	a = PartialPoint3{X: fptr(350), Y: fptr(0), Z: fptr(0)}
	b = PartialPoint3{X: fptr(350), Y: fptr(3), Z: fptr(4)}
	assert.InDelta(t, 5, a.Distance(b, true), 1e-12)
}

func TestPartialFromRepresentations(t *testing.T) {
	hp := PartialFromHsl(Hsl{H: 120, S: 0.5, L: 0.25})
	assert.Equal(t, 120.0, *hp.X)
	assert.Equal(t, 0.5, *hp.Y)
	assert.Equal(t, 0.25, *hp.Z)

	pp := PartialFromPoint(Point3{X: 0.1, Y: 0.2, Z: 0.3})
	assert.Equal(t, 0.1, *pp.X)
	assert.Equal(t, 0.2, *pp.Y)
	assert.Equal(t, 0.3, *pp.Z)
}
