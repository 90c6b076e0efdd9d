package poline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var namedTransformers = map[string]Transformer{
	"linear":      Linear,
	"quadratic":   Quadratic,
	"cubic":       Cubic,
	"quartic":     Quartic,
	"quintic":     Quintic,
	"sinusoidal":  Sinusoidal,
	"asinusoidal": Asinusoidal,
	"arc":         Arc,
	"smoothstep":  SmoothStep,
}

func TestTransformerEndpoints(t *testing.T) {
	for name, fn := range namedTransformers {
		for _, inverted := range []bool{false, true} {
			assert.InDelta(t, 0, fn(0, inverted), 1e-12, "%s(0, %v)", name, inverted)
			assert.InDelta(t, 1, fn(1, inverted), 1e-12, "%s(1, %v)", name, inverted)
		}
	}
}

func TestTransformerInversionIsReflection(t *testing.T) {
	// Arc is deliberately absent: its ease-out branch is a quarter circle,
	// not the reflection of its ease-in branch.
	reflected := map[string]Transformer{
		"quadratic":   Quadratic,
		"cubic":       Cubic,
		"quartic":     Quartic,
		"quintic":     Quintic,
		"sinusoidal":  Sinusoidal,
		"asinusoidal": Asinusoidal,
	}
	for name, fn := range reflected {
		for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
			assert.InDelta(t, 1-fn(1-tt, false), fn(tt, true), 1e-12, "%s at t=%v", name, tt)
		}
	}
}

func TestArcInvertedIsQuarterCircle(t *testing.T) {
	for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		assert.InDelta(t, math.Sqrt(1-(1-tt)*(1-tt)), Arc(tt, true), 1e-12, "t=%v", tt)
	}
}

func TestLinearAndSmoothStepIgnoreInversion(t *testing.T) {
	for _, fn := range []Transformer{Linear, SmoothStep} {
		for _, tt := range []float64{0, 0.2, 0.5, 0.8, 1} {
			assert.Equal(t, fn(tt, false), fn(tt, true))
		}
	}
}

func TestTransformerByName(t *testing.T) {
	for name := range namedTransformers {
		fn, ok := TransformerByName(name)
		assert.True(t, ok, name)
		assert.NotNil(t, fn, name)
	}

	fn, ok := TransformerByName("SmoothStep")
	assert.True(t, ok)
	assert.NotNil(t, fn)

	_, ok = TransformerByName("bounce")
	assert.False(t, ok)
}
