// Package poline generates smooth multi-stop color palettes. It implements
// anchor-based gradient generation over a dual color representation:
//   - Each color lives simultaneously in HSL and as a Cartesian point (hue as
//     the polar angle, lightness as the radius around (0.5, 0.5), saturation
//     as depth).
//   - Consecutive anchor colors are paired into segments, wrapping around for
//     closed loops.
//   - Each segment is sampled by interpolating the three axes independently
//     through configurable easing curves, with the easing direction
//     alternating per segment so monotonic curves produce no density kink at
//     shared anchors.
//
// Derived state is recomputed eagerly: every structural mutation rebuilds the
// anchor pairs and all interpolated points in full, and the read accessors
// serve the cached result. An engine is not safe for concurrent use without
// caller-side serialization.
package poline

import (
	"fmt"
	"math/rand"
)

const (
	// DefaultNumPoints is the number of points sampled per segment, both
	// endpoints included.
	DefaultNumPoints = 4

	// DefaultHueShift is the conventional rotation, in degrees, for
	// ShiftHue callers without a specific delta in mind.
	DefaultHueShift = 20.0
)

// Options configures construction. Zero values select the defaults: four
// points per segment, a shared sinusoidal easing on every axis, open loop, no
// inversion.
type Options struct {
	// AnchorColors are the colors the palette passes through, in order. At
	// least two are required, unless Rand is set, in which case an empty list
	// is replaced by a random pair drawn from it.
	AnchorColors []Hsl

	// NumPoints is the number of points per segment, endpoints included.
	NumPoints int

	// PositionFn is the easing shared by all three axes; PositionFnX/Y/Z
	// override it per axis.
	PositionFn  Transformer
	PositionFnX Transformer
	PositionFnY Transformer
	PositionFnZ Transformer

	// ClosedLoop connects the last anchor back to the first.
	ClosedLoop bool

	// Inverted selects the 1−lightness polar radius convention.
	Inverted bool

	// Rand supplies randomness for default anchor generation.
	Rand *rand.Rand
}

// Poline is the interpolation engine. It owns an ordered anchor list and the
// derived per-segment point sequences; callers receive copies.
type Poline struct {
	anchorPoints []ColorPoint
	numPoints    int
	fnX          Transformer
	fnY          Transformer
	fnZ          Transformer
	inverted     bool
	closedLoop   bool

	// Derived, rebuilt in full by updateAnchorPairs after every mutation.
	anchorPairs [][2]ColorPoint
	points      [][]ColorPoint
}

// New builds an engine from opts.
func New(opts Options) (*Poline, error) {
	anchors := opts.AnchorColors
	if len(anchors) == 0 && opts.Rand != nil {
		anchors = RandomAnchorPair(opts.Rand)
	}
	if len(anchors) < 2 {
		return nil, fmt.Errorf("%d anchor colors: %w", len(anchors), ErrInsufficientAnchors)
	}

	numPoints := opts.NumPoints
	if numPoints == 0 {
		numPoints = DefaultNumPoints
	}
	if numPoints < 2 {
		return nil, fmt.Errorf("%d points per segment: %w", numPoints, ErrInvalidPointsPerSegment)
	}

	shared := opts.PositionFn
	if shared == nil {
		shared = Sinusoidal
	}
	pick := func(fn Transformer) Transformer {
		if fn == nil {
			return shared
		}
		return fn
	}

	p := &Poline{
		numPoints:  numPoints,
		fnX:        pick(opts.PositionFnX),
		fnY:        pick(opts.PositionFnY),
		fnZ:        pick(opts.PositionFnZ),
		inverted:   opts.Inverted,
		closedLoop: opts.ClosedLoop,
	}
	p.anchorPoints = make([]ColorPoint, len(anchors))
	for i, hsl := range anchors {
		p.anchorPoints[i] = ColorPointFromHsl(hsl, opts.Inverted)
	}

	p.updateAnchorPairs()
	return p, nil
}

// updateAnchorPairs rebuilds all derived state from scratch: the consecutive
// anchor pairs and, per pair, the interpolated point sequence. Every mutator
// funnels through here; reads never do.
func (p *Poline) updateAnchorPairs() {
	n := len(p.anchorPoints)
	pairCount := n - 1
	if p.closedLoop {
		pairCount = n
	}

	pairs := make([][2]ColorPoint, pairCount)
	points := make([][]ColorPoint, pairCount)
	for i := 0; i < pairCount; i++ {
		pairs[i] = [2]ColorPoint{p.anchorPoints[i], p.anchorPoints[(i+1)%n]}

		// The easing direction alternates with the pair index; the engine's
		// global inversion flag only governs the point→color conversion.
		segment := vectorsOnLine(
			pairs[i][0].Point, pairs[i][1].Point,
			p.numPoints,
			i%2 == 0,
			p.fnX, p.fnY, p.fnZ,
		)
		colorPoints := make([]ColorPoint, len(segment))
		for k, pt := range segment {
			colorPoints[k] = ColorPointFromPoint(pt, p.inverted)
		}
		points[i] = colorPoints
	}

	p.anchorPairs = pairs
	p.points = points
}

// NumPoints returns the number of points per segment, endpoints included.
func (p *Poline) NumPoints() int { return p.numPoints }

// SetNumPoints changes the per-segment resolution and rebuilds.
func (p *Poline) SetNumPoints(num int) error {
	if num < 2 {
		return fmt.Errorf("%d points per segment: %w", num, ErrInvalidPointsPerSegment)
	}
	p.numPoints = num
	p.updateAnchorPairs()
	return nil
}

// PositionFns returns the x, y and z easing functions.
func (p *Poline) PositionFns() (fx, fy, fz Transformer) {
	return p.fnX, p.fnY, p.fnZ
}

// SetPositionFns replaces the per-axis easing functions and rebuilds.
func (p *Poline) SetPositionFns(fx, fy, fz Transformer) {
	p.fnX, p.fnY, p.fnZ = fx, fy, fz
	p.updateAnchorPairs()
}

// SetPositionFn applies one easing function to all three axes.
func (p *Poline) SetPositionFn(fn Transformer) {
	p.SetPositionFns(fn, fn, fn)
}

// AnchorPairs returns a copy of the consecutive anchor pairs the segments
// interpolate between; for a closed loop the final pair wraps back to the
// first anchor.
func (p *Poline) AnchorPairs() [][2]ColorPoint {
	out := make([][2]ColorPoint, len(p.anchorPairs))
	copy(out, p.anchorPairs)
	return out
}

// AnchorPoints returns a copy of the anchor list.
func (p *Poline) AnchorPoints() []ColorPoint {
	out := make([]ColorPoint, len(p.anchorPoints))
	copy(out, p.anchorPoints)
	return out
}

// SetAnchorPoints replaces the whole anchor list and rebuilds.
func (p *Poline) SetAnchorPoints(points []ColorPoint) error {
	if len(points) < 2 {
		return fmt.Errorf("%d anchors: %w", len(points), ErrInsufficientAnchors)
	}
	p.anchorPoints = make([]ColorPoint, len(points))
	copy(p.anchorPoints, points)
	p.updateAnchorPairs()
	return nil
}

// AddAnchorPoint appends an anchor, coerced to the engine's inversion
// convention, and returns the stored value.
func (p *Poline) AddAnchorPoint(cp ColorPoint) ColorPoint {
	cp.SetInverted(p.inverted)
	p.anchorPoints = append(p.anchorPoints, cp)
	p.updateAnchorPairs()
	return cp
}

// InsertAnchorPoint inserts an anchor at index, shifting later anchors up.
// index may equal the current anchor count, which appends.
func (p *Poline) InsertAnchorPoint(index int, cp ColorPoint) (ColorPoint, error) {
	if index < 0 || index > len(p.anchorPoints) {
		return ColorPoint{}, fmt.Errorf("insert at %d of %d: %w", index, len(p.anchorPoints), ErrIndexOutOfRange)
	}
	cp.SetInverted(p.inverted)
	p.anchorPoints = append(p.anchorPoints, ColorPoint{})
	copy(p.anchorPoints[index+1:], p.anchorPoints[index:])
	p.anchorPoints[index] = cp
	p.updateAnchorPairs()
	return cp, nil
}

// RemoveAnchorPoint removes and returns the anchor at index. The engine
// always keeps at least two anchors.
func (p *Poline) RemoveAnchorPoint(index int) (ColorPoint, error) {
	if index < 0 || index >= len(p.anchorPoints) {
		return ColorPoint{}, fmt.Errorf("remove at %d of %d: %w", index, len(p.anchorPoints), ErrIndexOutOfRange)
	}
	if len(p.anchorPoints) <= 2 {
		return ColorPoint{}, fmt.Errorf("remove would leave %d anchors: %w", len(p.anchorPoints)-1, ErrInsufficientAnchors)
	}
	out := p.anchorPoints[index]
	p.anchorPoints = append(p.anchorPoints[:index], p.anchorPoints[index+1:]...)
	p.updateAnchorPairs()
	return out, nil
}

// UpdateAnchorPointHsl replaces the color of the anchor at index, re-deriving
// its Cartesian point, and returns the stored value.
func (p *Poline) UpdateAnchorPointHsl(index int, hsl Hsl) (ColorPoint, error) {
	if index < 0 || index >= len(p.anchorPoints) {
		return ColorPoint{}, fmt.Errorf("update at %d of %d: %w", index, len(p.anchorPoints), ErrIndexOutOfRange)
	}
	p.anchorPoints[index].SetHsl(hsl)
	p.updateAnchorPairs()
	return p.anchorPoints[index], nil
}

// UpdateAnchorPointPosition moves the anchor at index, re-deriving its color,
// and returns the stored value.
func (p *Poline) UpdateAnchorPointPosition(index int, point Point3) (ColorPoint, error) {
	if index < 0 || index >= len(p.anchorPoints) {
		return ColorPoint{}, fmt.Errorf("update at %d of %d: %w", index, len(p.anchorPoints), ErrIndexOutOfRange)
	}
	p.anchorPoints[index].SetPosition(point)
	p.updateAnchorPairs()
	return p.anchorPoints[index], nil
}

// ClosestAnchorToPoint returns the anchor nearest to point in Cartesian
// space along with its distance. ok is false when there are no anchors.
func (p *Poline) ClosestAnchorToPoint(point Point3) (closest ColorPoint, distance float64, ok bool) {
	target := PartialFromPoint(point)
	for _, anchor := range p.anchorPoints {
		d := PartialFromPoint(anchor.Point).Distance(target, false)
		if !ok || d < distance {
			closest, distance, ok = anchor, d, true
		}
	}
	return closest, distance, ok
}

// ClosestAnchorToColor is ClosestAnchorToPoint in HSL space. The hue axis is
// compared with a plain difference, not the circular metric.
func (p *Poline) ClosestAnchorToColor(hsl Hsl) (closest ColorPoint, distance float64, ok bool) {
	target := PartialFromHsl(hsl)
	for _, anchor := range p.anchorPoints {
		d := PartialFromHsl(anchor.Color).Distance(target, false)
		if !ok || d < distance {
			closest, distance, ok = anchor, d, true
		}
	}
	return closest, distance, ok
}

// ClosedLoop reports whether the last anchor connects back to the first.
func (p *Poline) ClosedLoop() bool { return p.closedLoop }

// SetClosedLoop toggles the wraparound segment and rebuilds.
func (p *Poline) SetClosedLoop(closed bool) {
	p.closedLoop = closed
	p.updateAnchorPairs()
}

// Inverted reports the engine's polar radius convention.
func (p *Poline) Inverted() bool { return p.inverted }

// SetInverted switches the radius convention. Anchor colors are preserved;
// their Cartesian points are re-derived under the new flag before the
// rebuild.
func (p *Poline) SetInverted(inverted bool) {
	p.inverted = inverted
	for i := range p.anchorPoints {
		p.anchorPoints[i].SetInverted(inverted)
	}
	p.updateAnchorPairs()
}

// FlattenedPoints returns the interpolated sequence with the duplicated
// junction anchors removed; for a closed loop the trailing duplicate of the
// first point is dropped too.
func (p *Poline) FlattenedPoints() []ColorPoint {
	var out []ColorPoint
	i := 0
	for _, segment := range p.points {
		for _, cp := range segment {
			if i == 0 || i%p.numPoints != 0 {
				out = append(out, cp)
			}
			i++
		}
	}
	if p.closedLoop && len(out) > 0 {
		out = out[:len(out)-1]
	}
	return out
}

// Colors returns the flattened palette as HSL values.
func (p *Poline) Colors() []Hsl {
	flat := p.FlattenedPoints()
	colors := make([]Hsl, len(flat))
	for i, cp := range flat {
		colors[i] = cp.Color
	}
	return colors
}

// ColorsCSS returns the flattened palette as CSS hsl() strings.
func (p *Poline) ColorsCSS() []string {
	flat := p.FlattenedPoints()
	css := make([]string, len(flat))
	for i, cp := range flat {
		css[i] = cp.CSS()
	}
	return css
}

// ColorsHex returns the flattened palette as #rrggbb strings, clamped into
// sRGB.
func (p *Poline) ColorsHex() []string {
	flat := p.FlattenedPoints()
	hex := make([]string, len(flat))
	for i, cp := range flat {
		hex[i] = cp.Color.Colorful().Clamped().Hex()
	}
	return hex
}

// ShiftHue rotates every anchor hue by degrees (DefaultHueShift is the
// conventional delta), wrapping at 360, and rebuilds.
func (p *Poline) ShiftHue(degrees float64) {
	for i := range p.anchorPoints {
		p.anchorPoints[i].ShiftHue(degrees)
	}
	p.updateAnchorPairs()
}
