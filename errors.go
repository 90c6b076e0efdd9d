package poline

import "errors"

// Error kinds returned by construction and mutation. A failed operation
// leaves the engine state untouched.
var (
	// ErrInsufficientAnchors is returned when fewer than two anchor colors
	// are available for an operation that needs a full segment.
	ErrInsufficientAnchors = errors.New("poline: at least two anchor colors required")

	// ErrInvalidPointsPerSegment is returned for per-segment resolutions
	// below two; a single point per segment has no defined parameterization.
	ErrInvalidPointsPerSegment = errors.New("poline: points per segment must be at least two")

	// ErrIndexOutOfRange is returned for anchor indices outside the current
	// anchor list.
	ErrIndexOutOfRange = errors.New("poline: anchor index out of range")
)
