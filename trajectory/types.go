package trajectory

import (
	"github.com/arrowline/ricochet/bypass"
	"github.com/arrowline/ricochet/geom"
)

// Termination explains why a path stopped advancing.
type Termination int

const (
	// TerminationCursor means the path reached its declared endpoint.
	TerminationCursor Termination = iota
	// TerminationWall means the path stopped at a non-reflective hit, or a
	// reflective surface struck from its non-reflective side.
	TerminationWall
	// TerminationExhausted means the path consumed its length budget
	// before reaching its endpoint.
	TerminationExhausted
	// TerminationBounceLimit means the path used up its reflection budget
	// before reaching its endpoint.
	TerminationBounceLimit
)

func (t Termination) String() string {
	switch t {
	case TerminationCursor:
		return "Cursor"
	case TerminationWall:
		return "Wall"
	case TerminationExhausted:
		return "Exhausted"
	case TerminationBounceLimit:
		return "BounceLimit"
	default:
		return "Unknown"
	}
}

// GhostPoint is one point of the dashed continuation of a path past its
// terminal point, traced until a non-reflective hit or exhaustion.
type GhostPoint struct {
	Position geom.Vector
	// SurfaceID is the surface this point is a hit on, or "" if it is the
	// unobstructed endpoint of the ghost (an exhaustion-radius clamp).
	SurfaceID string
	// WillStick is true when the ghost terminates by embedding in a
	// non-reflective surface rather than running out of length or bounces.
	WillStick bool
}

// PlannedPath is the geometric path produced by image-reflection
// construction: player, one interior point per active surface, cursor.
type PlannedPath struct {
	Points []geom.Vector
	// OnSegment[k] reports whether Points[k+1] (the reflection point for
	// the k-th active surface) lies within that surface's finite segment,
	// as opposed to only its extended infinite line.
	OnSegment []bool
	Ghost     []GhostPoint
}

// ActualPath is the physical path produced by ray-marching with
// reflections against the full scene.
type ActualPath struct {
	Points            []geom.Vector
	ReachedCursor     bool
	Termination       Termination
	StoppingSurfaceID string
	Ghost             []GhostPoint
}

// Alignment compares a PlannedPath and ActualPath segment by segment from
// the shared starting point.
type Alignment struct {
	FullyAligned        bool
	AlignedSegmentCount int
	FirstMismatchIndex  int
	// DivergencePoint is nil when FullyAligned is true.
	DivergencePoint *geom.Vector
}

// DualTrajectory is the full result of comparing the idealized plan against
// the physically traced path for one player/cursor/plan/scene input.
type DualTrajectory struct {
	Planned         PlannedPath
	Actual          ActualPath
	Alignment       Alignment
	CursorReachable bool
	Bypassed        []bypass.Record
}
