package surface

import "github.com/arrowline/ricochet/geom"

// Surface is the capability set the core depends on; concrete surface types
// live with the host. Implementations are treated as immutable value-like
// objects identified by ID for the duration of one computation.
type Surface interface {
	// ID returns the surface's opaque identity, used for provenance
	// tracking and bypass records.
	ID() string

	// Segment returns the surface's finite segment.
	Segment() geom.Segment

	// Plannable reports whether the surface can reflect (ricochet); walls
	// are non-plannable.
	Plannable() bool

	// CanReflectFrom reports whether a ray with the given direction
	// approaches the surface's reflective side: dot(direction, normal) < 0.
	CanReflectFrom(direction geom.Vector) bool

	// Normal returns the surface's unit normal: (End-Start) rotated 90
	// degrees counter-clockwise and normalized.
	Normal() geom.Vector
}

// canReflectFrom implements the shared policy used by both reference
// surface types.
func canReflectFrom(direction, normal geom.Vector) bool {
	return direction.Dot(normal) < 0
}
