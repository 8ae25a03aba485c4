package visibility

import (
	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/surface"
)

// End identifies which endpoint of a surface's segment an Endpoint source
// point refers to.
type End int

const (
	SegmentStart End = iota
	SegmentEnd
)

// SourcePoint is a provenance-tagged polygon vertex: every vertex leaving
// the propagation pipeline remembers how it was constructed, so dedup
// (dedup.go) can tell a computed hit from a declared endpoint even when
// the two coordinates nearly coincide.
type SourcePoint interface {
	ComputeXY() geom.Vector
}

// OriginPoint is the sector's own origin (player position, or a reflected
// image after a bounce).
type OriginPoint struct {
	Position geom.Vector
}

func (p OriginPoint) ComputeXY() geom.Vector { return p.Position }

// Endpoint is one declared endpoint of a surface.
type Endpoint struct {
	Surface surface.Surface
	Which   End
}

func (p Endpoint) ComputeXY() geom.Vector {
	seg := p.Surface.Segment()
	if p.Which == SegmentStart {
		return seg.Start
	}
	return seg.End
}

// JunctionPoint is the shared endpoint of two adjacent surfaces in a
// surface chain (e.g. the apex of a V-shape); keeping it distinct from a
// plain Endpoint stops neighbouring rays from collapsing into one vertex.
type JunctionPoint struct {
	Before, After surface.Surface
}

func (p JunctionPoint) ComputeXY() geom.Vector {
	b, a := p.Before.Segment(), p.After.Segment()
	switch {
	case b.End.Equal(a.Start), b.End.Equal(a.End):
		return b.End
	default:
		return b.Start
	}
}

// HitPoint is a point computed by casting a ray and finding where it
// crosses a surface: ray parameter T along the ray, segment parameter S
// along the hit surface.
type HitPoint struct {
	Ray        geom.Ray
	HitSurface surface.Surface
	S, T       float64
}

func (p HitPoint) ComputeXY() geom.Vector { return p.Ray.At(p.T) }

// surfaceIdentity returns the id a run-collapsing dedup groups by, or ""
// for a point with no associated surface (OriginPoint).
func surfaceIdentity(p SourcePoint) string {
	switch v := p.(type) {
	case Endpoint:
		return v.Surface.ID()
	case JunctionPoint:
		return v.After.ID()
	case HitPoint:
		if v.HitSurface == nil {
			return ""
		}
		return v.HitSurface.ID()
	default:
		return ""
	}
}
