package visibility

import "github.com/arrowline/ricochet/geom"

// Sector is an angular region seen from Origin, bounded by the rays toward
// Right and Left. Tracing counter-clockwise from Right to Left sweeps the
// interior. Left equal to Right (by exact Vector equality) denotes the
// unconstrained full-circle sector.
//
// StartLine is set after a reflection: rays belonging to this sector are
// considered to begin on that segment rather than at Origin, so polygon
// construction can exclude the region behind the mirror.
type Sector struct {
	Origin     geom.Vector
	Right      geom.Vector
	Left       geom.Vector
	StartLine  *geom.Segment
}

// FullSector returns the unconstrained 360-degree sector at origin.
func FullSector(origin geom.Vector) Sector {
	return Sector{Origin: origin, Right: origin, Left: origin}
}

// IsFull reports whether s is unconstrained.
func (s Sector) IsFull() bool {
	return s.Right.Equal(s.Left)
}

// PropagationStage is one iteration of the propagation pipeline: the
// origin and surviving sectors at that step, their rendered polygons, the
// plan index that produced them (-1 for the initial stage), and the
// rendering opacity for that depth.
type PropagationStage struct {
	Origin       geom.Vector
	Sectors      []Sector
	Polygons     [][]geom.Vector
	SurfaceIndex int
	Opacity      float64
}

// PropagationResult is the full output of Propagate.
type PropagationResult struct {
	Stages []PropagationStage
	Valid  bool
}
