package surface

import "github.com/arrowline/ricochet/geom"

// Wall is a non-plannable surface: arrows that reach it stop or are
// obstructed. bypass.Evaluate does not check Plannable, so a Wall placed in
// a plan is not dropped for being a wall.
type Wall struct {
	id      string
	segment geom.Segment
}

// NewWall builds a Wall from an ID and two endpoints, failing with
// [geom.ErrDegenerateSegment] if they are too close together.
func NewWall(id string, start, end geom.Vector) (*Wall, error) {
	segment, err := geom.NewValidSegment(start, end)
	if err != nil {
		return nil, err
	}
	return &Wall{id: id, segment: segment}, nil
}

// ID implements Surface.
func (w *Wall) ID() string { return w.id }

// Segment implements Surface.
func (w *Wall) Segment() geom.Segment { return w.segment }

// Plannable implements Surface; walls are always false.
func (w *Wall) Plannable() bool { return false }

// CanReflectFrom implements Surface using the shared policy. Walls are
// never reflected off, but the predicate is still well defined so
// obstruction checks can evaluate it uniformly with ricochet surfaces.
func (w *Wall) CanReflectFrom(direction geom.Vector) bool {
	return canReflectFrom(direction, w.Normal())
}

// Normal implements Surface.
func (w *Wall) Normal() geom.Vector { return w.segment.Normal() }
