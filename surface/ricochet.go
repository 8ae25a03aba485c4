package surface

import "github.com/arrowline/ricochet/geom"

// Ricochet is a plannable, reflective surface: it may appear in a plan and
// be bounced off by either the planned or physical path, subject to the
// bypass evaluator's side tests.
type Ricochet struct {
	id      string
	segment geom.Segment
}

// NewRicochet builds a Ricochet surface from an ID and two endpoints,
// failing with [geom.ErrDegenerateSegment] if they are too close together.
func NewRicochet(id string, start, end geom.Vector) (*Ricochet, error) {
	segment, err := geom.NewValidSegment(start, end)
	if err != nil {
		return nil, err
	}
	return &Ricochet{id: id, segment: segment}, nil
}

// ID implements Surface.
func (r *Ricochet) ID() string { return r.id }

// Segment implements Surface.
func (r *Ricochet) Segment() geom.Segment { return r.segment }

// Plannable implements Surface; ricochet surfaces are always true.
func (r *Ricochet) Plannable() bool { return true }

// CanReflectFrom implements Surface using the shared policy.
func (r *Ricochet) CanReflectFrom(direction geom.Vector) bool {
	return canReflectFrom(direction, r.Normal())
}

// Normal implements Surface.
func (r *Ricochet) Normal() geom.Vector { return r.segment.Normal() }
