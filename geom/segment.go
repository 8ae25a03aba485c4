package geom

import (
	"errors"
	"math"
)

// ErrDegenerateSegment is returned by [NewValidSegment] when the two
// endpoints are closer than [degenerateLength]. Intersection routines never
// return this error themselves; they silently treat a degenerate segment as
// "no hit," an absent obstacle. NewValidSegment exists so a host can fail
// fast at scene-construction time instead.
var ErrDegenerateSegment = errors.New("geom: segment endpoints are degenerate (too close together)")

// degenerateLength is the minimum segment length considered non-degenerate.
// Segments shorter than this are treated as absent obstacles by every
// intersection routine in this package.
const degenerateLength = 1e-6

// Segment is an ordered pair of points; Start must differ from End by at
// least [degenerateLength] to be considered non-degenerate.
type Segment struct {
	Start, End Vector
}

// NewSegment builds a Segment from two endpoints without validation.
func NewSegment(start, end Vector) Segment {
	return Segment{Start: start, End: end}
}

// NewValidSegment builds a Segment from two endpoints, failing fast with
// [ErrDegenerateSegment] if they are too close together to form a usable
// line. Surface constructors use this; internal geometry that tolerates a
// degenerate result uses [NewSegment] directly.
func NewValidSegment(start, end Vector) (Segment, error) {
	s := Segment{Start: start, End: end}
	if s.Degenerate() {
		return Segment{}, ErrDegenerateSegment
	}
	return s, nil
}

// Direction returns End - Start, un-normalized.
func (s Segment) Direction() Vector {
	return s.End.Sub(s.Start)
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.Direction().Length()
}

// Degenerate reports whether the segment is shorter than the minimum length
// intersection routines will honor.
func (s Segment) Degenerate() bool {
	return s.Length() < degenerateLength
}

// Normal returns the unit vector obtained by rotating (End-Start) 90 degrees
// counter-clockwise and normalizing. Returns the zero vector only when Start
// equals End exactly; a non-zero segment shorter than [degenerateLength]
// still gets a unit normal.
func (s Segment) Normal() Vector {
	return s.Direction().Normalize().Perp()
}

// Midpoint returns the point halfway between Start and End.
func (s Segment) Midpoint() Vector {
	return s.Start.Lerp(s.End, 0.5)
}

// ReflectPoint mirrors p across the infinite line through a and b:
// p + 2*(proj(p onto line(a,b)) - p). The second return value is false when
// the line is degenerate (a and b closer than [degenerateLength]), in which
// case p is returned unchanged.
//
// Applying ReflectPoint twice with the same, non-degenerate line returns p
// exactly: reflection across a fixed line is its own inverse.
func ReflectPoint(p, a, b Vector) (Vector, bool) {
	d := b.Sub(a)
	lenSq := d.LengthSq()
	if lenSq < degenerateLength*degenerateLength {
		return p, false
	}
	t := p.Sub(a).Dot(d) / lenSq
	proj := a.Add(d.Mul(t))
	return proj.Mul(2).Sub(p), true
}

// ReflectPointOnSegment mirrors p across the infinite line carrying s.
func ReflectPointOnSegment(p Vector, s Segment) (Vector, bool) {
	return ReflectPoint(p, s.Start, s.End)
}

// ReflectDirection mirrors a direction vector across a unit normal, the
// physics reflection used by the ray-march:
// dir' = dir - 2*dot(dir, normal)*normal.
func ReflectDirection(dir, normal Vector) Vector {
	return dir.Sub(normal.Mul(2 * dir.Dot(normal)))
}

// IntersectLines intersects the infinite lines carrying a and b, returning
// the parameters t (along a) and u (along b) such that
// a.Start + t*a.Direction() == b.Start + u*b.Direction() == point.
// ok is false for parallel or degenerate lines.
func IntersectLines(a, b Segment) (t, u float64, point Vector, ok bool) {
	if a.Degenerate() || b.Degenerate() {
		return 0, 0, Vector{}, false
	}
	r := a.Direction()
	s := b.Direction()
	rxs := r.Cross(s)
	if rxs == 0 {
		return 0, 0, Vector{}, false
	}
	qp := b.Start.Sub(a.Start)
	t = qp.Cross(s) / rxs
	u = qp.Cross(r) / rxs
	point = a.Start.Add(r.Mul(t))
	return t, u, point, true
}

// IntersectSegments intersects two finite segments, requiring both
// parameters to land in [0,1]. The image-reflection constructor does not
// use it: it calls [IntersectLines] and checks the segment parameter itself.
func IntersectSegments(a, b Segment) (t, u float64, point Vector, ok bool) {
	t, u, point, ok = IntersectLines(a, b)
	if !ok {
		return 0, 0, Vector{}, false
	}
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return t, u, point, false
	}
	return t, u, point, true
}

// Ray is a half-line from Origin in Direction (not required to be unit
// length; intersection parameters are scaled accordingly).
type Ray struct {
	Origin    Vector
	Direction Vector
}

// NewRay builds a Ray from an origin and direction.
func NewRay(origin, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vector {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectSegment finds where r crosses seg, requiring t > selfHitEps (so
// a ray starting exactly on a surface does not immediately re-hit it) and
// s in [0,1]. ok is false for a degenerate segment, a parallel ray, or a
// crossing outside those bounds.
func (r Ray) IntersectSegment(seg Segment, selfHitEps float64) (t, s float64, point Vector, ok bool) {
	if seg.Degenerate() || r.Direction.LengthSq() == 0 {
		return 0, 0, Vector{}, false
	}
	rxs := r.Direction.Cross(seg.Direction())
	if rxs == 0 {
		return 0, 0, Vector{}, false
	}
	qp := seg.Start.Sub(r.Origin)
	t = qp.Cross(seg.Direction()) / rxs
	s = qp.Cross(r.Direction) / rxs
	if t <= selfHitEps || s < 0 || s > 1 {
		return t, s, Vector{}, false
	}
	return t, s, r.At(t), true
}

// IntersectRect finds the smallest t > selfHitEps at which r crosses the
// boundary of rect, used by polygon construction to fall back to
// screen-bound corners/edges when no obstacle blocks a candidate ray. ok is
// false if the ray never reaches the rect boundary going forward.
func (r Ray) IntersectRect(rect Rect, selfHitEps float64) (t float64, point Vector, ok bool) {
	edges := rectEdges(rect)
	best := math.Inf(1)
	var bestPoint Vector
	found := false
	for _, edge := range edges {
		if ct, _, cp, cok := r.IntersectSegment(edge, selfHitEps); cok && ct < best {
			best, bestPoint, found = ct, cp, true
		}
	}
	if !found {
		return 0, Vector{}, false
	}
	return best, bestPoint, true
}

func rectEdges(rect Rect) [4]Segment {
	c := rect.Corners()
	return [4]Segment{
		{Start: c[0], End: c[1]},
		{Start: c[1], End: c[2]},
		{Start: c[2], End: c[3]},
		{Start: c[3], End: c[0]},
	}
}
