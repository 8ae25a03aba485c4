package bypass

import (
	"math"

	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/internal/obslog"
	"github.com/arrowline/ricochet/surface"
)

// Evaluate walks plan in order and returns the subset that is actually
// reachable (active, order preserved) plus a Record for every surface that
// was dropped.
//
// selfHitEps is the minimum forward ray parameter an obstruction hit must
// clear to count (see geom.Ray.IntersectSegment). exhaustionLimit bounds
// the cumulative reflected-path length the walk may consume before every
// remaining surface is dropped as Exhausted.
func Evaluate(player, cursor geom.Vector, plan, scene []surface.Surface, selfHitEps, exhaustionLimit float64) ([]surface.Surface, []Record) {
	active := make([]surface.Surface, 0, len(plan))
	var records []Record

	current := player
	traveled := 0.0
	exhausted := false
	forcedReason := make(map[int]Reason, len(plan))

	for k, s := range plan {
		if exhausted {
			records = append(records, Record{Index: k, SurfaceID: s.ID(), Reason: Exhausted})
			continue
		}
		if reason, ok := forcedReason[k]; ok {
			records = append(records, Record{Index: k, SurfaceID: s.ID(), Reason: reason})
			continue
		}
		if traveled > exhaustionLimit {
			exhausted = true
			records = append(records, Record{Index: k, SurfaceID: s.ID(), Reason: Exhausted})
			continue
		}

		seg := s.Segment()
		normal := s.Normal()

		if current.Sub(seg.Start).Dot(normal) < 0 {
			obslog.Get().Debug("bypass: player-side rejection", "surface", s.ID(), "index", k)
			records = append(records, Record{Index: k, SurfaceID: s.ID(), Reason: PlayerWrongSide})
			continue
		}

		if k == len(plan)-1 {
			if cursor.Sub(seg.Start).Dot(normal) < 0 {
				obslog.Get().Debug("bypass: cursor-side rejection", "surface", s.ID(), "index", k)
				records = append(records, Record{Index: k, SurfaceID: s.ID(), Reason: CursorWrongSide})
				continue
			}
		}

		if k+1 < len(plan) {
			next := plan[k+1]
			if r, ok := geom.ReflectPoint(current, seg.Start, seg.End); ok {
				nextSeg := next.Segment()
				if r.Sub(nextSeg.Start).Dot(next.Normal()) < 0 {
					forcedReason[k+1] = ReflectionChainWrongSide
				}
			}
		}

		if obstructed(current, s, scene, selfHitEps) {
			obslog.Get().Debug("bypass: obstructed", "surface", s.ID(), "index", k)
			records = append(records, Record{Index: k, SurfaceID: s.ID(), Reason: Obstructed})
			continue
		}

		reflected, ok := geom.ReflectPoint(current, seg.Start, seg.End)
		if !ok {
			reflected = current
		}
		traveled += current.Distance(reflected)
		active = append(active, s)
		current = reflected
	}

	if exhausted {
		obslog.Get().Warn("bypass: exhaustion limit reached", "limit", exhaustionLimit, "traveled", traveled)
	}

	return active, records
}

// obstructed reports whether some surface in scene, other than target,
// blocks the straight path from origin to target's midpoint.
func obstructed(origin geom.Vector, target surface.Surface, scene []surface.Surface, selfHitEps float64) bool {
	mid := target.Segment().Midpoint()
	direction := mid.Sub(origin)
	if direction.LengthSq() == 0 {
		return false
	}
	ray := geom.NewRay(origin, direction)

	bestT := math.Inf(1)
	var blocker surface.Surface
	for _, s := range scene {
		if s.ID() == target.ID() {
			continue
		}
		if t, _, _, ok := ray.IntersectSegment(s.Segment(), selfHitEps); ok && t < bestT {
			bestT, blocker = t, s
		}
	}
	if blocker == nil || bestT >= 1 {
		return false
	}
	if !blocker.Plannable() {
		return true
	}
	return !blocker.CanReflectFrom(direction)
}
