package trajectory

import (
	"math"

	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/surface"
)

// marchForward free-flies from origin in direction, reflecting off every
// plannable surface it strikes from the reflective side, until it embeds
// in a non-reflective hit, exceeds budget, or exceeds maxBounces. It is
// shared between the obstruction fallback in TracePhysicalPath and ghost
// construction: both are "what happens if the arrow just keeps flying
// physically from here."
func marchForward(origin, direction geom.Vector, scene []surface.Surface, selfHitEps float64, maxBounces int, budget float64) (points []geom.Vector, hitIDs []string, termination Termination) {
	current := origin
	dir := direction
	traveled := 0.0
	bounces := 0

	for {
		if dir.LengthSq() == 0 || budget-traveled <= 0 {
			return points, hitIDs, TerminationExhausted
		}

		ray := geom.NewRay(current, dir)
		bestT := math.Inf(1)
		var blocker surface.Surface
		for _, s := range scene {
			if t, _, _, ok := ray.IntersectSegment(s.Segment(), selfHitEps); ok && t < bestT {
				bestT, blocker = t, s
			}
		}

		if blocker == nil {
			end := current.Add(dir.Normalize().Mul(budget - traveled))
			points = append(points, end)
			hitIDs = append(hitIDs, "")
			return points, hitIDs, TerminationExhausted
		}

		hitPoint := ray.At(bestT)
		segDist := current.Distance(hitPoint)
		if traveled+segDist > budget {
			end := current.Add(dir.Normalize().Mul(budget - traveled))
			points = append(points, end)
			hitIDs = append(hitIDs, "")
			return points, hitIDs, TerminationExhausted
		}
		traveled += segDist
		points = append(points, hitPoint)
		hitIDs = append(hitIDs, blocker.ID())

		if !blocker.Plannable() || !blocker.CanReflectFrom(dir) {
			return points, hitIDs, TerminationWall
		}

		bounces++
		if bounces > maxBounces {
			return points, hitIDs, TerminationBounceLimit
		}
		dir = geom.ReflectDirection(dir, blocker.Normal())
		current = hitPoint
	}
}

// pathLength sums the Euclidean length of consecutive points.
func pathLength(points []geom.Vector) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}
	return total
}

// buildGhost runs marchForward and packages its result as a dashed
// continuation. Returns nil once the budget is already spent.
func buildGhost(origin, direction geom.Vector, scene []surface.Surface, selfHitEps float64, maxBounces int, budget float64) []GhostPoint {
	if budget <= 0 || direction.LengthSq() == 0 {
		return nil
	}
	points, hitIDs, termination := marchForward(origin, direction, scene, selfHitEps, maxBounces, budget)
	ghosts := make([]GhostPoint, len(points))
	for i, p := range points {
		ghosts[i] = GhostPoint{Position: p, SurfaceID: hitIDs[i]}
	}
	if len(ghosts) > 0 {
		ghosts[len(ghosts)-1].WillStick = termination == TerminationWall
	}
	return ghosts
}
