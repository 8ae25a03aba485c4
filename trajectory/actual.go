package trajectory

import (
	"math"

	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/surface"
)

// TracePhysicalPath simulates a ray starting at player, aimed first at
// planned.Points[1] (or the cursor if the active plan is empty), against
// the full scene.
//
// At each planned interior point the ray either reaches it cleanly and, if
// that point lies on the surface's actual segment, reflects there and aims
// at the next planned point; an off-segment planned point has no physical
// surface to hit, so the ray does not reflect there and no bounce is
// counted, but the next leg is still aimed at the next planned point. If something in
// the scene blocks the ray before it reaches a planned point, the ray
// either embeds in that obstruction (stopping the path) or reflects off it
// and switches to free ray-marching for the remainder of its budget,
// abandoning the rest of the plan.
func TracePhysicalPath(player, cursor geom.Vector, planned PlannedPath, active, scene []surface.Surface, selfHitEps float64, maxBounces int, exhaustionLimit float64) ActualPath {
	targets := planned.Points[1:]

	points := []geom.Vector{player}
	current := player
	traveled := 0.0
	bounces := 0

	for idx := 0; idx < len(targets); idx++ {
		target := targets[idx]
		dir := target.Sub(current)
		if dir.LengthSq() == 0 {
			points = append(points, target)
			current = target
			continue
		}

		ray := geom.NewRay(current, dir)
		bestT := math.Inf(1)
		var blocker surface.Surface
		for _, s := range scene {
			if t, _, _, ok := ray.IntersectSegment(s.Segment(), selfHitEps); ok && t < bestT {
				bestT, blocker = t, s
			}
		}
		reachesTargetFirst := blocker == nil || bestT >= 1

		if reachesTargetFirst {
			segDist := dir.Length()
			if traveled+segDist > exhaustionLimit {
				points = append(points, current.Add(dir.Normalize().Mul(exhaustionLimit-traveled)))
				return ActualPath{Points: points, Termination: TerminationExhausted}
			}
			traveled += segDist
			points = append(points, target)
			current = target

			isLastTarget := idx == len(targets)-1
			if isLastTarget {
				ghost := buildGhost(current, dir, scene, selfHitEps, maxBounces-bounces, exhaustionLimit-traveled)
				return ActualPath{Points: points, ReachedCursor: true, Termination: TerminationCursor, Ghost: ghost}
			}

			if planned.OnSegment[idx] {
				bounces++
				if bounces > maxBounces {
					return ActualPath{Points: points, Termination: TerminationBounceLimit}
				}
			}
			continue
		}

		hitPoint := ray.At(bestT)
		segDist := current.Distance(hitPoint)
		if traveled+segDist > exhaustionLimit {
			points = append(points, current.Add(dir.Normalize().Mul(exhaustionLimit-traveled)))
			return ActualPath{Points: points, Termination: TerminationExhausted}
		}
		traveled += segDist
		points = append(points, hitPoint)
		current = hitPoint

		if !blocker.Plannable() || !blocker.CanReflectFrom(dir) {
			return ActualPath{Points: points, Termination: TerminationWall, StoppingSurfaceID: blocker.ID()}
		}

		bounces++
		if bounces > maxBounces {
			return ActualPath{Points: points, Termination: TerminationBounceLimit}
		}

		newDir := geom.ReflectDirection(dir, blocker.Normal())
		morePoints, hitIDs, termination := marchForward(current, newDir, scene, selfHitEps, maxBounces-bounces, exhaustionLimit-traveled)
		points = append(points, morePoints...)
		stopID := ""
		if termination == TerminationWall && len(hitIDs) > 0 {
			stopID = hitIDs[len(hitIDs)-1]
		}
		return ActualPath{Points: points, Termination: termination, StoppingSurfaceID: stopID}
	}

	return ActualPath{Points: points, ReachedCursor: true, Termination: TerminationCursor}
}
