package trajectory

import (
	"github.com/arrowline/ricochet/bypass"
	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/surface"
)

// BuildDualTrajectory orchestrates the bypass evaluator, the planned-path
// constructor, the physical tracer, and the alignment calculator into a
// single result: it bypasses plan entries the player or cursor can't
// legally use against the remaining chain, builds the idealized path over
// what survives, traces the physical path against the full scene, and
// scores how closely the two agree.
func BuildDualTrajectory(player, cursor geom.Vector, plan, scene []surface.Surface, selfHitEps float64, maxBounces int, exhaustionLimit float64, directionAlignmentThreshold, endpointTolerance float64) DualTrajectory {
	active, bypassed := bypass.Evaluate(player, cursor, plan, scene, selfHitEps, exhaustionLimit)

	planned := BuildPlannedPath(player, cursor, active, scene, selfHitEps, maxBounces, exhaustionLimit)
	actual := TracePhysicalPath(player, cursor, planned, active, scene, selfHitEps, maxBounces, exhaustionLimit)
	alignment := ComputeAlignment(planned, actual, directionAlignmentThreshold, endpointTolerance)

	return DualTrajectory{
		Planned:         planned,
		Actual:          actual,
		Alignment:       alignment,
		CursorReachable: actual.ReachedCursor && alignment.FullyAligned,
		Bypassed:        bypassed,
	}
}
