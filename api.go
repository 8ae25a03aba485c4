package ricochet

import (
	"github.com/arrowline/ricochet/bypass"
	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/surface"
	"github.com/arrowline/ricochet/trajectory"
	"github.com/arrowline/ricochet/visibility"
)

// ComputeDualTrajectory builds the idealized plan over the active subset of
// plan (after bypassing any entry the player or cursor can't legally reach
// against the remaining reflection chain), ray-marches the actual physical
// path against the full scene, and scores how closely the two agree.
//
// cursor_reachable holds iff the actual path reaches the cursor and the two
// paths are fully aligned.
func ComputeDualTrajectory(player, cursor geom.Vector, plan, scene []surface.Surface, opts ...Option) trajectory.DualTrajectory {
	cfg := buildConfig(opts...)
	return trajectory.BuildDualTrajectory(
		player, cursor, plan, scene,
		cfg.SelfHitEpsilon, cfg.MaxBounces, cfg.ExhaustionLimit,
		cfg.DirectionAlignmentThreshold, cfg.EndpointTolerance,
	)
}

// Propagate runs the visibility pipeline over the active plan, reflecting
// an angular window through each planned surface in turn and clamping
// against the scene and the configured screen bounds.
//
// The active plan is computed by the same bypass walk ComputeDualTrajectory
// uses, against the same cursor: a surface the trajectory pipeline would
// drop (wrong side of the player or cursor, obstructed, unreachable through
// an exhausted chain) is dropped here too, so the cone never reflects
// through a surface the idealized plan has already discarded.
//
// ScreenBounds must have non-zero area: polygon construction falls back to
// the screen rectangle whenever a candidate ray escapes every obstacle, so
// a zero-area rect is a host misconfiguration rather than a valid empty
// result.
func Propagate(player, cursor geom.Vector, plan, scene []surface.Surface, opts ...Option) (visibility.PropagationResult, error) {
	cfg := buildConfig(opts...)
	if cfg.ScreenBounds.IsZero() {
		return visibility.PropagationResult{}, ErrNilScreenBounds
	}
	active, _ := bypass.Evaluate(player, cursor, plan, scene, cfg.SelfHitEpsilon, cfg.ExhaustionLimit)
	return visibility.Propagate(player, active, scene, cfg.ScreenBounds, cfg.SelfHitEpsilon), nil
}
