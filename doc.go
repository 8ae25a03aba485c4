// Package ricochet computes aiming and visibility information for a 2D
// arrow that may ricochet off reflective surfaces before reaching a target.
//
// # Overview
//
// Given a player position, a cursor (aim) position, an ordered plan of
// surfaces the arrow is meant to bounce off, and a scene of [surface.Wall]
// and [surface.Ricochet] segments, this package answers two questions:
//
//   - ComputeDualTrajectory: where would the arrow actually travel if fired
//     right now, compared to where the plan says it should go, and do the
//     two agree closely enough at each bounce to call the shot "aligned"?
//   - Propagate: from the player's position, what region of the scene is
//     reachable through a given plan at all, expressed as the union of
//     angular sectors ("light cones") each surface in the chain can see?
//
// # Architecture
//
// The computation is layered into leaf packages, each consumed by the
// packages above it, to keep the dependency graph acyclic:
//
//   - geom: vectors, segments, rays, reflection — no project imports.
//   - surface: the Wall/Ricochet capability contract, built on geom.
//   - bypass: decides whether a proposed plan is even reachable.
//   - trajectory: builds the planned (image-reflection) and actual
//     (ray-marched) paths and compares them.
//   - visibility: propagates angular sectors through a plan and builds the
//     resulting visibility polygon.
//   - render: classifies trajectory/visibility output into renderer-facing
//     segments; this package never draws anything itself.
//   - scene: a small convenience for accumulating a []surface.Surface.
//
// This root package wires those together behind ComputeDualTrajectory and
// Propagate; it does not duplicate their algorithms.
//
// # Coordinate system
//
// Standard 2D screen coordinates: origin at top-left, X increases right, Y
// increases down. Angles are not used directly; all orientation tests go
// through exact cross products (see geom.Vector.Cross).
//
// # Determinism
//
// Every operation in this module is a pure function of its inputs plus the
// active [Config]; nothing here owns a drawing surface, a clock, or mutable
// global state beyond the optional shared logger (see SetLogger).
package ricochet
