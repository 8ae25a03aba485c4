// Package geom provides the 2D vector, segment and ray primitives shared by
// every other package in this module: addition/subtraction/scaling, dot and
// cross products, segment/segment and ray/segment intersection, and the
// point and direction reflection used throughout the trajectory and
// visibility packages.
//
// Two arithmetic regimes coexist here:
//
//   - Ray-marching and tolerance-based comparisons use a small epsilon
//     supplied by the caller: [Ray.IntersectSegment]'s selfHitEps rejects
//     self-intersection at a ray's own origin, and [Vector.Approx]'s eps
//     treats near-equal points as equal.
//   - Cross and dot products used by the angular-sector algebra in the
//     visibility package are computed exactly, with no epsilon anywhere — see
//     [Vector.Cross] and [Vector.Dot]. Sign comparisons on these values must
//     stay exact or sector boundaries drift.
//
// Nothing in this package owns state; every function is a pure function of
// its arguments.
package geom
