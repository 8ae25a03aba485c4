// Package visibility computes the chain of angular-sector polygons
// describing where a point can stand and still "correctly follow" an
// ordered plan of reflective surfaces: the region from which a direct (or
// reflected) line of sight to the next planned surface exists, stage by
// stage, reflected forward through each surface in turn.
//
// Sector arithmetic (create/intersect/block/reflect/merge) is exact: every
// predicate reduces to the sign of a 2D cross product, with no epsilon
// anywhere. Vertex dedup (dedup.go) is exact too: it drops only
// bit-identical consecutive vertices and never merges near-duplicates.
package visibility
