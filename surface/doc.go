// Package surface defines the capability set external collaborators use to
// describe reflective ("ricochet") and non-reflective ("wall") segments to
// the trajectory and visibility packages.
//
// The core never constructs or owns concrete scene geometry — it borrows
// [Surface] values supplied by the host for the duration of one call and
// never mutates them. This package ships two reference implementations,
// [Wall] and [Ricochet], that satisfy the interface over a plain
// [geom.Segment]; a host with its own surface type only needs to implement
// the small [Surface] interface to participate.
//
// # Capability set
//
//   - Plannable reports whether the surface can reflect (ricochet).
//   - CanReflectFrom reports whether a ray with the given direction strikes
//     the surface's reflective side.
//   - Normal returns the surface's unit normal, rotating (End-Start) 90
//     degrees counter-clockwise.
//
// # Usage
//
//	wall, _ := surface.NewWall("wall-0", geom.V(300, 200), geom.V(300, 400))
//	mirror, _ := surface.NewRicochet("s0", geom.V(200, 100), geom.V(200, 400))
//	scene := []surface.Surface{wall, mirror}
package surface
