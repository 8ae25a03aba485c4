// Package render adapts a DualTrajectory and a PropagationResult into the
// plain, renderer-facing shapes described by the public contract: stage
// polygons carrying their opacity, and a path segment list carrying the
// alignment classification (green/red/yellow/dashed) a host uses to
// color-code the drawn line. This package owns no drawing surface and
// performs no I/O; it only reshapes already-computed geometry.
package render
