// Package trajectory builds and compares the two paths an arrow can be
// said to follow: the planned path, constructed purely from image
// reflections through a chain of active surfaces, and the actual path, a
// physical ray-march with reflections against the whole scene.
//
// [BuildPlannedPath] is the image-reflection constructor: it is
// deliberately blind to everything except the active plan, so inserting an
// unrelated surface into the scene never changes it. [TracePhysicalPath]
// is the opposite: it only knows about the scene it is given, and the
// planned points are merely the aim points it tries to reach before
// falling back to free ray-marching. [ComputeAlignment] reconciles the
// two, segment by segment, into a verdict a caller can color-code.
package trajectory
