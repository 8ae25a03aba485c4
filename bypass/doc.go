// Package bypass decides which surfaces in a proposed plan are actually
// reachable given a player position, a cursor position, and the rest of
// the scene, separating them from the surfaces a plan names that geometry
// rules out.
//
// Evaluate walks the plan once, maintaining the image of the player after
// bouncing off every surface accepted so far. A candidate surface is
// dropped (and recorded with a [Reason]) rather than causing an error: a
// plan with unreachable bounces is a normal, expected input, not a host
// mistake.
package bypass
