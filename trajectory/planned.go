package trajectory

import (
	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/surface"
)

// BuildPlannedPath constructs the planned path through active (the bypass
// evaluator's surviving plan, in order) using forward player-images and
// backward cursor-images.
//
// For k in [0, n), player-images Pk = reflect(Pk-1, active[k-1]) and
// cursor-images Ck = reflect(Ck+1, active[k]) meet at the intersection of
// segment Pk->Ck with the extended infinite line of active[k]; that
// intersection point is the k-th interior point, on-segment or not. The
// path is transparent to everything else in the scene: walls, unplanned
// surfaces and any surface past the one currently being considered have no
// effect on it.
//
// scene, selfHitEps, maxBounces and exhaustionLimit are used only to
// extend a dashed ghost past the cursor; they play no part in the
// geometric construction itself.
func BuildPlannedPath(player, cursor geom.Vector, active, scene []surface.Surface, selfHitEps float64, maxBounces int, exhaustionLimit float64) PlannedPath {
	n := len(active)

	playerImages := make([]geom.Vector, n+1)
	playerImages[0] = player
	for k := 0; k < n; k++ {
		seg := active[k].Segment()
		r, ok := geom.ReflectPoint(playerImages[k], seg.Start, seg.End)
		if !ok {
			r = playerImages[k]
		}
		playerImages[k+1] = r
	}

	cursorImages := make([]geom.Vector, n+1)
	cursorImages[n] = cursor
	for k := n - 1; k >= 0; k-- {
		seg := active[k].Segment()
		r, ok := geom.ReflectPoint(cursorImages[k+1], seg.Start, seg.End)
		if !ok {
			r = cursorImages[k+1]
		}
		cursorImages[k] = r
	}

	points := make([]geom.Vector, 0, n+2)
	points = append(points, player)
	onSegment := make([]bool, n)

	for k := 0; k < n; k++ {
		chord := geom.NewSegment(playerImages[k], cursorImages[k])
		surf := active[k].Segment()
		_, u, point, ok := geom.IntersectLines(chord, surf)
		if !ok {
			point = surf.Midpoint()
			onSegment[k] = true
		} else {
			onSegment[k] = u >= 0 && u <= 1
		}
		points = append(points, point)
	}
	points = append(points, cursor)

	path := PlannedPath{Points: points, OnSegment: onSegment}

	if len(points) >= 2 {
		last := points[len(points)-1]
		prev := points[len(points)-2]
		dir := last.Sub(prev)
		budget := exhaustionLimit - pathLength(points)
		path.Ghost = buildGhost(last, dir, scene, selfHitEps, maxBounces, budget)
	}

	return path
}
