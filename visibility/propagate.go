package visibility

import (
	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/internal/obslog"
	"github.com/arrowline/ricochet/surface"
)

// Propagate runs the full visibility pipeline: a full sector at player,
// then for each active plan surface in order, trim the current sectors to
// that surface's window, block the survivors by every other scene
// obstacle, merge adjacent sectors, build that stage's polygon(s), and
// reflect the merged sectors through the surface to seed the next stage.
//
// Propagation stops as soon as a stage trims or blocks every sector to
// nothing; earlier stages are still returned. valid is true iff at least
// one stage produced a polygon with 3 or more vertices.
func Propagate(player geom.Vector, plan, scene []surface.Surface, bounds geom.Rect, selfHitEps float64) PropagationResult {
	n := len(plan)
	origin := player
	sectors := []Sector{FullSector(origin)}

	stages := []PropagationStage{
		{
			Origin:       origin,
			Sectors:      sectors,
			Polygons:     buildPolygons(sectors, scene, bounds, selfHitEps),
			SurfaceIndex: -1,
			Opacity:      stageOpacity(-1, n),
		},
	}

	for k := 0; k < n; k++ {
		surf := plan[k]
		window := CreateFromSurface(origin, surf)

		var trimmed []Sector
		for _, s := range sectors {
			if r, ok := s.Intersect(window); ok {
				trimmed = append(trimmed, r)
			}
		}
		if len(trimmed) == 0 {
			obslog.Get().Debug("visibility: stage trimmed to nothing", "surface_index", k)
			break
		}

		blocked := trimmed
		for _, obstacle := range scene {
			if obstacle.ID() == surf.ID() {
				continue
			}
			var next []Sector
			for _, s := range blocked {
				next = append(next, BlockBy(s, obstacle)...)
			}
			blocked = next
			if len(blocked) == 0 {
				break
			}
		}
		if len(blocked) == 0 {
			obslog.Get().Debug("visibility: stage blocked to nothing", "surface_index", k)
			break
		}

		merged := Merge(blocked)
		stages = append(stages, PropagationStage{
			Origin:       origin,
			Sectors:      merged,
			Polygons:     buildPolygons(merged, scene, bounds, selfHitEps),
			SurfaceIndex: k,
			Opacity:      stageOpacity(k, n),
		})

		reflected := make([]Sector, len(merged))
		for i, s := range merged {
			reflected[i] = s.Reflect(surf)
		}
		sectors = reflected
		if len(reflected) > 0 {
			origin = reflected[0].Origin
		}
	}

	valid := false
	for _, st := range stages {
		for _, p := range st.Polygons {
			if len(p) >= 3 {
				valid = true
			}
		}
	}
	return PropagationResult{Stages: stages, Valid: valid}
}

func buildPolygons(sectors []Sector, scene []surface.Surface, bounds geom.Rect, selfHitEps float64) [][]geom.Vector {
	var out [][]geom.Vector
	for _, s := range sectors {
		poly := BuildPolygon(s, scene, bounds, selfHitEps)
		if len(poly) >= 3 {
			out = append(out, poly)
		}
	}
	return out
}

// stageOpacity implements the documented linear ramp: 0.2 at the initial
// player-origin stage (k = -1) up to 1.0 at the last (N = n+1 total stages, so
// the ramp divides by n), or a flat 1.0 when there is no plan surface to
// ramp across at all.
func stageOpacity(k, n int) float64 {
	if n < 1 {
		return 1.0
	}
	return 0.2 + 0.8*float64(k+1)/float64(n)
}
