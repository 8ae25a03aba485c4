package visibility

import (
	"math"
	"sort"

	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/surface"
)

// BuildPolygon constructs the renderable polygon for one sector: it casts
// a direct ray plus two grazing rays at every candidate target (scene
// endpoints, screen corners, the sector's own boundary points, and its
// start_line endpoints if reflected), keeps the ones landing inside the
// sector, tags each resulting hit with its provenance, sorts the tagged
// hits counter-clockwise by angle from the origin, and runs them through
// the exact provenance-aware dedup before resolving final coordinates.
func BuildPolygon(sector Sector, scene []surface.Surface, bounds geom.Rect, selfHitEps float64) []geom.Vector {
	var hits []SourcePoint
	for _, candidate := range collectCandidates(sector, scene, bounds) {
		if !sector.Contains(candidate.point) {
			continue
		}
		for i, target := range grazingTargets(sector.Origin, candidate.point) {
			sp, ok := castRay(sector, target, scene, bounds, selfHitEps)
			if !ok {
				continue
			}
			// The direct (unoffset) ray that lands exactly on a declared
			// candidate is that candidate, not merely a computed hit.
			if i == 0 && candidate.source != nil && sp.ComputeXY().Equal(candidate.point) {
				sp = candidate.source
			}
			hits = append(hits, sp)
		}
	}

	sortSourcePointsCCWByAngle(sector.Origin, hits)
	deduped := DedupSourcePoints(hits)

	out := make([]geom.Vector, len(deduped))
	for i, p := range deduped {
		out[i] = p.ComputeXY()
	}
	return out
}

// taggedCandidate is a candidate ray target together with the declared
// SourcePoint it represents, if any (screen corners and sector boundary
// points carry no surface identity of their own, so source is nil).
type taggedCandidate struct {
	point  geom.Vector
	source SourcePoint
}

func collectCandidates(sector Sector, scene []surface.Surface, bounds geom.Rect) []taggedCandidate {
	var out []taggedCandidate
	for _, s := range scene {
		seg := s.Segment()
		out = append(out,
			taggedCandidate{seg.Start, Endpoint{Surface: s, Which: SegmentStart}},
			taggedCandidate{seg.End, Endpoint{Surface: s, Which: SegmentEnd}},
		)
	}
	corners := bounds.Corners()
	for _, c := range corners {
		out = append(out, taggedCandidate{point: c})
	}
	if !sector.IsFull() {
		out = append(out, taggedCandidate{point: sector.Right}, taggedCandidate{point: sector.Left})
	}
	if sector.StartLine != nil {
		out = append(out, taggedCandidate{point: sector.StartLine.Start}, taggedCandidate{point: sector.StartLine.End})
	}
	return out
}

// grazingTargets returns the direct target plus two points offset
// perpendicular to the origin->target direction by max(0.5, 0.1% of the
// distance), so a ray grazing an obstacle's corner resolves on both sides
// of it rather than only exactly along the corner.
func grazingTargets(origin, target geom.Vector) [3]geom.Vector {
	dir := target.Sub(origin)
	length := dir.Length()
	if length == 0 {
		return [3]geom.Vector{target, target, target}
	}
	offset := math.Max(0.5, 0.001*length)
	perp := dir.Normalize().Perp().Mul(offset)
	return [3]geom.Vector{target, target.Add(perp), target.Sub(perp)}
}

// castRay fires a ray from sector.Origin toward target and returns the
// first thing it hits in the scene or at the screen boundary, tagged as a
// HitPoint (HitSurface is nil for a screen-boundary hit). When the sector
// carries a start_line (it was produced by a reflection), the ray's
// minimum valid parameter is raised to the point where it crosses that
// line, so the polygon excludes the region behind the mirror.
func castRay(sector Sector, target geom.Vector, scene []surface.Surface, bounds geom.Rect, selfHitEps float64) (SourcePoint, bool) {
	origin := sector.Origin
	dir := target.Sub(origin)
	if dir.LengthSq() == 0 {
		return nil, false
	}
	ray := geom.NewRay(origin, dir)

	minT := selfHitEps
	if sector.StartLine != nil {
		if t, _, _, ok := ray.IntersectSegment(*sector.StartLine, -math.MaxFloat64); ok && t > minT {
			minT = t
		}
	}

	bestT := math.Inf(1)
	var bestS float64
	var bestSurface surface.Surface
	found := false
	for _, s := range scene {
		if t, s2, _, ok := ray.IntersectSegment(s.Segment(), minT); ok && t < bestT {
			bestT, bestS, bestSurface, found = t, s2, s, true
		}
	}
	if t, _, ok := ray.IntersectRect(bounds, minT); ok && (!found || t < bestT) {
		bestT, bestS, bestSurface, found = t, 0, nil, true
	}
	if !found {
		return nil, false
	}
	return HitPoint{Ray: ray, HitSurface: bestSurface, S: bestS, T: bestT}, true
}

func sortSourcePointsCCWByAngle(origin geom.Vector, pts []SourcePoint) {
	sort.Slice(pts, func(i, j int) bool {
		pi, pj := pts[i].ComputeXY(), pts[j].ComputeXY()
		ai := math.Atan2(pi.Y-origin.Y, pi.X-origin.X)
		aj := math.Atan2(pj.Y-origin.Y, pj.X-origin.X)
		return ai < aj
	})
}
