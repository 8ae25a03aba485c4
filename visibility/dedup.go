package visibility

// DedupSourcePoints implements the provenance-aware vertex cleanup all
// propagation output passes through before reaching the renderer:
//
//  1. Exact-equality dedup: drop a vertex whose coordinates are bit-
//     identical to the immediately preceding one.
//  2. Consecutive-hit collapse: within a run of vertices that share the
//     same non-empty surface identity (Endpoint, JunctionPoint, HitPoint
//     all keyed by their surface's id), keep only the first and the last.
//     An OriginPoint, or a change of surface identity, breaks the run.
//
// Near-duplicate vertices with different provenance (a computed HitPoint
// a fraction of a pixel from a declared Endpoint) are never merged here:
// they carry different geometric meaning and both survive into the
// returned polygon.
func DedupSourcePoints(points []SourcePoint) []SourcePoint {
	exact := make([]SourcePoint, 0, len(points))
	for i, p := range points {
		if i > 0 && p.ComputeXY().Equal(exact[len(exact)-1].ComputeXY()) {
			continue
		}
		exact = append(exact, p)
	}
	if len(exact) == 0 {
		return exact
	}

	out := make([]SourcePoint, 0, len(exact))
	i := 0
	for i < len(exact) {
		id := surfaceIdentity(exact[i])
		j := i
		for j+1 < len(exact) && surfaceIdentity(exact[j+1]) == id && id != "" {
			j++
		}
		out = append(out, exact[i])
		if j > i {
			out = append(out, exact[j])
		}
		i = j + 1
	}
	return out
}
