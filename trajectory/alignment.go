package trajectory

import "github.com/arrowline/ricochet/geom"

// ComputeAlignment compares planned and actual segment by segment from
// their shared starting point, advancing both indices while consecutive
// segments start at the same place (within endpointTolerance) and point in
// close enough directions (dot product at least directionAlignmentThreshold).
//
// The first place they disagree becomes the divergence point: if the
// actual path's current segment runs through the planned endpoint (or vice
// versa), that shared point is used; otherwise divergence is reported at
// the segment's shared start.
func ComputeAlignment(planned PlannedPath, actual ActualPath, directionAlignmentThreshold, endpointTolerance float64) Alignment {
	pi, ai := 0, 0
	aligned := 0

	for pi < len(planned.Points)-1 && ai < len(actual.Points)-1 {
		pStart := planned.Points[pi]
		aStart := actual.Points[ai]
		if !pStart.Approx(aStart, endpointTolerance) {
			return divergence(aligned, pStart)
		}

		pEnd := planned.Points[pi+1]
		aEnd := actual.Points[ai+1]
		pDir := pEnd.Sub(pStart).Normalize()
		aDir := aEnd.Sub(aStart).Normalize()
		if pDir.Dot(aDir) < directionAlignmentThreshold {
			return divergence(aligned, pStart)
		}

		if pEnd.Approx(aEnd, endpointTolerance) {
			aligned++
			pi++
			ai++
			continue
		}

		if strictlyBetween(aStart, aEnd, pEnd, endpointTolerance) {
			return divergence(aligned, pEnd)
		}
		if strictlyBetween(pStart, pEnd, aEnd, endpointTolerance) {
			return divergence(aligned, aEnd)
		}
		return divergence(aligned, pStart)
	}

	fullyAligned := len(planned.Points) == len(actual.Points) &&
		pi == len(planned.Points)-1 &&
		ai == len(actual.Points)-1 &&
		actual.ReachedCursor

	return Alignment{FullyAligned: fullyAligned, AlignedSegmentCount: aligned, FirstMismatchIndex: aligned}
}

func divergence(alignedCount int, point geom.Vector) Alignment {
	p := point
	return Alignment{
		FullyAligned:        false,
		AlignedSegmentCount: alignedCount,
		FirstMismatchIndex:  alignedCount,
		DivergencePoint:     &p,
	}
}

// strictlyBetween reports whether p lies on the open segment (a, b),
// excluding both endpoints, within tol.
func strictlyBetween(a, b, p geom.Vector, tol float64) bool {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return false
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t <= 0 || t >= 1 {
		return false
	}
	proj := a.Add(ab.Mul(t))
	return proj.Approx(p, tol)
}
