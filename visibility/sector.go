package visibility

import (
	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/surface"
)

// CreateFromSurface builds the sector subtended by a surface as seen from
// origin: its boundary points are the surface's endpoints, ordered so that
// Right -> Left sweeps counter-clockwise across the surface.
func CreateFromSurface(origin geom.Vector, surf surface.Surface) Sector {
	seg := surf.Segment()
	if geom.CrossFrom(origin, seg.Start, seg.End) >= 0 {
		return Sector{Origin: origin, Right: seg.Start, Left: seg.End}
	}
	return Sector{Origin: origin, Right: seg.End, Left: seg.Start}
}

// Contains reports whether p lies within the sector's angular range. A
// full sector contains every point.
func (s Sector) Contains(p geom.Vector) bool {
	if s.IsFull() {
		return true
	}
	sectorCross := geom.CrossFrom(s.Origin, s.Right, s.Left)
	cr := geom.CrossFrom(s.Origin, s.Right, p)
	cl := geom.CrossFrom(s.Origin, s.Left, p)
	if sectorCross >= 0 {
		return cr >= 0 && cl <= 0
	}
	return cr >= 0 || cl <= 0
}

// Intersect restricts s to the portion also covered by other, both sectors
// sharing the same Origin. The more restrictive of the two Right boundaries
// and the more restrictive of the two Left boundaries survive. ok is false
// when the resulting range is empty (the boundaries cross the wrong way).
//
// s's StartLine, if any, is preserved on the result: intersect always
// trims a sector already carrying provenance from a prior reflection
// against a freshly built, start_line-free window sector.
func (s Sector) Intersect(other Sector) (Sector, bool) {
	if s.IsFull() {
		result := other
		result.StartLine = s.StartLine
		return result, true
	}
	if other.IsFull() {
		return s, true
	}

	newRight := other.Right
	if other.Contains(s.Right) {
		newRight = s.Right
	}
	newLeft := other.Left
	if other.Contains(s.Left) {
		newLeft = s.Left
	}

	if newRight.Equal(newLeft) {
		return Sector{Origin: s.Origin, Right: newRight, Left: newLeft, StartLine: s.StartLine}, true
	}
	if geom.CrossFrom(s.Origin, newRight, newLeft) < 0 {
		return Sector{}, false
	}
	return Sector{Origin: s.Origin, Right: newRight, Left: newLeft, StartLine: s.StartLine}, true
}

// Reflect mirrors the sector's origin and both boundaries through surf's
// infinite line, swapping Right and Left since reflection reverses
// orientation, and records surf's segment as the new StartLine.
//
// Applying Reflect twice with the same surf returns the original sector
// exactly: point reflection is its own inverse and two swaps is identity.
func (s Sector) Reflect(surf surface.Surface) Sector {
	seg := surf.Segment()
	origin, _ := geom.ReflectPoint(s.Origin, seg.Start, seg.End)
	if s.IsFull() {
		p, _ := geom.ReflectPoint(s.Left, seg.Start, seg.End)
		return Sector{Origin: origin, Right: p, Left: p, StartLine: &seg}
	}
	right, _ := geom.ReflectPoint(s.Right, seg.Start, seg.End)
	left, _ := geom.ReflectPoint(s.Left, seg.Start, seg.End)
	return Sector{Origin: origin, Right: left, Left: right, StartLine: &seg}
}

// BlockBy removes the portion of sector shadowed by obstacle as seen from
// sector.Origin, returning the surviving sub-sector(s) in CCW order. The
// obstacle is assumed nearer than whatever the sector is aimed at, so its
// full angular width is opaque.
//
//   - Neither of the obstacle's angular boundaries falls inside sector:
//     either the obstacle doesn't overlap sector at all (unchanged, one
//     sector back), or it spans wider than sector on both sides (fully
//     blocked, none back).
//   - Exactly one boundary falls inside sector: the obstacle eclipses one
//     side, one trimmed sector survives.
//   - Both boundaries fall inside sector: the obstacle sits entirely
//     within the sector's span, splitting it into two.
func BlockBy(sector Sector, obstacle surface.Surface) []Sector {
	obSector := CreateFromSurface(sector.Origin, obstacle)
	rightIn := sector.Contains(obSector.Right)
	leftIn := sector.Contains(obSector.Left)

	switch {
	case rightIn && leftIn:
		var out []Sector
		s1 := Sector{Origin: sector.Origin, Right: sector.Right, Left: obSector.Right, StartLine: sector.StartLine}
		if !s1.Right.Equal(s1.Left) {
			out = append(out, s1)
		}
		s2 := Sector{Origin: sector.Origin, Right: obSector.Left, Left: sector.Left, StartLine: sector.StartLine}
		if !s2.Right.Equal(s2.Left) {
			out = append(out, s2)
		}
		return out
	case rightIn:
		s := Sector{Origin: sector.Origin, Right: sector.Right, Left: obSector.Right, StartLine: sector.StartLine}
		if s.Right.Equal(s.Left) {
			return nil
		}
		return []Sector{s}
	case leftIn:
		s := Sector{Origin: sector.Origin, Right: obSector.Left, Left: sector.Left, StartLine: sector.StartLine}
		if s.Right.Equal(s.Left) {
			return nil
		}
		return []Sector{s}
	default:
		if !sector.IsFull() && obSector.Contains(sector.Right) && obSector.Contains(sector.Left) {
			return nil
		}
		return []Sector{sector}
	}
}

// Merge collapses adjacent sectors sharing the same Origin whose boundaries
// meet exactly (one's Left equals another's Right) into a single sector
// spanning both, repeating until no further merge applies.
func Merge(sectors []Sector) []Sector {
	merged := append([]Sector(nil), sectors...)

	for {
		mergedAny := false
		for i := 0; i < len(merged) && !mergedAny; i++ {
			for j := 0; j < len(merged); j++ {
				if i == j {
					continue
				}
				if merged[i].Left.Equal(merged[j].Right) {
					combined := Sector{
						Origin:    merged[i].Origin,
						Right:     merged[i].Right,
						Left:      merged[j].Left,
						StartLine: merged[i].StartLine,
					}
					merged = removeIndices(merged, i, j)
					merged = append(merged, combined)
					mergedAny = true
					break
				}
			}
		}
		if !mergedAny {
			break
		}
	}
	return merged
}

func removeIndices(sectors []Sector, a, b int) []Sector {
	out := make([]Sector, 0, len(sectors)-2)
	for i, s := range sectors {
		if i == a || i == b {
			continue
		}
		out = append(out, s)
	}
	return out
}
