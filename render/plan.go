package render

import (
	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/trajectory"
	"github.com/arrowline/ricochet/visibility"
)

// SegmentClass is the color binding a host renderer applies to one piece
// of the drawn path. These bindings are part of the public contract:
// downstream visual tests assert them directly.
type SegmentClass int

const (
	// Aligned is drawn green: the actual path matches the plan here.
	Aligned SegmentClass = iota
	// PlannedOnly is drawn red: the idealized plan continues past the
	// point where the actual path diverged from it.
	PlannedOnly
	// ActualOnly is drawn yellow: the physical path continues past the
	// point where it diverged from the plan.
	ActualOnly
	// Ghost is drawn dashed: the continuation of a path past its terminal
	// point, projected until a non-reflective hit or exhaustion.
	Ghost
)

func (c SegmentClass) String() string {
	switch c {
	case Aligned:
		return "Aligned"
	case PlannedOnly:
		return "PlannedOnly"
	case ActualOnly:
		return "ActualOnly"
	case Ghost:
		return "Ghost"
	default:
		return "Unknown"
	}
}

// PathSegment is one drawable piece of the planned or actual path.
type PathSegment struct {
	Start, End geom.Vector
	Class      SegmentClass
}

// StagePolygon is one visibility stage's renderable shape together with
// the opacity it should be drawn at.
type StagePolygon struct {
	Vertices []geom.Vector
	Opacity  float64
}

// RenderPlan is everything a host renderer needs: the classified path
// segments and the stage polygons, already dedup'd and ordered.
type RenderPlan struct {
	Segments []PathSegment
	Stages   []StagePolygon
}

// BuildRenderPlan classifies every segment of dt's planned and actual
// paths (green up through the aligned prefix, red/yellow for whatever
// continues past the divergence point on either side, dashed for both
// paths' ghost continuations) and flattens pr's stage polygons alongside
// their opacity.
func BuildRenderPlan(dt trajectory.DualTrajectory, pr visibility.PropagationResult) RenderPlan {
	var segments []PathSegment

	aligned := dt.Alignment.AlignedSegmentCount
	segments = append(segments, classify(dt.Planned.Points, 0, aligned, Aligned)...)
	segments = append(segments, classify(dt.Planned.Points, aligned, len(dt.Planned.Points)-1, PlannedOnly)...)
	segments = append(segments, classify(dt.Actual.Points, aligned, len(dt.Actual.Points)-1, ActualOnly)...)

	segments = append(segments, ghostSegments(lastPoint(dt.Planned.Points), dt.Planned.Ghost)...)
	segments = append(segments, ghostSegments(lastPoint(dt.Actual.Points), dt.Actual.Ghost)...)

	var stages []StagePolygon
	for _, stage := range pr.Stages {
		for _, poly := range stage.Polygons {
			stages = append(stages, StagePolygon{Vertices: poly, Opacity: stage.Opacity})
		}
	}

	return RenderPlan{Segments: segments, Stages: stages}
}

func classify(points []geom.Vector, from, to int, class SegmentClass) []PathSegment {
	var out []PathSegment
	for i := from; i < to && i+1 < len(points); i++ {
		out = append(out, PathSegment{Start: points[i], End: points[i+1], Class: class})
	}
	return out
}

func ghostSegments(from geom.Vector, ghost []trajectory.GhostPoint) []PathSegment {
	if len(ghost) == 0 {
		return nil
	}
	out := make([]PathSegment, 0, len(ghost))
	prev := from
	for _, g := range ghost {
		out = append(out, PathSegment{Start: prev, End: g.Position, Class: Ghost})
		prev = g.Position
	}
	return out
}

func lastPoint(points []geom.Vector) geom.Vector {
	if len(points) == 0 {
		return geom.Vector{}
	}
	return points[len(points)-1]
}
