package render

import (
	"testing"

	"github.com/arrowline/ricochet/bypass"
	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/surface"
	"github.com/arrowline/ricochet/trajectory"
	"github.com/arrowline/ricochet/visibility"
)

func segCount(segments []PathSegment, class SegmentClass) int {
	n := 0
	for _, s := range segments {
		if s.Class == class {
			n++
		}
	}
	return n
}

func TestBuildRenderPlan_FullyAlignedDirectShot(t *testing.T) {
	player := geom.V(100, 300)
	cursor := geom.V(400, 300)

	dt := trajectory.DualTrajectory{
		Planned:   trajectory.PlannedPath{Points: []geom.Vector{player, cursor}},
		Actual:    trajectory.ActualPath{Points: []geom.Vector{player, cursor}, ReachedCursor: true},
		Alignment: trajectory.Alignment{FullyAligned: true, AlignedSegmentCount: 1},
	}

	plan := BuildRenderPlan(dt, visibility.PropagationResult{})

	if len(plan.Segments) != 1 {
		t.Fatalf("Segments = %v, want exactly one", plan.Segments)
	}
	if plan.Segments[0].Class != Aligned {
		t.Errorf("Class = %v, want Aligned", plan.Segments[0].Class)
	}
	if plan.Segments[0].Start != player || plan.Segments[0].End != cursor {
		t.Errorf("segment = %+v, want player->cursor", plan.Segments[0])
	}
}

func TestBuildRenderPlan_DivergenceSplitsPlannedAndActual(t *testing.T) {
	player := geom.V(0, 0)
	mid := geom.V(100, 0)
	plannedEnd := geom.V(200, 100)
	actualEnd := geom.V(200, -100)

	dt := trajectory.DualTrajectory{
		Planned: trajectory.PlannedPath{Points: []geom.Vector{player, mid, plannedEnd}},
		Actual:  trajectory.ActualPath{Points: []geom.Vector{player, mid, actualEnd}},
		Alignment: trajectory.Alignment{
			FullyAligned:        false,
			AlignedSegmentCount: 1,
			FirstMismatchIndex:  1,
			DivergencePoint:     &mid,
		},
	}

	plan := BuildRenderPlan(dt, visibility.PropagationResult{})

	if got := segCount(plan.Segments, Aligned); got != 1 {
		t.Errorf("Aligned segments = %d, want 1", got)
	}
	if got := segCount(plan.Segments, PlannedOnly); got != 1 {
		t.Errorf("PlannedOnly segments = %d, want 1", got)
	}
	if got := segCount(plan.Segments, ActualOnly); got != 1 {
		t.Errorf("ActualOnly segments = %d, want 1", got)
	}

	for _, s := range plan.Segments {
		switch s.Class {
		case PlannedOnly:
			if s.Start != mid || s.End != plannedEnd {
				t.Errorf("PlannedOnly segment = %+v, want mid->plannedEnd", s)
			}
		case ActualOnly:
			if s.Start != mid || s.End != actualEnd {
				t.Errorf("ActualOnly segment = %+v, want mid->actualEnd", s)
			}
		}
	}
}

func TestBuildRenderPlan_GhostPointsBecomeDashedSegments(t *testing.T) {
	player := geom.V(0, 0)
	end := geom.V(100, 0)
	g1 := geom.V(150, 0)
	g2 := geom.V(200, 0)

	dt := trajectory.DualTrajectory{
		Planned: trajectory.PlannedPath{
			Points: []geom.Vector{player, end},
			Ghost: []trajectory.GhostPoint{
				{Position: g1, SurfaceID: "", WillStick: false},
				{Position: g2, SurfaceID: "wall", WillStick: true},
			},
		},
		Actual:    trajectory.ActualPath{Points: []geom.Vector{player, end}},
		Alignment: trajectory.Alignment{FullyAligned: true, AlignedSegmentCount: 1},
	}

	plan := BuildRenderPlan(dt, visibility.PropagationResult{})

	ghosts := make([]PathSegment, 0, 2)
	for _, s := range plan.Segments {
		if s.Class == Ghost {
			ghosts = append(ghosts, s)
		}
	}
	if len(ghosts) != 2 {
		t.Fatalf("ghost segments = %v, want 2", ghosts)
	}
	if ghosts[0].Start != end || ghosts[0].End != g1 {
		t.Errorf("first ghost segment = %+v, want end->g1", ghosts[0])
	}
	if ghosts[1].Start != g1 || ghosts[1].End != g2 {
		t.Errorf("second ghost segment = %+v, want g1->g2", ghosts[1])
	}
}

func TestBuildRenderPlan_FlattensStagePolygonsWithOpacity(t *testing.T) {
	poly := []geom.Vector{geom.V(0, 0), geom.V(10, 0), geom.V(10, 10)}
	pr := visibility.PropagationResult{
		Stages: []visibility.PropagationStage{
			{Polygons: [][]geom.Vector{poly}, Opacity: 1.0},
			{Polygons: [][]geom.Vector{poly, poly}, Opacity: 0.6},
		},
		Valid: true,
	}

	plan := BuildRenderPlan(trajectory.DualTrajectory{}, pr)

	if len(plan.Stages) != 3 {
		t.Fatalf("Stages = %v, want 3 flattened polygons", plan.Stages)
	}
	if plan.Stages[0].Opacity != 1.0 {
		t.Errorf("Stages[0].Opacity = %v, want 1.0", plan.Stages[0].Opacity)
	}
	if plan.Stages[1].Opacity != 0.6 || plan.Stages[2].Opacity != 0.6 {
		t.Errorf("Stages[1:] opacity = %v, %v, want 0.6 both", plan.Stages[1].Opacity, plan.Stages[2].Opacity)
	}
}

func TestBuildRenderPlan_RicochetBounceNoSpuriousDivergenceSegments(t *testing.T) {
	player := geom.V(100, 300)
	cursor := geom.V(100, 100)
	if _, err := surface.NewRicochet("s0", geom.V(200, 100), geom.V(200, 400)); err != nil {
		t.Fatal(err)
	}

	dt := trajectory.DualTrajectory{
		Planned: trajectory.PlannedPath{
			Points:    []geom.Vector{player, geom.V(200, 200), cursor},
			OnSegment: []bool{true},
		},
		Actual: trajectory.ActualPath{
			Points:        []geom.Vector{player, geom.V(200, 200), cursor},
			ReachedCursor: true,
		},
		Alignment: trajectory.Alignment{FullyAligned: true, AlignedSegmentCount: 2},
		Bypassed:  []bypass.Record{},
	}

	plan := BuildRenderPlan(dt, visibility.PropagationResult{})
	if got := segCount(plan.Segments, Aligned); got != 2 {
		t.Errorf("Aligned segments = %d, want 2", got)
	}
	if got := segCount(plan.Segments, PlannedOnly) + segCount(plan.Segments, ActualOnly); got != 0 {
		t.Errorf("expected no divergence segments for a fully aligned bounce, got %d", got)
	}
}
