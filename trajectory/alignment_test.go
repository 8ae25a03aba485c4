package trajectory

import (
	"testing"

	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/surface"
)

func TestComputeAlignment_FullyAlignedDirect(t *testing.T) {
	player := geom.V(100, 300)
	cursor := geom.V(400, 300)
	planned := BuildPlannedPath(player, cursor, nil, nil, 1e-3, 50, 10_000)
	actual := TracePhysicalPath(player, cursor, planned, nil, nil, 1e-3, 50, 10_000)

	alignment := ComputeAlignment(planned, actual, 0.99, 1e-3)
	if !alignment.FullyAligned {
		t.Fatalf("alignment = %+v, want FullyAligned", alignment)
	}
	if alignment.AlignedSegmentCount != 1 {
		t.Errorf("AlignedSegmentCount = %d, want 1", alignment.AlignedSegmentCount)
	}
	if alignment.DivergencePoint != nil {
		t.Errorf("DivergencePoint = %v, want nil", alignment.DivergencePoint)
	}
}

func TestComputeAlignment_FullyAlignedWithBounce(t *testing.T) {
	player := geom.V(100, 300)
	cursor := geom.V(100, 100)
	s0 := mustRicochet(t, "s0", geom.V(200, 100), geom.V(200, 400))
	active := []surface.Surface{s0}

	planned := BuildPlannedPath(player, cursor, active, nil, 1e-3, 50, 10_000)
	actual := TracePhysicalPath(player, cursor, planned, active, active, 1e-3, 50, 10_000)

	alignment := ComputeAlignment(planned, actual, 0.99, 1e-3)
	if !alignment.FullyAligned {
		t.Fatalf("alignment = %+v, want FullyAligned", alignment)
	}
	if alignment.AlignedSegmentCount != 2 {
		t.Errorf("AlignedSegmentCount = %d, want 2", alignment.AlignedSegmentCount)
	}
}

func TestComputeAlignment_DivergesAtWall(t *testing.T) {
	player := geom.V(100, 300)
	cursor := geom.V(500, 300)
	wall, err := surface.NewWall("w0", geom.V(300, 200), geom.V(300, 400))
	if err != nil {
		t.Fatal(err)
	}
	scene := []surface.Surface{wall}

	planned := BuildPlannedPath(player, cursor, nil, scene, 1e-3, 50, 10_000)
	actual := TracePhysicalPath(player, cursor, planned, nil, scene, 1e-3, 50, 10_000)

	alignment := ComputeAlignment(planned, actual, 0.99, 1e-3)
	if alignment.FullyAligned {
		t.Fatal("expected alignment to fail when a wall blocks the direct path")
	}
	if alignment.DivergencePoint == nil {
		t.Fatal("expected a non-nil DivergencePoint")
	}
}
