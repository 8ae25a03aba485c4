package trajectory

import (
	"testing"

	"github.com/arrowline/ricochet/bypass"
	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/surface"
)

func TestBuildDualTrajectory_DirectLineReachable(t *testing.T) {
	player := geom.V(100, 300)
	cursor := geom.V(400, 300)

	dt := BuildDualTrajectory(player, cursor, nil, nil, 1e-3, 50, 10_000, 0.99, 1e-3)
	if !dt.CursorReachable {
		t.Fatalf("dt = %+v, want CursorReachable", dt)
	}
	if len(dt.Bypassed) != 0 {
		t.Errorf("Bypassed = %v, want empty", dt.Bypassed)
	}
}

func TestBuildDualTrajectory_OnSegmentBounceReachable(t *testing.T) {
	player := geom.V(100, 300)
	cursor := geom.V(100, 100)
	s0 := mustRicochet(t, "s0", geom.V(200, 100), geom.V(200, 400))
	plan := []surface.Surface{s0}

	dt := BuildDualTrajectory(player, cursor, plan, plan, 1e-3, 50, 10_000, 0.99, 1e-3)
	if !dt.CursorReachable {
		t.Fatalf("dt = %+v, want CursorReachable", dt)
	}
	if len(dt.Bypassed) != 0 {
		t.Errorf("Bypassed = %v, want empty", dt.Bypassed)
	}
}

func TestBuildDualTrajectory_CursorWrongSideBypassesAndDiverges(t *testing.T) {
	player := geom.V(100, 300)
	cursor := geom.V(300, 300)
	s0 := mustRicochet(t, "s0", geom.V(200, 100), geom.V(200, 400))
	plan := []surface.Surface{s0}

	dt := BuildDualTrajectory(player, cursor, plan, plan, 1e-3, 50, 10_000, 0.99, 1e-3)
	if dt.CursorReachable {
		t.Fatal("expected CursorReachable = false when the cursor sits on the surface's non-reflective side")
	}
	if len(dt.Bypassed) != 1 || dt.Bypassed[0].Reason != bypass.CursorWrongSide {
		t.Errorf("Bypassed = %v, want one CursorWrongSide record", dt.Bypassed)
	}
}
