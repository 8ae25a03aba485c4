package scene

import (
	"testing"

	"github.com/arrowline/ricochet/geom"
)

func TestNewSceneBuilder(t *testing.T) {
	builder := NewSceneBuilder()

	if builder == nil {
		t.Fatal("NewSceneBuilder() returned nil")
	}
	if len(builder.Surfaces()) != 0 {
		t.Error("new builder should have an empty scene")
	}
	if builder.Err() != nil {
		t.Errorf("new builder should have no pending error, got %v", builder.Err())
	}
}

func TestNewSceneBuilderFrom(t *testing.T) {
	builder := NewSceneBuilderFrom(nil)
	if len(builder.Surfaces()) != 0 {
		t.Error("NewSceneBuilderFrom(nil) should start empty")
	}

	seed, err := NewSceneBuilder().Wall("w0", geom.V(0, 0), geom.V(10, 0)).Build()
	if err != nil {
		t.Fatalf("seed build: %v", err)
	}
	builder = NewSceneBuilderFrom(seed)
	if len(builder.Surfaces()) != 1 {
		t.Fatalf("Surfaces() = %v, want the seeded wall", builder.Surfaces())
	}

	// mutating the new builder must not mutate the caller's seed slice
	builder.Wall("w1", geom.V(0, 10), geom.V(10, 10))
	if len(seed) != 1 {
		t.Errorf("seed mutated: %v", seed)
	}
}

func TestSceneBuilderWallAndRicochet(t *testing.T) {
	surfaces, err := NewSceneBuilder().
		Wall("wall", geom.V(0, 0), geom.V(100, 0)).
		Ricochet("mirror", geom.V(100, 0), geom.V(100, 100)).
		Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if len(surfaces) != 2 {
		t.Fatalf("surfaces = %v, want 2", surfaces)
	}
	if surfaces[0].ID() != "wall" || surfaces[1].ID() != "mirror" {
		t.Errorf("surfaces = %v, want [wall, mirror] in order", surfaces)
	}
	if surfaces[0].Plannable() {
		t.Error("wall should not be plannable")
	}
	if !surfaces[1].Plannable() {
		t.Error("ricochet should be plannable")
	}
}

func TestSceneBuilderDegenerateSegmentStopsChain(t *testing.T) {
	builder := NewSceneBuilder().
		Wall("bad", geom.V(5, 5), geom.V(5, 5)).
		Wall("never-added", geom.V(0, 0), geom.V(1, 1))

	if builder.Err() == nil {
		t.Fatal("expected a pending error from the degenerate wall")
	}
	if len(builder.Surfaces()) != 0 {
		t.Errorf("surfaces = %v, want none added once an error is pending", builder.Surfaces())
	}

	_, err := builder.Build()
	if err == nil {
		t.Fatal("Build() should surface the recorded error")
	}
}

func TestSceneBuilderAddNilIgnored(t *testing.T) {
	builder := NewSceneBuilder().Add(nil)
	if len(builder.Surfaces()) != 0 {
		t.Error("Add(nil) should not add a surface")
	}
}

func TestSceneBuilderReset(t *testing.T) {
	builder := NewSceneBuilder().Wall("w0", geom.V(0, 0), geom.V(10, 0))
	if len(builder.Surfaces()) != 1 {
		t.Fatal("setup: expected one surface before reset")
	}

	result := builder.Reset()
	if result != builder {
		t.Error("Reset() should return the same builder")
	}
	if len(builder.Surfaces()) != 0 {
		t.Error("surfaces should be empty after Reset")
	}
	if builder.Err() != nil {
		t.Error("pending error should be cleared after Reset")
	}
}

func TestSceneBuilderFluentChaining(t *testing.T) {
	surfaces, err := NewSceneBuilder().
		Wall("floor", geom.V(0, 600), geom.V(800, 600)).
		Wall("ceiling", geom.V(0, 0), geom.V(800, 0)).
		Ricochet("mirror-left", geom.V(0, 0), geom.V(0, 600)).
		Ricochet("mirror-right", geom.V(800, 0), geom.V(800, 600)).
		Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if len(surfaces) != 4 {
		t.Fatalf("surfaces = %v, want 4", surfaces)
	}
}
