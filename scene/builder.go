// Package scene provides a small fluent builder for assembling a
// []surface.Surface scene, the shape both ComputeDualTrajectory and
// Propagate take as their scene/plan arguments. It exists for tests and
// demos that would otherwise repeat the same NewWall/NewRicochet/err
// boilerplate at every call site.
package scene

import (
	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/surface"
)

// SceneBuilder accumulates surfaces and defers construction errors until
// Build, so a chain of Wall/Ricochet calls can read top to bottom without
// an error check after each one.
type SceneBuilder struct {
	surfaces []surface.Surface
	err      error
}

// NewSceneBuilder creates a builder with an empty scene.
func NewSceneBuilder() *SceneBuilder {
	return &SceneBuilder{}
}

// NewSceneBuilderFrom creates a builder seeded with an existing scene. The
// slice is copied, so appending to the builder never mutates the caller's.
func NewSceneBuilderFrom(surfaces []surface.Surface) *SceneBuilder {
	return &SceneBuilder{surfaces: append([]surface.Surface(nil), surfaces...)}
}

// Wall appends a non-reflective surface built from start/end. If
// construction fails (degenerate segment), the error is recorded and
// returned by Build; later chained calls become no-ops.
func (b *SceneBuilder) Wall(id string, start, end geom.Vector) *SceneBuilder {
	if b.err != nil {
		return b
	}
	s, err := surface.NewWall(id, start, end)
	if err != nil {
		b.err = err
		return b
	}
	b.surfaces = append(b.surfaces, s)
	return b
}

// Ricochet appends a reflective surface built from start/end. If
// construction fails (degenerate segment), the error is recorded and
// returned by Build; later chained calls become no-ops.
func (b *SceneBuilder) Ricochet(id string, start, end geom.Vector) *SceneBuilder {
	if b.err != nil {
		return b
	}
	s, err := surface.NewRicochet(id, start, end)
	if err != nil {
		b.err = err
		return b
	}
	b.surfaces = append(b.surfaces, s)
	return b
}

// Add appends an already-constructed surface directly, for callers with
// their own Surface implementation. A nil surface is ignored.
func (b *SceneBuilder) Add(s surface.Surface) *SceneBuilder {
	if b.err != nil || s == nil {
		return b
	}
	b.surfaces = append(b.surfaces, s)
	return b
}

// Build returns the accumulated surfaces, or the first construction error
// encountered along the chain.
func (b *SceneBuilder) Build() ([]surface.Surface, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.surfaces, nil
}

// Surfaces returns the surfaces accumulated so far, ignoring any pending
// error. Use Build when a construction failure should stop the caller.
func (b *SceneBuilder) Surfaces() []surface.Surface {
	return b.surfaces
}

// Err returns the first construction error encountered, or nil.
func (b *SceneBuilder) Err() error {
	return b.err
}

// Reset clears the builder's surfaces and any pending error for reuse.
func (b *SceneBuilder) Reset() *SceneBuilder {
	b.surfaces = nil
	b.err = nil
	return b
}
