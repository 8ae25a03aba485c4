package ricochet

import "github.com/arrowline/ricochet/geom"

// Option configures a [Config] via functional options.
//
// Example:
//
//	cfg := ricochet.DefaultConfig()
//	trajectory := ricochet.ComputeDualTrajectory(player, cursor, plan, scene,
//	    ricochet.WithMaxBounces(8),
//	    ricochet.WithScreenBounds(geom.NewRect(geom.V(0, 0), geom.V(1920, 1080))),
//	)
type Option func(*Config)

// Config holds every tunable threshold the bypass evaluator, ray-marcher
// and sector propagator consult. Callers that never construct a Config
// directly get [DefaultConfig]'s values; Option funcs layer overrides onto
// a copy.
type Config struct {
	// ExhaustionLimit is the cumulative path length, in scene units, past
	// which the bypass walk drops the remaining plan surfaces and the
	// physical ray-march and ghost paths stop and report exhaustion. The
	// sector propagation itself does not read it.
	ExhaustionLimit float64

	// MaxBounces caps the number of reflections a planned or physical path
	// may take before it is forced to terminate.
	MaxBounces int

	// ScreenBounds is the rectangle polygon construction falls back to when
	// no obstacle lies along a candidate ray. A zero-area Rect is invalid
	// input to [Propagate] (see [ErrNilScreenBounds]).
	ScreenBounds geom.Rect

	// SelfHitEpsilon is the minimum forward parameter t a ray-march
	// intersection must clear to avoid reporting a self-hit against the
	// surface the ray just left.
	SelfHitEpsilon float64

	// VisualDedupEpsilon is a display-time vertex merge distance. It is
	// stored here but no computation reads it: polygon construction dedups
	// only bit-identical vertices and keeps near-duplicates.
	VisualDedupEpsilon float64

	// DirectionAlignmentThreshold is the minimum dot product between two
	// unit directions for the planned and physical paths to be considered
	// aligned at a given bounce.
	DirectionAlignmentThreshold float64

	// EndpointTolerance is the distance within which a ray-march hit point
	// is considered coincident with a plan's declared endpoint.
	EndpointTolerance float64
}

// DefaultConfig returns the Config used when no options are supplied.
func DefaultConfig() Config {
	return Config{
		ExhaustionLimit:             10_000,
		MaxBounces:                  50,
		SelfHitEpsilon:              1e-3,
		VisualDedupEpsilon:          0.5,
		DirectionAlignmentThreshold: 0.99,
		EndpointTolerance:           1e-3,
	}
}

func buildConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithExhaustionLimit overrides the cumulative path-length cutoff.
func WithExhaustionLimit(limit float64) Option {
	return func(c *Config) { c.ExhaustionLimit = limit }
}

// WithMaxBounces overrides the maximum number of reflections.
func WithMaxBounces(n int) Option {
	return func(c *Config) { c.MaxBounces = n }
}

// WithScreenBounds sets the rectangle polygon construction falls back to.
func WithScreenBounds(r geom.Rect) Option {
	return func(c *Config) { c.ScreenBounds = r }
}

// WithSelfHitEpsilon overrides the ray-march self-hit rejection threshold.
func WithSelfHitEpsilon(eps float64) Option {
	return func(c *Config) { c.SelfHitEpsilon = eps }
}

// WithVisualDedupEpsilon overrides the display-time vertex merge distance
// (see [Config].VisualDedupEpsilon; no computation reads it).
func WithVisualDedupEpsilon(eps float64) Option {
	return func(c *Config) { c.VisualDedupEpsilon = eps }
}

// WithDirectionAlignmentThreshold overrides the minimum dot product for two
// directions to be considered aligned.
func WithDirectionAlignmentThreshold(threshold float64) Option {
	return func(c *Config) { c.DirectionAlignmentThreshold = threshold }
}
