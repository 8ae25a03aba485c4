package ricochet

import "errors"

// ErrNilScreenBounds is returned by [Propagate] when the supplied
// [Config].ScreenBounds is a zero-area rect. Polygon construction needs a
// real boundary to fall back to once it runs out of obstacles to hit, so
// this is a host misconfiguration rather than a result to report inline.
var ErrNilScreenBounds = errors.New("ricochet: screen bounds must have non-zero area")
