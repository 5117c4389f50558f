// Package billiards computes the trajectories of point-like billiard balls
// moving inside a closed planar boundary.
//
// The boundary, a [Table], is either a polygon or a smooth composite Bézier
// curve fitted to a polygon with [FitPolygon]. Two reflection laws are
// supported: classical [Euclidean] billiards, where the angle of reflection
// equals the angle of incidence, and [Symplectic] billiards, where the next
// impact point is constructed from the two previous ones.
//
// # Engines, balls and simulations
//
// An [Engine] is the reflection state machine of a single ball. It knows the
// chord the ball currently travels along and, with every call to
// [Engine.Step], moves the ball to its next impact point. Steps that can't
// find an impact point stall: they report a [StallReason] and leave the
// engine unchanged.
//
// A [Ball] wraps an engine with a bounded [History] of impact points and
// supports animating the ball along its chord, or along a circular arc (see
// [CircleArc]). A [Simulation] holds several balls sharing a table.
//
// Tables are immutable and may be shared between goroutines. Engines and
// balls are independent of each other and may be stepped concurrently, as
// long as each one is only used by a single goroutine at a time.
//
// # Geometry
//
// All floating-point comparisons use the relative tolerance described by
// [ApproxEqual]. Queries on degenerate input, such as polygons with fewer
// than three vertices or parallel lines, report their failure with sentinel
// values (false, -1, nil or [Outside]) instead of errors or panics.
//
// Bézier segments of any order up to [MaxOrder] are supported. Their
// intersections with lines and their closest points are computed by finding
// the roots of polynomials in the monomial basis, using [CubicRoots] for
// cubic polynomials and [PolynomialRoots] for everything else.
//
// # Logging
//
// The package logs diagnostics, such as stalled steps, to the logger set
// with [SetLogger]. By default, nothing is logged.
package billiards
