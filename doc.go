// Package bspline provides evaluation and refinement routines for
// B-spline and rational B-spline (NURBS) curves in 3D space. It was
// designed to serve the curve-math needs of drawing-interchange
// tooling, but it is intended to be general enough to be useful for
// other applications.
//
// # Features
//
// We provide the following notable features:
//
//   - Point and derivative evaluation of B-spline and NURBS curves (see
//     [BSpline.Point] and [BSpline.Derivative])
//   - Knot-vector construction, normalization, and span search (see
//     [KnotVector])
//   - Basis-function and derivative-basis computation (see [Basis])
//   - Shape-preserving knot insertion (see [BSpline.InsertKnot])
//   - Conversion of a B-spline into piecewise Bézier segments (see
//     [BSpline.BezierDecomposition])
//   - Cubic Bézier approximation, fixed-count or adaptive (see
//     [BSpline.CubicBezierApproximation] and
//     [BSpline.AdaptiveCubicBezierApproximation])
//   - Global curve interpolation through fit points (see
//     [BSplineFromFitPoints])
//   - Affine transformations (see [Affine])
//
// # Curves
//
// [BSpline] is the single curve type. Rational behavior is a capability
// toggle: a curve constructed with per-point weights evaluates in
// homogeneous coordinates and divides through by the weight sum, while a
// curve without weights takes the cheaper polynomial path. Knot vectors
// are normalized to the unit interval on construction, so a clamped
// curve's parameter domain is [0, 1].
//
// Curves are immutable. Evaluation never writes to shared state, and
// every refinement (knot insertion, Bézier decomposition, approximation)
// returns a new value, so concurrent readers are never invalidated by a
// concurrent refinement.
//
// # Errors
//
// Malformed input surfaces as one of four error types at the call
// boundary: [ValidationError] for malformed knot vectors,
// [ConfigurationError] for invalid curve definitions or operation
// parameters, [DomainError] for out-of-domain evaluation parameters, and
// [DegeneracyError] for numerically degenerate input such as a vanishing
// rational denominator. All functions are pure and deterministic; errors
// propagate directly to the caller.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [The NURBS Book] by Piegl and Tiller (basis functions, derivative
//     bases, rational derivatives)
//   - [An Introduction to B-Spline Curves] by Thomas W. Sederberg
//     (Boehm's knot insertion, Bézier extraction)
//   - [A Primer on Bézier Curves]
//
// [The NURBS Book]: https://doi.org/10.1007/978-3-642-59223-2
// [An Introduction to B-Spline Curves]: https://people.engr.tamu.edu/schaefer/teaching/689_Spring2023/notes.pdf
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package bspline
