// SPDX-License-Identifier: MIT

// Package sampler turns line-net edges into polylines for a renderer.
//
// A line segment contributes its endpoint only; quadratic and cubic segments
// contribute n points at t = i/n, i = 1..n, never t = 0, since that point is
// the previous segment's end. An edge polyline starts at its "from" node and
// follows every segment in order.
//
// PartialPoints truncates a polyline to a draw progress: progress 0 yields a
// two-point stroke at the first point, progress 1 the whole polyline, and in
// between the last point slides continuously along the path.
//
// Sampling is deterministic and total on validated input. Segments that
// failed the arity check in a lenient definition sample with their local
// start (first control) or end (second control) standing in for the missing
// points.
package sampler
