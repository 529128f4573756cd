// Package dfs runs depth-first searches over the directed edges of a
// line-net definition.
//
// What it provides:
//   - DFS: single-source or forest traversal with pre-/post-order hooks,
//     depth limit, neighbor filter and cancellation.
//   - TopologicalSort: a node order in which every edge runs forward, used
//     to lay out draw orders; fails with ErrCycleDetected on feedback loops.
//   - DetectCycles: the cycles closed by back edges, each in canonical
//     rotation, sorted for stable output.
//
// Edges follow definition order; an edge whose endpoint is not a node is
// ignored, so lenient definitions can be inspected too.
//
// Complexity: O(V + E) for DFS and TopologicalSort; DetectCycles adds O(C·L)
// for C cycles of average length L.
package dfs
