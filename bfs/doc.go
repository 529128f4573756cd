// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over the nodes and edges of a
// core.Definition, returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a root node.
//   - Edges are followed from "from" to "to"; WithUndirected follows both ways.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  node → hops from the root
//   - Parent: node → predecessor in the BFS tree
//   - Via:    node → id of the edge that discovered it
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithFilterNeighbor prunes single hops; WithMaxDepth bounds the search.
//
// Why
//
//	Cascade timelines start each edge's draw clip at the hop depth of its
//	"from" node, so a scene lights up outward from a root.
//
// Determinism
//
//	Neighbors are taken in definition edge order, so the visit sequence is
//	reproducible for a given definition.
//
// Lenient definitions
//
//	Edges whose endpoints are not defined nodes are skipped.
//
// Complexity (N = nodes, E = edges)
//
//   - Time:   O(N + E)
//   - Memory: O(N + E) for the adjacency list, queue, and result maps
//
// Errors
//
//   - ErrDefinitionNil       if the definition pointer is nil.
//   - ErrStartNodeNotFound   if the root is not a node of the definition.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped errors returned by OnVisit, and ctx.Err() on cancellation.
package bfs
