// Package route finds cheapest node-to-node routes through a line-net
// definition.
//
// Shortest runs Dijkstra from one source over the definition's edges,
// followed from→to (or both ways with WithUndirected). The cost of an edge
// is its drawn arc length by default: the polyline sampled from its path
// commands, in normalized scene units. Hops counts edges instead, and any
// CostFunc may be supplied.
//
// Costs must be non-negative; +Inf marks an edge as impassable. Edges with
// an undefined endpoint (lenient definitions) are skipped.
//
// Complexity:
//
//   - Time:  O(E·S + (V + E) log V), S = samples per curved segment.
//   - Space: O(V + E).
//
// Example:
//
//	res, err := route.Shortest(def, route.Source("origin"))
//	if err != nil {
//		return err
//	}
//	nodes, edges, err := res.PathTo("uplink")
package route
