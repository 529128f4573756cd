// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// impl_trace.go - implementation of Trace(from, to, step).
//
// Trace finds the shortest drawn route from → to (arc length of each edge's
// path, edges followed forward) and re-times it as one continuous stroke:
//   - the k-th edge of the route draws at start + k·step for clipLength
//     (default step) beats, replacing its earlier draw clips;
//   - the k-th node of the route gets an arrival clip (cfg.arrival) at
//     start + k·step, replacing earlier arrival clips of that action.
//
// Contract:
//   - step finite and > 0 (else ErrInvalidParameter).
//   - from and to must be in the draft (else ErrUnknownNode).
//   - to must be reachable from from (else ErrConstructFailed wrapping route.ErrNoPath).
//   - The draft must pass strict core.Define.
//
// Complexity: O(E·S + (V + E) log V + C).

package builder

import (
	"fmt"

	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/route"
)

// Trace returns a Constructor that draws the shortest route from → to.
func Trace(from, to string, step float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateFinite(MethodTrace, "step", step); err != nil {
			return err
		}
		if step <= 0 {
			return fmt.Errorf("%s: step=%g must be > 0: %w", MethodTrace, step, ErrInvalidParameter)
		}
		for _, id := range []string{from, to} {
			if !d.HasNode(id) {
				return fmt.Errorf("%s: node %q: %w", MethodTrace, id, ErrUnknownNode)
			}
		}

		def, err := core.Define(d.Input())
		if err != nil {
			return fmt.Errorf("%s: %w", MethodTrace, err)
		}
		res, err := route.Shortest(def, route.Source(from))
		if err != nil {
			return fmt.Errorf("%s: %w", MethodTrace, err)
		}
		nodes, edges, err := res.PathTo(to)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", MethodTrace, ErrConstructFailed, err)
		}

		onRoute := make(map[string]bool, len(nodes)+len(edges))
		for _, id := range nodes {
			onRoute["n:"+id] = true
		}
		for _, id := range edges {
			onRoute["e:"+id] = true
		}
		d.RemoveClips(func(c core.ClipInput) bool {
			switch c.TargetType {
			case core.TargetEdge:
				return onRoute["e:"+c.TargetID] && c.Action == core.ActionDraw
			case core.TargetNode:
				return onRoute["n:"+c.TargetID] && c.Action == cfg.arrival
			}
			return false
		})

		length := cfg.lengthOr(step)
		for k, id := range edges {
			d.AddClip(drawClip(id, cfg.startBeat+float64(k)*step, length))
		}
		for k, id := range nodes {
			d.AddClip(nodeClip(cfg.arrival, id, cfg.startBeat+float64(k)*step, arrivalLength))
		}

		return nil
	}
}
