// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// impl_cascade.go - implementation of Cascade(root, step).
//
// Cascade rewrites the timeline of whatever is already in the draft so that
// drawing spreads outward from root in breadth-first order:
//   - every edge leaving a node at depth k draws at start + k·step for
//     clipLength (default step) beats, replacing any earlier draw clip;
//   - every reached node gets one arrival clip (cfg.arrival, default pulse)
//     at start + k·step, lasting 1 beat.
//
// Edges out of unreached nodes keep whatever clips they had.
//
// Contract:
//   - step finite and > 0 (else ErrInvalidParameter).
//   - root must be in the draft (else ErrUnknownNode).
//   - The draft must pass strict core.Define; errors are returned wrapped.
//
// Complexity: O(V + E + C) for C existing clips.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linenet/bfs"
	"github.com/katalvlaran/linenet/core"
)

const arrivalLength = 1.0

// Cascade returns a Constructor that times draw clips by BFS depth from root.
func Cascade(root string, step float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateFinite(MethodCascade, "step", step); err != nil {
			return err
		}
		if step <= 0 {
			return fmt.Errorf("%s: step=%g must be > 0: %w", MethodCascade, step, ErrInvalidParameter)
		}
		if !d.HasNode(root) {
			return fmt.Errorf("%s: root %q: %w", MethodCascade, root, ErrUnknownNode)
		}

		def, err := core.Define(d.Input())
		if err != nil {
			return fmt.Errorf("%s: %w", MethodCascade, err)
		}
		res, err := bfs.BFS(def, root)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodCascade, err)
		}

		redraw := make(map[string]float64, def.EdgeCount())
		for _, e := range def.Edges() {
			if k, ok := res.Depth[e.From()]; ok {
				redraw[e.ID()] = cfg.startBeat + float64(k)*step
			}
		}
		d.RemoveClips(func(c core.ClipInput) bool {
			switch c.TargetType {
			case core.TargetEdge:
				_, hit := redraw[c.TargetID]
				return hit && c.Action == core.ActionDraw
			case core.TargetNode:
				return res.Reached(c.TargetID) && c.Action == cfg.arrival
			}
			return false
		})

		length := cfg.lengthOr(step)
		for _, e := range def.Edges() {
			if beat, ok := redraw[e.ID()]; ok {
				d.AddClip(drawClip(e.ID(), beat, length))
			}
		}
		for _, id := range res.Order {
			beat := cfg.startBeat + float64(res.Depth[id])*step
			d.AddClip(nodeClip(cfg.arrival, id, beat, arrivalLength))
		}

		return nil
	}
}
