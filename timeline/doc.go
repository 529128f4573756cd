// SPDX-License-Identifier: MIT

// Package timeline evaluates the beat-based animation state of a
// core.Definition.
//
// Beats are real-valued, loopable time units. An external clock (see Clock)
// converts wall time to beats; callers usually wrap that value into the
// scene's loop with WrapBeat and then ask an Evaluator for the frame state:
//
//   - edge draw progress in [0,1] from the edge's first "draw" clip
//     (no draw clip means fully drawn),
//   - edge activity from any other clip whose window contains the beat,
//   - node intensity in [0,1.4], the maximum of latching "highlight" clips
//     and half-sine "pulse" clips.
//
// Every function here is pure: same (definition, beat) in, same state out.
// The clip Index is derived once per definition and kept next to it, never
// inside it.
package timeline
