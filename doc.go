// Package linenet describes animated line networks: nodes on a normalized
// 0–1 canvas, edges drawn as chains of line and Bézier segments, and beat
// timelines that animate them in time with music.
//
// A scene is plain data (core.DefinitionInput) until core.Define validates
// and freezes it. Everything else reads the frozen *core.Definition:
//
//	geom/: coordinates, Bézier evaluation, viewport projection
//	core/: scene model, validation issues, Define (strict or lenient)
//	timeline/: clip index, per-beat edge progress and node intensity, loops, BPM clock
//	sampler/: polylines per edge, partial strokes for a frame, line widths
//	builder/: procedural scenes (grids, skylines, cascades, presets)
//	scene/: YAML/JSON codecs and file loading
//	bfs/, dfs/: traversal, topological order, cycle detection
//	route/: shortest drawn routes (Dijkstra over arc length)
//	cmd/linenet: validate, frames, points, export, route
//
// Quick start:
//
//	def, err := builder.SynthwaveNetwork()
//	if err != nil {
//		log.Fatal(err)
//	}
//	ev, _ := timeline.New(def)
//	frame := ev.EvaluateLooped(6.5)
//	strokes, _ := sampler.New(def, sampler.WithViewport(1920, 1080))
//	for _, s := range strokes.Strokes(frame) {
//		fmt.Println(s.EdgeID, len(s.Points))
//	}
//
// Definitions are immutable and safe for concurrent readers.
package linenet
