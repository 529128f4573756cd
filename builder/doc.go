// Package builder generates line-net scenes procedurally.
//
// A scene is assembled by running Constructors against a Draft and handing the
// result to core.Define:
//
//	def, err := builder.BuildDefinition(nil,
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Constellation(12, 0.2),
//	    builder.Cascade("0", 0.5),
//	)
//
// Constructors:
//   - Path, Cycle, Star, Grid: fixed layouts with staggered draw clips.
//   - Constellation: random nodes and Erdős–Rényi links (needs an RNG).
//   - PerspectiveGrid: synthwave ground plane with harmonic rows under a
//     golden-ratio horizon and rays to a central vanishing point.
//   - Skyline: stepped city silhouettes sitting on the horizon.
//   - Cascade: retimes existing draw clips by BFS depth from a root.
//   - Trace: retimes the shortest drawn route between two nodes as one stroke.
//   - SpanningLinks: joins every node with the shortest straight links (Kruskal).
//   - Meta: sets a definition metadata entry.
//
// Presets: SynthwaveNetwork, InitiationGrid, SynthwaveHorizon.
//
// Options (BuilderOption) set ids, RNG, weights, timing and layout margin.
// Option constructors panic on meaningless arguments; constructors return
// sentinel errors (ErrTooFewNodes, ErrInvalidProbability, ErrNeedRandSource,
// ErrInvalidParameter, ErrDuplicateID, ErrUnknownNode, ErrConstructFailed).
//
// Determinism: the same options, seed and constructor order always produce
// the same definition.
package builder
