// Package scene reads and writes line-net scene files.
//
// A scene file is the YAML or JSON rendering of core.DefinitionInput:
//
//	nodes:
//	  - {id: a, position: [0.1, 0.5]}
//	  - {id: b, position: [0.9, 0.5]}
//	edges:
//	  - id: a-b
//	    from: a
//	    to: b
//	    segments:
//	      - {kind: quadratic, to: [0.9, 0.5], controlPoints: [[0.5, 0.1]]}
//	timelines:
//	  - {id: draw-a-b, targetType: edge, targetId: a-b, action: draw, beat: 0, length: 2}
//	meta:
//	  loopBeats: 4
//
// The format is picked by file extension (.yaml, .yml, .json) through a
// registry of Codecs; callers may register their own. Unknown fields are
// rejected so that typos surface before validation.
package scene
