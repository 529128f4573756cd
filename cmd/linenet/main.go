// Command linenet inspects line-net scenes.
//
//	linenet validate scene.yaml          # summary, non-zero exit on invalid input
//	linenet frames -preset synthwave     # one JSON frame per beat step
//	linenet points -beat 3 -width 1920 -height 1080 scene.json
//	linenet export -preset horizon -format json
//	linenet route -preset synthwave -source origin -target horizon
//
// Flags fall back to LINENET_SCENE, LINENET_PRESET, LINENET_BPM,
// LINENET_SAMPLES, LINENET_LENIENT and LINENET_DEBUG.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/linenet/builder"
	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/dfs"
	"github.com/katalvlaran/linenet/route"
	"github.com/katalvlaran/linenet/sampler"
	"github.com/katalvlaran/linenet/scene"
	"github.com/katalvlaran/linenet/timeline"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, newLogger))
}

// newLogger returns a production logger, or a development one when debug is set.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func run(args []string, stdout, stderr io.Writer, mkLogger func(bool) (*zap.Logger, error)) int {
	cfg, err := LoadConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "linenet:", err)
		return 2
	}

	logger, err := mkLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintln(stderr, "linenet: logger:", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	a := &app{cfg: cfg, log: logger.Named("linenet"), out: stdout}
	if err = a.run(); err != nil {
		a.log.Error("command failed", zap.String("command", cfg.Command), zap.Error(err))
		fmt.Fprintln(stderr, "linenet:", err)
		return 1
	}

	return 0
}

type app struct {
	cfg Config
	log *zap.Logger
	out io.Writer
}

func (a *app) run() error {
	def, err := a.load()
	if err != nil {
		return err
	}

	switch a.cfg.Command {
	case cmdValidate:
		return a.validate(def)
	case cmdFrames:
		return a.frames(def)
	case cmdPoints:
		return a.points(def)
	case cmdExport:
		return scene.Write(a.out, def.Input(), scene.Format(a.cfg.Format))
	case cmdRoute:
		return a.route(def)
	}

	return fmt.Errorf("unknown command %q", a.cfg.Command)
}

// load resolves the scene source and validates it.
func (a *app) load() (*core.Definition, error) {
	in, source, err := a.input()
	if err != nil {
		return nil, err
	}
	def, err := core.Define(in, core.WithStrict(!a.cfg.Lenient), core.WithLogger(a.log))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	a.log.Debug("scene loaded",
		zap.String("source", source),
		zap.Int("nodes", def.NodeCount()),
		zap.Int("edges", def.EdgeCount()),
		zap.Int("clips", def.ClipCount()),
	)

	return def, nil
}

func (a *app) input() (core.DefinitionInput, string, error) {
	if a.cfg.Preset == "" {
		in, err := scene.LoadFile(a.cfg.Scene)
		return in, a.cfg.Scene, err
	}

	var opts []builder.BuilderOption
	if a.cfg.Seed != 0 {
		opts = append(opts, builder.WithSeed(a.cfg.Seed))
	}
	source := "preset " + a.cfg.Preset

	var (
		def *core.Definition
		err error
	)
	switch a.cfg.Preset {
	case presetSynthwave:
		return builder.SynthwaveNetworkInput(), source, nil
	case presetInitiation:
		def, err = builder.InitiationGrid(opts...)
	case presetHorizon:
		def, err = builder.SynthwaveHorizon(opts...)
	default:
		err = fmt.Errorf("unknown preset %q", a.cfg.Preset)
	}
	if err != nil {
		return core.DefinitionInput{}, source, err
	}

	return def.Input(), source, nil
}

type summary struct {
	Nodes       int        `json:"nodes"`
	Edges       int        `json:"edges"`
	Clips       int        `json:"clips"`
	LoopBeats   float64    `json:"loopBeats"`
	Acyclic     bool       `json:"acyclic"`
	Order       []string   `json:"order,omitempty"`
	Cycles      [][]string `json:"cycles,omitempty"`
	Unreachable []string   `json:"unreachable,omitempty"` // from the first node
	Issues      []string   `json:"issues,omitempty"`
}

func (a *app) validate(def *core.Definition) error {
	s := summary{
		Nodes:     def.NodeCount(),
		Edges:     def.EdgeCount(),
		Clips:     def.ClipCount(),
		LoopBeats: timeline.LoopBeats(def),
	}
	var cyclic bool
	if cyclic, s.Cycles = dfs.DetectCycles(def); !cyclic {
		order, err := dfs.TopologicalSort(context.Background(), def)
		if err != nil {
			return err
		}
		s.Acyclic, s.Order = true, order
	}
	if nodes := def.Nodes(); len(nodes) > 0 {
		res, err := dfs.DFS(def, nodes[0].ID(), dfs.WithContext(context.Background()))
		if err != nil {
			return err
		}
		for _, n := range nodes[1:] {
			if _, ok := res.Depth[n.ID()]; !ok {
				s.Unreachable = append(s.Unreachable, n.ID())
			}
		}
	}
	for _, is := range def.Issues() {
		s.Issues = append(s.Issues, is.String())
	}

	return a.encode(s)
}

// frameLine is one JSON line of the frames command.
type frameLine struct {
	Millis float64 `json:"ms"`
	timeline.Frame
}

func (a *app) frames(def *core.Definition) error {
	ev, err := timeline.New(def, timeline.WithEasing(a.cfg.Easing))
	if err != nil {
		return err
	}
	to := a.cfg.To
	if a.cfg.toLoop {
		to = a.cfg.From + ev.LoopBeats()
	}
	clock := timeline.NewClock(a.cfg.BPM)

	enc := json.NewEncoder(a.out)
	var f timeline.Frame
	for i := 0; ; i++ {
		beat := a.cfg.From + float64(i)*a.cfg.Step
		if beat > to+1e-9 {
			break
		}
		if a.cfg.Loop {
			ev.EvaluateInto(timeline.WrapBeat(beat, ev.LoopBeats()), &f)
		} else {
			ev.EvaluateInto(beat, &f)
		}
		if err = enc.Encode(frameLine{Millis: beat * clock.BeatMillis(), Frame: f}); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) points(def *core.Definition) error {
	s, err := sampler.New(def,
		sampler.WithSamples(a.cfg.Samples),
		sampler.WithViewport(a.cfg.Width, a.cfg.Height),
		sampler.WithDepth(a.cfg.Depth),
	)
	if err != nil {
		return err
	}

	var frame timeline.Frame
	if a.cfg.Beat >= 0 {
		ev, err := timeline.New(def, timeline.WithEasing(a.cfg.Easing))
		if err != nil {
			return err
		}
		frame = ev.Evaluate(a.cfg.Beat)
	}

	return a.encode(s.Strokes(frame))
}

type routeResult struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Nodes  []string `json:"nodes"`
	Edges  []string `json:"edges"`
	Cost   float64  `json:"cost"`
}

func (a *app) route(def *core.Definition) error {
	opts := []route.Option{route.Source(a.cfg.Source), route.WithCost(route.ArcLength(a.cfg.Samples))}
	if a.cfg.Hops {
		opts = append(opts, route.WithCost(route.Hops))
	}
	if a.cfg.Undirected {
		opts = append(opts, route.WithUndirected())
	}
	res, err := route.Shortest(def, opts...)
	if err != nil {
		return err
	}
	nodes, edges, err := res.PathTo(a.cfg.Target)
	if err != nil {
		return err
	}

	return a.encode(routeResult{
		Source: a.cfg.Source,
		Target: a.cfg.Target,
		Nodes:  nodes,
		Edges:  edges,
		Cost:   res.Dist[a.cfg.Target],
	})
}

func (a *app) encode(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
