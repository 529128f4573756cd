package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/linenet/sampler"
	"github.com/katalvlaran/linenet/timeline"
)

// Commands.
const (
	cmdValidate = "validate"
	cmdFrames   = "frames"
	cmdPoints   = "points"
	cmdExport   = "export"
	cmdRoute    = "route"
)

// Presets selectable with -preset.
const (
	presetSynthwave  = "synthwave"
	presetInitiation = "initiation"
	presetHorizon    = "horizon"
)

var errUsage = errors.New("usage: linenet <validate|frames|points|export|route> [flags] [scene-file]")

// Config is the resolved command line. Flags override LINENET_* variables.
type Config struct {
	Command string `validate:"required,oneof=validate frames points export route"`
	Scene   string `validate:"required_without=Preset"`
	Preset  string `validate:"omitempty,oneof=synthwave initiation horizon"`
	Seed    int64

	Lenient bool
	Debug   bool

	BPM    float64 `validate:"gt=0,lte=1000"`
	From   float64 `validate:"gte=0"`
	To     float64 `validate:"gtefield=From"`
	Step   float64 `validate:"gt=0"`
	Loop   bool
	Easing bool

	Beat    float64 `validate:"gte=-1"`
	Samples int     `validate:"min=2,max=4096"`
	Width   float64 `validate:"gt=0"`
	Height  float64 `validate:"gt=0"`
	Depth   float64

	Format string `validate:"oneof=yaml json"`

	Source     string `validate:"required_if=Command route"`
	Target     string `validate:"required_if=Command route"`
	Hops       bool
	Undirected bool

	// toLoop is set when -to was omitted; frames then runs to the loop length.
	toLoop bool
}

// LoadConfig parses args (without the program name).
func LoadConfig(args []string) (Config, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return Config{}, errUsage
	}
	cfg := Config{Command: args[0]}

	bpm, err := envFloat("LINENET_BPM", timeline.DefaultBPM)
	if err != nil {
		return Config{}, err
	}
	samples, err := envInt("LINENET_SAMPLES", sampler.DefaultSamples)
	if err != nil {
		return Config{}, err
	}
	lenient, err := envBool("LINENET_LENIENT", false)
	if err != nil {
		return Config{}, err
	}
	debug, err := envBool("LINENET_DEBUG", false)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("linenet "+cfg.Command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Preset, "preset", os.Getenv("LINENET_PRESET"), "built-in scene: synthwave|initiation|horizon")
	fs.Int64Var(&cfg.Seed, "seed", 0, "RNG seed for generated presets (0 keeps them deterministic)")
	fs.BoolVar(&cfg.Lenient, "lenient", lenient, "accept invalid scenes with a warning")
	fs.BoolVar(&cfg.Debug, "debug", debug, "development logging")
	fs.Float64Var(&cfg.BPM, "bpm", bpm, "tempo used to convert beats to milliseconds")
	fs.Float64Var(&cfg.From, "from", 0, "first beat")
	fs.Float64Var(&cfg.To, "to", -1, "last beat (default: loop length)")
	fs.Float64Var(&cfg.Step, "step", 0.5, "beat increment")
	fs.BoolVar(&cfg.Loop, "loop", false, "wrap beats into the loop")
	fs.BoolVar(&cfg.Easing, "easing", false, "apply clip easing to draw progress")
	fs.Float64Var(&cfg.Beat, "beat", -1, "points: truncate strokes to this beat (-1: full paths)")
	fs.IntVar(&cfg.Samples, "samples", samples, "samples per curved segment")
	fs.Float64Var(&cfg.Width, "width", 1, "viewport width")
	fs.Float64Var(&cfg.Height, "height", 1, "viewport height")
	fs.Float64Var(&cfg.Depth, "depth", 0, "z of projected points")
	fs.StringVar(&cfg.Format, "format", "yaml", "export format: yaml|json")
	fs.StringVar(&cfg.Source, "source", "", "route: start node")
	fs.StringVar(&cfg.Target, "target", "", "route: destination node")
	fs.BoolVar(&cfg.Hops, "hops", false, "route: count edges instead of drawn length")
	fs.BoolVar(&cfg.Undirected, "undirected", false, "route: follow edges both ways")

	if err = fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(os.Stdout)
			fs.PrintDefaults()
		}
		return Config{}, err
	}
	switch fs.NArg() {
	case 0:
		cfg.Scene = os.Getenv("LINENET_SCENE")
	case 1:
		cfg.Scene = fs.Arg(0)
	default:
		return Config{}, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args()[1:])
	}
	if cfg.Scene != "" && cfg.Preset != "" {
		return Config{}, errors.New("scene file and -preset are mutually exclusive")
	}
	if cfg.To < 0 {
		cfg.To = cfg.From
		cfg.toLoop = true
	}

	if err = ValidateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var validate = validator.New()

// ValidateConfig checks cfg against its struct tags.
func ValidateConfig(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_without":
		return "a scene file or -preset is required"
	case "required_if":
		params := strings.Fields(e.Param())
		return fmt.Sprintf("%s is required for %s", field, params[len(params)-1])
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be before %s", field, strings.ToLower(e.Param()))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return f, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return n, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}

	return b, nil
}
