// Command motionsim runs a sandbox headless, driving the player from a
// tengo script and logging one trace line per tick.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/motioncore/common"
	"github.com/milk9111/motioncore/ecs"
	"github.com/milk9111/motioncore/ecs/component"
	"github.com/milk9111/motioncore/ecs/entity"
	"github.com/milk9111/motioncore/ecs/system"
	"github.com/milk9111/motioncore/prefabs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errNoScript = errors.New("motionsim: no script given and spec names none")

type options struct {
	spec   string
	script string
	ticks  int
	dt     float64
	json   bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("motionsim", flag.ContinueOnError)
	fs.StringVar(&opts.spec, "spec", "sandbox.yaml", "sandbox spec (.yaml, .yml or .toml)")
	fs.StringVar(&opts.script, "script", "", "tengo input script (defaults to the spec's script.path)")
	fs.IntVar(&opts.ticks, "ticks", 300, "number of ticks to simulate")
	fs.Float64Var(&opts.dt, "dt", 1.0/common.TPS, "seconds per tick")
	fs.BoolVar(&opts.json, "json", false, "emit JSON instead of console lines")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.ticks < 0 {
		return options{}, fmt.Errorf("motionsim: ticks must be >= 0, got %d", opts.ticks)
	}
	if !(opts.dt > 0) {
		return options{}, fmt.Errorf("motionsim: dt must be > 0, got %v", opts.dt)
	}
	return opts, nil
}

func newLogger(out io.Writer, json bool) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = ""
	var enc zapcore.Encoder
	if json {
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		enc = zapcore.NewConsoleEncoder(cfg)
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(out), zapcore.DebugLevel))
}

func run(args []string, out io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	logger := newLogger(out, opts.json)
	defer func() { _ = logger.Sync() }()

	spec, err := prefabs.LoadSandboxSpec(opts.spec)
	if err != nil {
		return err
	}

	scriptPath := opts.script
	if scriptPath == "" {
		scriptPath = spec.Script.Path
	}
	if scriptPath == "" {
		return errNoScript
	}
	src, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return fmt.Errorf("motionsim: load script %s: %w", scriptPath, err)
	}
	script, err := system.NewScriptInput(src)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	physics := system.NewPhysicsSystem(spec.WorldGravity())
	sb, err := entity.BuildSandbox(w, physics, spec)
	if err != nil {
		return err
	}
	scheduler := ecs.NewScheduler(
		system.NewInputSystem(script),
		system.NewHazardSystem(physics),
		system.NewMotionSystem(physics),
		physics,
	)

	logger.Info("sandbox loaded",
		zap.String("spec", opts.spec),
		zap.String("script", scriptPath),
		zap.Int("ticks", opts.ticks),
		zap.Float64("dt", opts.dt),
	)

	for tick := 0; tick < opts.ticks; tick++ {
		scheduler.Update(w, opts.dt)
		if err := script.Err(); err != nil {
			return err
		}
		trace(logger, w, sb.Player, tick)
	}
	return nil
}

func trace(logger *zap.Logger, w *ecs.World, player ecs.Entity, tick int) {
	mc, ok := ecs.Get(w, player, component.MotionComponent)
	if !ok || mc.Controller == nil {
		return
	}
	t, _ := ecs.Get(w, player, component.TransformComponent)
	s := mc.Controller.Snapshot()
	logger.Debug("tick",
		zap.Int("tick", tick),
		zap.Stringer("state", s.State),
		zap.Float64("vx", s.Velocity.X),
		zap.Float64("vy", s.Velocity.Y),
		zap.Float64("x", t.X),
		zap.Float64("y", t.Y),
		zap.Bool("grounded", s.Grounded),
		zap.Int("jumps", s.RemainingJumps),
		zap.Stringer("magnet", s.Magnet),
	)
}
