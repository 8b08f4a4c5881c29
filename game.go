package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/motioncore/common"
	"github.com/milk9111/motioncore/ecs"
	"github.com/milk9111/motioncore/ecs/component"
	"github.com/milk9111/motioncore/ecs/entity"
	"github.com/milk9111/motioncore/ecs/system"
	"github.com/milk9111/motioncore/prefabs"
	"golang.design/x/clipboard"
)

var background = color.NRGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff}

type Game struct {
	specName string
	spec     prefabs.SandboxSpec
	debug    bool

	world     *ecs.World
	physics   *system.PhysicsSystem
	scheduler *ecs.Scheduler
	sandbox   *entity.Sandbox

	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	paused  bool

	clipboardReady bool
}

func NewGame(specName string, debug bool) (*Game, error) {
	g := &Game{specName: specName, debug: debug}
	if err := g.load(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	watcher, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
	if err != nil {
		log.Printf("game: hot reload disabled: %v", err)
	} else {
		g.watcher = watcher
	}
	return g, nil
}

// load reads the spec and builds a fresh world around it. On error the
// current world is kept.
func (g *Game) load() error {
	spec, err := prefabs.LoadSandboxSpec(g.specName)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	physics := system.NewPhysicsSystem(spec.WorldGravity())
	physics.Debug = g.debug || spec.Debug
	sb, err := entity.BuildSandbox(w, physics, spec)
	if err != nil {
		return err
	}

	motionSystem := system.NewMotionSystem(physics)
	motionSystem.Debug = g.debug || spec.Debug

	g.spec = spec
	g.world = w
	g.physics = physics
	g.sandbox = sb
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(keyboardSource{}),
		system.NewHazardSystem(physics),
		motionSystem,
		physics,
	)
	return nil
}

func (g *Game) reset() {
	if err := g.load(); err != nil {
		log.Printf("game: reset %s: %v", g.specName, err)
	}
}

func (g *Game) Update() error {
	g.pollReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	g.scheduler.Update(g.world, 1.0/common.TPS)
	return nil
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: reload %s", name)
			g.reset()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: watcher: %v", err)
		default:
			return
		}
	}
}

// copyParams puts the active motion tuning on the clipboard as YAML.
func (g *Game) copyParams() string {
	if !g.clipboardReady {
		if err := clipboard.Init(); err != nil {
			log.Printf("game: clipboard: %v", err)
			return "clipboard unavailable"
		}
		g.clipboardReady = true
	}

	player, ok := g.world.First(component.PlayerTagComponent.Kind())
	if !ok {
		return "no player"
	}
	mc, ok := ecs.Get(g.world, player, component.MotionComponent)
	if !ok || mc.Controller == nil {
		return "no player"
	}
	data, err := prefabs.MarshalMotionYAML(mc.Controller.Parameters())
	if err != nil {
		log.Printf("game: copy params: %v", err)
		return "copy failed"
	}
	clipboard.Write(clipboard.FmtText, data)
	return "copied motion params"
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	drawSpace(g.physics.Space(), screen)

	if g.debug {
		drawProbe(g.world, screen)
		drawMotionState(g.world, screen)
	} else {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  FPS %.0f  [F1 debug, P pause, R reset]", g.spec.Name, ebiten.ActualFPS()), 10, 10)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
