package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/motioncore/common"
)

func main() {
	specName := flag.String("spec", "sandbox.yaml", "sandbox spec in prefabs/ (.yaml, .yml or .toml)")
	debug := flag.Bool("debug", false, "start with debug overlay and transition logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("motioncore sandbox")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(*specName, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
