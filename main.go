package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/broadside/common"
	"github.com/milk9111/broadside/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw collider outlines")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	zoom := flag.Float64("zoom", 0.5, "camera zoom")
	lead := flag.Float64("lead", 1, "how far enemy volleys lead the player (0 aims straight at it)")
	watch := flag.Bool("watch", true, "reload prefabs when they change on disk")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory holding prefab overrides")
	flag.Parse()

	prefabs.Dir = *prefabDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("broadside")
	ebiten.SetTPS(common.TickRate)

	game, err := NewGame(GameOptions{
		Debug: *debug,
		Zoom:  *zoom,
		Lead:  *lead,
		Watch: *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
