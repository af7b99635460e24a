package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/broadside/assets"
	"github.com/milk9111/broadside/common"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
	"github.com/milk9111/broadside/ecs/entity"
	"github.com/milk9111/broadside/ecs/system"
	"github.com/milk9111/broadside/prefabs"
	"golang.design/x/clipboard"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type GameOptions struct {
	Debug  bool
	Zoom   float64
	Lead   float64
	Watch  bool
	Logger *log.Logger
}

type Game struct {
	frames int
	debug  bool
	paused bool
	quit   bool
	logger *log.Logger

	world    *ecs.World
	pipeline *system.Pipeline
	arena    entity.Arena
	weapons  *system.Weapons
	targeter *system.ScriptTargeter
	watcher  *prefabs.Watcher

	camera   *Camera
	renderer *Renderer
	ui       *ebitenui.UI
	onPause  func()

	clipboardReady bool
	status         string
}

func NewGame(opts GameOptions) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	weaponsSpec, err := prefabs.LoadWeapons()
	if err != nil {
		return nil, err
	}
	vessels, err := prefabs.LoadVessels()
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:   opts.Debug,
		logger:  logger,
		world:   ecs.NewWorld(),
		weapons: system.NewWeapons(weaponsSpec),
		camera:  NewCamera(baseWidth, baseHeight, opts.Zoom),
	}

	targeter, err := system.LoadScriptTargeter(g.weapons, opts.Lead, logger)
	if err != nil {
		return nil, err
	}
	g.targeter = targeter

	catalog := assets.DefaultCatalog()
	g.pipeline, err = system.NewPipeline(g.world, system.Options{
		Logger:   logger,
		Catalog:  catalog,
		Weapons:  g.weapons,
		Input:    &system.EbitenInput{ScreenToWorld: g.camera.ScreenToWorld},
		Targeter: targeter,
	})
	if err != nil {
		return nil, err
	}

	g.arena, err = entity.NewArena(g.world, vessels, catalog, g.pipeline.Events.VesselSpawns)
	if err != nil {
		return nil, err
	}
	g.camera.PosX, g.camera.PosY = vessels.PlayerShip.Spawn.X, vessels.PlayerShip.Spawn.Y

	g.renderer = NewRenderer(catalog)
	g.ui = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			logger.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := clipboard.Init(); err != nil {
		logger.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardReady = true
	}

	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		if g.paused && g.onPause != nil {
			g.onPause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyStats()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	if g.paused {
		g.ui.Update()
		return nil
	}

	g.pipeline.Tick(g.world, 1.0/common.TickRate)

	if t, ok := ecs.Get(g.world, g.arena.Player, component.TransformComponent.Kind()); ok {
		g.camera.Follow(t.X, t.Y)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, g.camera, screen)
	if g.debug {
		g.renderer.DrawColliders(g.world, g.camera, screen)
	}

	hud := fmt.Sprintf("FPS: %.2f    tick: %d    projectiles: %d", ebiten.ActualFPS(), g.world.Clock().Tick, len(g.world.Query(component.ProjectileComponent.Kind())))
	if h, ok := ecs.Get(g.world, g.arena.Enemy, component.HealthComponent.Kind()); ok {
		hud += fmt.Sprintf("    station: %.0f/%.0f", h.Current, h.Max)
	}
	if g.status != "" {
		hud += "\n" + g.status
	}
	ebitenutil.DebugPrint(screen, hud)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the prefab watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) copyStats() {
	if !g.clipboardReady {
		g.status = "clipboard unavailable"
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.pipeline.Stats.Report()))
	g.status = "stats copied"
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changes, errs, open := g.watcher.Poll()
	for _, err := range errs {
		g.logger.Printf("prefab watcher: %v", err)
	}
	for _, change := range changes {
		g.reload(change)
	}
	if !open {
		g.logger.Printf("prefab watcher stopped")
		g.watcher = nil
	}
}

func (g *Game) reload(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeWeapons:
		spec, err := prefabs.LoadWeapons()
		if err != nil {
			g.logger.Printf("reload %s: %v", change.Path, err)
			return
		}
		g.weapons.Set(spec)
		g.status = "weapons reloaded"
	case prefabs.ChangeScript:
		src, err := prefabs.LoadScript(prefabs.TargetScript)
		if err != nil {
			g.logger.Printf("reload %s: %v", change.Path, err)
			return
		}
		if err := g.targeter.Reload(src); err != nil {
			g.logger.Printf("reload %s: %v", change.Path, err)
			return
		}
		g.status = "targeting script reloaded"
	case prefabs.ChangeVessels:
		// vessels are only read at startup
		g.status = "vessels.yaml changed; restart to apply"
	}
}
