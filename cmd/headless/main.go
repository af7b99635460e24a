// Command headless runs a scripted engagement without a window and prints
// what happened.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/milk9111/broadside/common"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
	"github.com/milk9111/broadside/ecs/entity"
	"github.com/milk9111/broadside/ecs/system"
	"github.com/milk9111/broadside/prefabs"
)

func main() {
	seconds := flag.Float64("seconds", 30, "simulated seconds")
	seed := flag.Uint64("seed", 1, "seed for rocket spray")
	lead := flag.Float64("lead", 1, "how far enemy volleys lead the player")
	throttle := flag.Float64("throttle", 0.5, "player throttle in [-1, 1]")
	steer := flag.Float64("steer", 0.2, "player steering in [-1, 1]")
	hold := flag.Bool("fire", true, "hold the player's trigger")
	quiet := flag.Bool("q", false, "silence diagnostics")
	flag.Parse()

	logger := log.New(os.Stderr, "headless: ", 0)
	if *quiet {
		logger.SetOutput(io.Discard)
	}

	if err := run(*seconds, *seed, *lead, &system.StaticInput{Fire: *hold, ThrottleV: *throttle, SteerV: *steer}, logger); err != nil {
		log.Fatal(err)
	}
}

func run(seconds float64, seed uint64, lead float64, input *system.StaticInput, logger *log.Logger) error {
	weaponsSpec, err := prefabs.LoadWeapons()
	if err != nil {
		return err
	}
	vessels, err := prefabs.LoadVessels()
	if err != nil {
		return err
	}

	weapons := system.NewWeapons(weaponsSpec)
	targeter, err := system.LoadScriptTargeter(weapons, lead, logger)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	p, err := system.NewPipeline(w, system.Options{
		Logger:   logger,
		Rand:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Weapons:  weapons,
		Input:    input,
		Targeter: targeter,
	})
	if err != nil {
		return err
	}

	arena, err := entity.NewArena(w, vessels, nil, p.Events.VesselSpawns)
	if err != nil {
		return err
	}

	ticks := int(seconds * common.TickRate)
	dt := 1.0 / common.TickRate
	for i := 0; i < ticks; i++ {
		// keep the player's guns on the station
		if t, ok := ecs.Get(w, arena.Enemy, component.TransformComponent.Kind()); ok {
			input.CursorX, input.CursorY = t.X, t.Y
		}
		p.Tick(w, dt)

		if !w.IsAlive(arena.Player) || !w.IsAlive(arena.Enemy) {
			ticks = i + 1
			break
		}
	}

	fmt.Printf("ticks:       %d (%.2fs)\n", ticks, float64(ticks)*dt)
	fmt.Print(p.Stats.Report())
	for _, v := range []struct {
		name string
		e    ecs.Entity
	}{{"player", arena.Player}, {"station", arena.Enemy}} {
		if h, ok := ecs.Get(w, v.e, component.HealthComponent.Kind()); ok {
			fmt.Printf("%-12s %.1f/%.1f\n", v.name+":", h.Current, h.Max)
		} else {
			fmt.Printf("%-12s destroyed\n", v.name+":")
		}
	}
	return nil
}
