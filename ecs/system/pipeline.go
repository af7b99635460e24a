package system

import (
	"fmt"

	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/prefabs"
)

const (
	StageSweep     = "sweep"
	StageIntent    = "intent"
	StageTurrets   = "turrets"
	StageSpawn     = "spawn"
	StageMotion    = "motion"
	StageCollision = "collision"
	StageDespawn   = "despawn"
)

// Pipeline runs one combat tick: sweep, intent, turrets, spawn, motion,
// collision, despawn. Queues are reset after the last stage.
type Pipeline struct {
	Events  *Events
	Stats   *Stats
	Weapons *Weapons

	physics   *ecs.PhysicsWorld
	scheduler *ecs.Scheduler
}

// NewPipeline wires the combat systems for w. A PhysicsWorld is attached
// to w when it has none.
func NewPipeline(w *ecs.World, opts Options) (*Pipeline, error) {
	if w == nil {
		return nil, fmt.Errorf("pipeline: nil world")
	}
	weapons := opts.Weapons
	if weapons == nil {
		spec, err := prefabs.LoadWeapons()
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
		weapons = NewWeapons(spec)
	}

	pw := w.PhysicsWorld()
	if pw == nil {
		pw = ecs.NewPhysicsWorld(opts.Logger)
		w.SetPhysicsWorld(pw)
	}
	if opts.Collisions == nil {
		opts.Collisions = pw
	}

	p := &Pipeline{
		Events:  NewEvents(),
		Stats:   NewStats(),
		Weapons: weapons,
		physics: pw,
	}
	ev := p.Events

	var intent []ecs.System
	if opts.Input != nil {
		intent = append(intent, NewInputSystem(opts.Input, opts))
	}
	intent = append(intent,
		NewPlayerControlSystem(),
		NewShipMotionSystem(),
		NewVesselSpawnSystem(ev.VesselSpawns, opts),
	)

	p.scheduler = ecs.NewScheduler(
		ecs.Stage{Name: StageSweep, Systems: []ecs.System{
			NewDeathSystem(p.Stats, opts),
		}},
		ecs.Stage{Name: StageIntent, Systems: intent},
		ecs.Stage{Name: StageTurrets, Systems: []ecs.System{
			NewTurretDespawnSystem(),
			NewTurretPositionSystem(),
			NewTurretAimSystem(opts),
			NewTurretCooldownSystem(),
			NewTurretTriggerSystem(ev.FireTriggers, p.Weapons, p.Stats, opts),
		}},
		ecs.Stage{Name: StageSpawn, Systems: []ecs.System{
			NewProjectileSpawnSystem(ev.FireTriggers, p.Weapons, p.Stats, opts),
		}},
		ecs.Stage{Name: StageMotion, Systems: []ecs.System{
			NewProjectileMotionSystem(opts),
		}},
		ecs.Stage{Name: StageCollision, Systems: []ecs.System{
			NewPhysicsSystem(pw),
			NewCollisionSystem(ev.Collisions, p.Stats, opts),
		}},
		ecs.Stage{Name: StageDespawn, Systems: []ecs.System{
			NewDamageSystem(ev.Collisions, p.Stats, opts),
			NewProjectileDespawnSystem(ev.Despawns, p.Stats),
			NewExplosionSystem(ev.Despawns, p.Weapons, p.Stats, opts),
			NewAnimationSystem(),
			NewHealthBarSystem(),
		}},
	)
	p.scheduler.OnTickEnd(ev.Reset)
	return p, nil
}

// Tick advances the world clock by dt and runs every stage once.
func (p *Pipeline) Tick(w *ecs.World, dt float64) {
	if p == nil || w == nil {
		return
	}
	w.Clock().Advance(dt)
	p.scheduler.Update(w)
}

// Stages returns the configured stages in run order.
func (p *Pipeline) Stages() []ecs.Stage {
	return p.scheduler.Stages()
}

// Physics returns the physics world the collision stage syncs.
func (p *Pipeline) Physics() *ecs.PhysicsWorld {
	return p.physics
}
