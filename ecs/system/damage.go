package system

import (
	"log"

	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
)

// DamageSystem applies collision damage to target health. Health is not
// clamped; the death sweep retires depleted entities next tick.
type DamageSystem struct {
	collisions *ecs.Queue[component.CollisionEvent]
	stats      *Stats
	logger     *log.Logger
}

func NewDamageSystem(collisions *ecs.Queue[component.CollisionEvent], stats *Stats, opts Options) *DamageSystem {
	return &DamageSystem{collisions: collisions, stats: stats, logger: opts.logger()}
}

func (s *DamageSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, ev := range s.collisions.Drain() {
		target := ecs.Entity(ev.Target)
		health, ok := ecs.Get(w, target, component.HealthComponent.Kind())
		if !ok {
			s.logger.Printf("damage: target %v: %v", target, ecs.ErrComponentMissing)
			continue
		}
		health.Current -= ev.Payload.Damage
		if s.stats != nil {
			s.stats.Damage += ev.Payload.Damage
		}
	}
}

// DeathSystem destroys entities whose health is depleted, together with
// their children.
type DeathSystem struct {
	stats  *Stats
	logger *log.Logger
}

func NewDeathSystem(stats *Stats, opts Options) *DeathSystem {
	return &DeathSystem{stats: stats, logger: opts.logger()}
}

func (s *DeathSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.HealthComponent.Kind(), func(e ecs.Entity, h *component.Health) {
		if !h.Depleted() {
			return
		}
		n := ecs.DestroyRecursive(w, e)
		s.logger.Printf("death: %v destroyed (health %.1f, %d entities removed)", e, h.Current, n)
		if s.stats != nil {
			s.stats.Kills++
		}
	})
}
