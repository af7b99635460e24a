package system

import (
	"iter"

	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
)

// CollisionProvider answers "what overlaps this collider here" queries.
// Candidates rejected by filter and the exclude entity are never yielded.
type CollisionProvider interface {
	Overlaps(collider component.Collider, x, y, rotation float64, filter component.CollisionLayer, exclude ecs.Entity) iter.Seq[ecs.Entity]
}

// CollisionSystem resolves at most one hit per live projectile per tick.
type CollisionSystem struct {
	provider   CollisionProvider
	collisions *ecs.Queue[component.CollisionEvent]
	stats      *Stats
	diag       *diagnostics
}

func NewCollisionSystem(collisions *ecs.Queue[component.CollisionEvent], stats *Stats, opts Options) *CollisionSystem {
	return &CollisionSystem{
		provider:   opts.Collisions,
		collisions: collisions,
		stats:      stats,
		diag:       newDiagnostics(opts.logger()),
	}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	provider := s.provider
	if provider == nil {
		if pw := w.PhysicsWorld(); pw != nil {
			provider = pw
		}
	}
	if provider == nil {
		s.diag.warn("provider", "collision: no collision provider, projectiles cannot hit")
		return
	}
	s.diag.clear("provider")
	tick := w.Clock().Tick

	ecs.ForEach4(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), component.CollisionLayerComponent.Kind(),
		func(e ecs.Entity, p *component.Projectile, t *component.Transform, c *component.Collider, layer *component.CollisionLayer) {
			if p.Disabled || p.SpawnTick == tick {
				return
			}
			target, ok := s.firstHit(w, provider, e, p, t, c, *layer)
			if !ok {
				return
			}
			p.Disabled = true
			_ = ecs.Add(w, e, component.DespawningComponent.Kind(), &component.Despawning{Reason: component.DespawnHit})
			s.collisions.Push(component.CollisionEvent{Target: uint64(target), Projectile: uint64(e), Payload: *p})
			if s.stats != nil {
				s.stats.Hits++
			}
		})
}

func (s *CollisionSystem) firstHit(w *ecs.World, provider CollisionProvider, e ecs.Entity, p *component.Projectile, t *component.Transform, c *component.Collider, layer component.CollisionLayer) (ecs.Entity, bool) {
	for candidate := range provider.Overlaps(*c, t.X, t.Y, t.Rotation, layer, e) {
		if candidate == e || candidate == ecs.Entity(p.Origin) || !w.IsAlive(candidate) {
			continue
		}
		other, ok := ecs.Get(w, candidate, component.CollisionLayerComponent.Kind())
		if !ok || !layer.Accepts(*other) {
			continue
		}
		return candidate, true
	}
	return 0, false
}
