package system

import (
	"math/rand/v2"

	"github.com/milk9111/broadside/common"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
)

// ProjectileMotionSystem moves and ages projectiles. A projectile is first
// advanced on the tick after it spawned.
type ProjectileMotionSystem struct {
	rng *rand.Rand
}

func NewProjectileMotionSystem(opts Options) *ProjectileMotionSystem {
	return &ProjectileMotionSystem{rng: opts.rand()}
}

func (s *ProjectileMotionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	clock := w.Clock()
	dt := clock.Delta

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Projectile, t *component.Transform) {
		if p.Disabled || p.SpawnTick == clock.Tick {
			return
		}

		// no travel past the end of the lifetime
		step := min(dt, p.Lifetime.Remaining())

		// turn half the step on each side of the move so turning shots
		// follow their arc
		t.Rotation += p.AngularRate * step / 2
		velocity := t.Forward().Scale(p.Speed).Add(common.V(p.InheritedX, p.InheritedY))
		t.SetPosition(t.Position().Add(velocity.Scale(step)))
		t.Rotation += p.AngularRate * step / 2

		p.Lifetime.Tick(dt)
		if p.Spray > 0 {
			intensity := p.Lifetime.Fraction()
			t.Rotation += (s.rng.Float64()*2 - 1) * intensity * intensity * p.Spray
		}
		if p.Lifetime.Finished() {
			p.Disabled = true
		}
	})
}

// ProjectileDespawnSystem removes disabled projectiles and reports where
// they ended.
type ProjectileDespawnSystem struct {
	despawns *ecs.Queue[component.ProjectileDespawned]
	stats    *Stats
}

func NewProjectileDespawnSystem(despawns *ecs.Queue[component.ProjectileDespawned], stats *Stats) *ProjectileDespawnSystem {
	return &ProjectileDespawnSystem{despawns: despawns, stats: stats}
}

func (s *ProjectileDespawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, t *component.Transform) {
		if !p.Disabled {
			return
		}
		reason := component.DespawnExpired
		if d, ok := ecs.Get(w, e, component.DespawningComponent.Kind()); ok {
			reason = d.Reason
		}
		s.despawns.Push(component.ProjectileDespawned{Type: p.Type, X: t.X, Y: t.Y, Reason: reason})
		if reason == component.DespawnExpired && s.stats != nil {
			s.stats.Expired++
		}
		ecs.DestroyRecursive(w, e)
	})
}
