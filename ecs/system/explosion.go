package system

import (
	"github.com/milk9111/broadside/assets"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
)

// ExplosionSystem leaves an animated explosion where a rocket despawned.
type ExplosionSystem struct {
	despawns *ecs.Queue[component.ProjectileDespawned]
	weapons  *Weapons
	catalog  *assets.Catalog
	stats    *Stats
}

func NewExplosionSystem(despawns *ecs.Queue[component.ProjectileDespawned], weapons *Weapons, stats *Stats, opts Options) *ExplosionSystem {
	return &ExplosionSystem{despawns: despawns, weapons: weapons, catalog: opts.catalog(), stats: stats}
}

func (s *ExplosionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	spec := s.weapons.Explosion()
	frames := spec.Frames
	if frames <= 0 {
		frames = 1
	}
	scale := spec.Scale
	if scale <= 0 {
		scale = 1
	}

	for _, ev := range s.despawns.Drain() {
		if !ev.Type.Explodes() {
			continue
		}
		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: ev.X, Y: ev.Y, ScaleX: scale, ScaleY: scale})
		_ = ecs.Add(w, e, component.ExplosionComponent.Kind(), &component.Explosion{Source: ev.Type})
		_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Handle: s.catalog.Handle(assets.KindExplosion)})
		anim := component.NewAnimation(frames, spec.FPS(), spec.Loop)
		anim.DespawnOnFinish = !spec.Loop
		_ = ecs.Add(w, e, component.AnimationComponent.Kind(), &anim)
		if s.stats != nil {
			s.stats.Explosions++
		}
	}
}
