package system

import (
	"log"
	"math"

	"github.com/milk9111/broadside/assets"
	"github.com/milk9111/broadside/common"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
	"github.com/milk9111/broadside/prefabs"
)

// minVolleyTime keeps a volley's turn rate finite when the target sits on
// the launcher.
const minVolleyTime = 0.05

// ProjectileSpawnSystem turns fire triggers into projectiles.
type ProjectileSpawnSystem struct {
	triggers *ecs.Queue[component.FireTrigger]
	weapons  *Weapons
	catalog  *assets.Catalog
	stats    *Stats
	logger   *log.Logger
}

func NewProjectileSpawnSystem(triggers *ecs.Queue[component.FireTrigger], weapons *Weapons, stats *Stats, opts Options) *ProjectileSpawnSystem {
	return &ProjectileSpawnSystem{
		triggers: triggers,
		weapons:  weapons,
		catalog:  opts.catalog(),
		stats:    stats,
		logger:   opts.logger(),
	}
}

func (s *ProjectileSpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, ev := range s.triggers.Drain() {
		spec, ok := s.weapons.Get(ev.Turret)
		if !ok {
			s.logger.Printf("projectile_spawn: no tuning for %s", ev.Turret)
			continue
		}
		switch ev.Turret {
		case component.TurretCannon, component.TurretRocket:
			s.spawnSalvo(w, ev, spec)
		case component.TurretMediumRocket:
			s.spawnVolley(w, ev, spec)
		}
	}
}

// spawnSalvo fires one projectile per launch offset along the turret's
// heading.
func (s *ProjectileSpawnSystem) spawnSalvo(w *ecs.World, ev component.FireTrigger, spec *prefabs.WeaponSpec) {
	origin := &component.Transform{X: ev.X, Y: ev.Y, Rotation: ev.Rotation}
	for _, offset := range spec.LaunchOffsets {
		pos := origin.Local(offset)
		s.spawn(w, ev, spec, pos, ev.Rotation, spec.Speed, spec.Lifetime, 0)
	}
}

// spawnVolley fires symmetric pairs fanned around the bearing to the target.
// Each projectile flies a circular arc whose chord is the launch-to-target
// segment, so every pair meets on the target after the travel time.
func (s *ProjectileSpawnSystem) spawnVolley(w *ecs.World, ev component.FireTrigger, spec *prefabs.WeaponSpec) {
	volley := spec.Volley
	if volley == nil || volley.Pairs <= 0 {
		s.logger.Printf("projectile_spawn: %s has no volley", ev.Turret)
		return
	}

	origin := &component.Transform{X: ev.X, Y: ev.Y, Rotation: ev.Rotation}
	pos := origin.Local(spec.LaunchOffsets[0])

	heading := ev.Rotation
	distance := volley.DefaultRange
	if ev.HasTarget {
		d := common.V(ev.TargetX, ev.TargetY).Sub(pos)
		distance = d.Len()
		if distance > 0 {
			// forward (+Y) faces the target, as turret aim does
			heading = d.Perp().Neg().Angle()
		}
	}
	travel := max(distance/spec.Speed, minVolleyTime)

	for i := 0; i < volley.Pairs; i++ {
		theta := volley.BaseAngle + float64(i)*volley.StepAngle
		speed := distance / travel * arcStretch(theta)
		for _, side := range []float64{1, -1} {
			s.spawn(w, ev, spec, pos, heading+side*theta, speed, travel, -side*2*theta/travel)
		}
	}
}

// arcStretch is arc length over chord for an arc leaving its chord at theta.
func arcStretch(theta float64) float64 {
	sin := math.Sin(theta)
	if math.Abs(sin) < 1e-9 {
		return 1
	}
	return theta / sin
}

func (s *ProjectileSpawnSystem) spawn(w *ecs.World, ev component.FireTrigger, spec *prefabs.WeaponSpec, pos common.Vec2, rotation, speed, lifetime, angularRate float64) ecs.Entity {
	kind := ev.Turret.ProjectileType()
	scale := ev.StatsScale
	if scale <= 0 {
		scale = 1
	}

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        pos.X,
		Y:        pos.Y,
		Z:        common.TurretZOffset / 2,
		ScaleX:   1,
		ScaleY:   1,
		Rotation: rotation,
	})
	_ = ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Type:        kind,
		Origin:      ev.Origin,
		Damage:      spec.Damage * scale,
		Speed:       speed,
		InheritedX:  ev.VelocityX,
		InheritedY:  ev.VelocityY,
		AngularRate: angularRate,
		Spray:       spec.Spray,
		Lifetime:    component.NewTimer(lifetime, component.TimerOnce),
		SpawnTick:   w.Clock().Tick,
	})
	collider := spec.Collider
	_ = ecs.Add(w, e, component.ColliderComponent.Kind(), &collider)
	layer := ev.Layer
	_ = ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &layer)
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Handle: s.catalog.Handle(projectileSprite(kind))})
	if anim := spec.Animation; anim != nil && anim.Frames > 1 {
		a := component.NewAnimation(anim.Frames, anim.FPS(), anim.Loop)
		_ = ecs.Add(w, e, component.AnimationComponent.Kind(), &a)
	}

	s.stats.addProjectile(kind)
	return e
}

func projectileSprite(t component.ProjectileType) assets.Kind {
	switch t {
	case component.ProjectileCannon:
		return assets.KindCannonShot
	case component.ProjectileRocket:
		return assets.KindRocket
	default:
		return assets.KindMediumRocket
	}
}
