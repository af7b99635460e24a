package system

import (
	"log"

	"github.com/milk9111/broadside/assets"
	"github.com/milk9111/broadside/common"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
)

// Health bar geometry at bar scale 1.
const (
	healthBarOffsetX = -30.0
	healthBarOffsetY = -40.0
	healthBarWidth   = 60.0
	healthBarHeight  = 7.5
)

// VesselSpawnSystem mounts a turret for every filled loadout slot of a
// newly spawned vessel and gives it health and a health bar.
type VesselSpawnSystem struct {
	spawns  *ecs.Queue[component.VesselSpawned]
	catalog *assets.Catalog
	logger  *log.Logger
}

func NewVesselSpawnSystem(spawns *ecs.Queue[component.VesselSpawned], opts Options) *VesselSpawnSystem {
	return &VesselSpawnSystem{spawns: spawns, catalog: opts.catalog(), logger: opts.logger()}
}

func (s *VesselSpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, ev := range s.spawns.Drain() {
		vessel := ecs.Entity(ev.Entity)
		if !w.IsAlive(vessel) {
			s.logger.Printf("vessel_spawn: vessel %v is gone, skipping loadout", vessel)
			continue
		}
		owner, _ := ecs.Get(w, vessel, component.TransformComponent.Kind())

		for i, slot := range ev.Loadout {
			if slot == component.TurretNone {
				continue
			}
			if i >= len(ev.Mounts) {
				s.logger.Printf("vessel_spawn: vessel %v slot %d has no mount", vessel, i)
				continue
			}
			s.mountTurret(w, vessel, owner, ev, slot, ev.Mounts[i])
		}

		if ev.MaxHealth > 0 && !ecs.Has(w, vessel, component.HealthComponent.Kind()) {
			health := component.NewHealth(ev.Entity, ev.MaxHealth, ev.BarScale)
			_ = ecs.Add(w, vessel, component.HealthComponent.Kind(), &health)
		}
		if ecs.Has(w, vessel, component.HealthComponent.Kind()) {
			s.spawnHealthBar(w, vessel, ev.BarScale)
		}
	}
}

func (s *VesselSpawnSystem) mountTurret(w *ecs.World, vessel ecs.Entity, owner *component.Transform, ev component.VesselSpawned, slot component.TurretType, mount component.MountOffset) {
	scale := ev.StatsScale
	if scale <= 0 {
		scale = 1
	}
	t := &component.Transform{ScaleX: 1, ScaleY: 1}
	if owner != nil {
		t.SetPosition(owner.Local(common.V(mount.X, mount.Y)))
		t.Z = owner.Z + common.TurretZOffset
		t.Rotation = owner.Rotation
	}

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), t)
	_ = ecs.Add(w, e, component.TurretComponent.Kind(), &component.Turret{
		Owner:      uint64(vessel),
		Type:       slot,
		Faction:    ev.Faction,
		OffsetX:    mount.X,
		OffsetY:    mount.Y,
		StatsScale: scale,
		State:      component.CooldownReady,
	})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Handle: s.catalog.Handle(turretSprite(slot))})
}

func (s *VesselSpawnSystem) spawnHealthBar(w *ecs.World, vessel ecs.Entity, barScale float64) {
	if barScale <= 0 {
		barScale = 1
	}
	bar := ecs.CreateEntity(w)
	_ = ecs.Add(w, bar, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(vessel)})
	_ = ecs.Add(w, bar, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1})
	_ = ecs.Add(w, bar, component.HealthBarComponent.Kind(), &component.HealthBar{
		Owner:   uint64(vessel),
		OffsetX: healthBarOffsetX * barScale,
		OffsetY: healthBarOffsetY * barScale,
		Width:   healthBarWidth * barScale,
		Height:  healthBarHeight * barScale,
		Fill:    1,
		Visible: true,
	})
	_ = ecs.Add(w, bar, component.SpriteComponent.Kind(), &component.Sprite{Handle: s.catalog.Handle(assets.KindHealthBar)})
}

func turretSprite(t component.TurretType) assets.Kind {
	switch t {
	case component.TurretCannon:
		return assets.KindCannonTurret
	case component.TurretRocket:
		return assets.KindRocketTurret
	default:
		return assets.KindMediumTurret
	}
}
