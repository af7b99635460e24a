package entity

import (
	"fmt"

	"github.com/milk9111/broadside/assets"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
	"github.com/milk9111/broadside/prefabs"
)

// NewPlayerShip builds the player's ship and announces it so its turrets
// are mounted on the next intent stage.
func NewPlayerShip(w *ecs.World, spec *prefabs.VesselSpec, catalog *assets.Catalog, spawns *ecs.Queue[component.VesselSpawned]) (ecs.Entity, error) {
	e, err := newVessel(w, spec, catalog.Handle(assets.KindPlayerShip), spawns)
	if err != nil {
		return 0, fmt.Errorf("player ship: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player ship: add player tag: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player ship: add input: %w", err)
	}
	return e, nil
}

// NewEnemyStation builds a stationary enemy vessel.
func NewEnemyStation(w *ecs.World, spec *prefabs.VesselSpec, catalog *assets.Catalog, spawns *ecs.Queue[component.VesselSpawned]) (ecs.Entity, error) {
	e, err := newVessel(w, spec, catalog.Handle(assets.KindEnemyStation), spawns)
	if err != nil {
		return 0, fmt.Errorf("enemy station: %w", err)
	}
	if err := ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return 0, fmt.Errorf("enemy station: add enemy tag: %w", err)
	}
	return e, nil
}

func newVessel(w *ecs.World, spec *prefabs.VesselSpec, sprite assets.Handle, spawns *ecs.Queue[component.VesselSpawned]) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("nil vessel spec")
	}
	faction, err := spec.FactionValue()
	if err != nil {
		return 0, err
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X:      spec.Spawn.X,
		Y:      spec.Spawn.Y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("add transform: %w", err)
	}

	collider := spec.Collider
	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &collider); err != nil {
		return 0, fmt.Errorf("add collider: %w", err)
	}

	layer := component.VesselLayer(faction)
	if err := ecs.Add(w, entity, component.CollisionLayerComponent.Kind(), &layer); err != nil {
		return 0, fmt.Errorf("add collision layer: %w", err)
	}

	if spec.ShipStats != nil {
		stats := *spec.ShipStats
		if err := ecs.Add(w, entity, component.ShipStatsComponent.Kind(), &stats); err != nil {
			return 0, fmt.Errorf("add ship stats: %w", err)
		}
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{Handle: sprite}); err != nil {
		return 0, fmt.Errorf("add sprite: %w", err)
	}

	loadout := append([]component.TurretType(nil), spec.Loadout...)
	mounts := append([]component.MountOffset(nil), spec.Mounts...)
	spawns.Push(component.VesselSpawned{
		Entity:     uint64(entity),
		Faction:    faction,
		StatsScale: spec.StatsScale,
		Loadout:    loadout,
		Mounts:     mounts,
		MaxHealth:  spec.MaxHealth,
		BarScale:   spec.BarScale,
	})

	return entity, nil
}
