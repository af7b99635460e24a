package entity

import (
	"fmt"

	"github.com/milk9111/broadside/assets"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
	"github.com/milk9111/broadside/prefabs"
)

// Arena holds the vessels of a one-on-one engagement.
type Arena struct {
	Player ecs.Entity
	Enemy  ecs.Entity
}

// NewArena builds the player ship and the enemy station from vessels.
func NewArena(w *ecs.World, vessels *prefabs.VesselsSpec, catalog *assets.Catalog, spawns *ecs.Queue[component.VesselSpawned]) (Arena, error) {
	if vessels == nil {
		return Arena{}, fmt.Errorf("arena: nil vessels spec")
	}
	if catalog == nil {
		catalog = assets.DefaultCatalog()
	}

	player, err := NewPlayerShip(w, &vessels.PlayerShip, catalog, spawns)
	if err != nil {
		return Arena{}, fmt.Errorf("arena: %w", err)
	}
	enemy, err := NewEnemyStation(w, &vessels.EnemyStation, catalog, spawns)
	if err != nil {
		return Arena{}, fmt.Errorf("arena: %w", err)
	}
	return Arena{Player: player, Enemy: enemy}, nil
}
