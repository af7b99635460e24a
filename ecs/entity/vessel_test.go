package entity

import (
	"testing"

	"github.com/milk9111/broadside/assets"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
	"github.com/milk9111/broadside/prefabs"
)

func TestNewArena(t *testing.T) {
	vessels, err := prefabs.LoadVessels()
	if err != nil {
		t.Fatalf("load vessels: %v", err)
	}

	w := ecs.NewWorld()
	spawns := ecs.NewQueue[component.VesselSpawned]()
	arena, err := NewArena(w, vessels, assets.DefaultCatalog(), spawns)
	if err != nil {
		t.Fatalf("new arena: %v", err)
	}

	if !ecs.Has(w, arena.Player, component.PlayerTagComponent.Kind()) {
		t.Fatalf("player ship has no player tag")
	}
	if !ecs.Has(w, arena.Player, component.InputComponent.Kind()) {
		t.Fatalf("player ship has no input")
	}
	if !ecs.Has(w, arena.Player, component.ShipStatsComponent.Kind()) {
		t.Fatalf("player ship has no ship stats")
	}
	if !ecs.Has(w, arena.Enemy, component.EnemyTagComponent.Kind()) {
		t.Fatalf("enemy station has no enemy tag")
	}
	if ecs.Has(w, arena.Enemy, component.ShipStatsComponent.Kind()) {
		t.Fatalf("enemy station should be stationary")
	}

	layer, ok := ecs.Get(w, arena.Enemy, component.CollisionLayerComponent.Kind())
	if !ok || layer.Layer != component.EnemyLayer || layer.Mask != component.ProjectileLayer {
		t.Fatalf("enemy layer = %+v, want enemy layer masked to projectiles", layer)
	}

	notices := spawns.Drain()
	if len(notices) != 2 {
		t.Fatalf("spawn notices = %d, want 2", len(notices))
	}
	tests := []struct {
		name    string
		notice  component.VesselSpawned
		entity  ecs.Entity
		faction component.Faction
		slots   int
	}{
		{"player", notices[0], arena.Player, component.FactionPlayer, 6},
		{"enemy", notices[1], arena.Enemy, component.FactionEnemy, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ecs.Entity(tt.notice.Entity) != tt.entity {
				t.Fatalf("notice entity = %d, want %d", tt.notice.Entity, tt.entity)
			}
			if tt.notice.Faction != tt.faction {
				t.Fatalf("faction = %v, want %v", tt.notice.Faction, tt.faction)
			}
			if len(tt.notice.Loadout) != tt.slots || len(tt.notice.Mounts) != tt.slots {
				t.Fatalf("loadout/mounts = %d/%d, want %d", len(tt.notice.Loadout), len(tt.notice.Mounts), tt.slots)
			}
		})
	}
}

func TestNewArenaNilSpec(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewArena(w, nil, nil, ecs.NewQueue[component.VesselSpawned]()); err == nil {
		t.Fatalf("expected error for nil vessels")
	}
}
