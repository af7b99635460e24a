package system

import (
	"bytes"
	"log"
	"testing"

	"github.com/milk9111/broadside/common"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
	"github.com/milk9111/broadside/prefabs"
	"github.com/stretchr/testify/require"
)

const tickDT = 1.0 / common.TickRate

type combat struct {
	t     *testing.T
	w     *ecs.World
	p     *Pipeline
	input *StaticInput
	logs  *bytes.Buffer
}

func newCombat(t *testing.T) *combat {
	t.Helper()
	return newCombatWith(t, Options{})
}

// newCombatWith fills in the logger, weapons and a static input source
// when opts leaves them unset.
func newCombatWith(t *testing.T, opts Options) *combat {
	t.Helper()

	logs := &bytes.Buffer{}
	if opts.Logger == nil {
		opts.Logger = log.New(logs, "", 0)
	}
	if opts.Weapons == nil {
		spec, err := prefabs.LoadWeapons()
		require.NoError(t, err)
		opts.Weapons = NewWeapons(spec)
	}
	input, ok := opts.Input.(*StaticInput)
	if !ok || input == nil {
		input = &StaticInput{}
		opts.Input = input
	}

	w := ecs.NewWorld()
	p, err := NewPipeline(w, opts)
	require.NoError(t, err)

	return &combat{t: t, w: w, p: p, input: input, logs: logs}
}

// vessel creates a collidable vessel and announces it so its loadout is
// mounted on the next tick.
func (c *combat) vessel(faction component.Faction, x, y, health float64, loadout ...component.TurretType) ecs.Entity {
	c.t.Helper()
	w := c.w
	e := ecs.CreateEntity(w)
	require.NoError(c.t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}))
	require.NoError(c.t, ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{AY: -32, BY: 32, Radius: 40}))
	layer := component.VesselLayer(faction)
	require.NoError(c.t, ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &layer))
	if faction == component.FactionPlayer {
		require.NoError(c.t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	} else {
		require.NoError(c.t, ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{}))
	}

	mounts := make([]component.MountOffset, len(loadout))
	c.p.Events.VesselSpawns.Push(component.VesselSpawned{
		Entity:     uint64(e),
		Faction:    faction,
		StatsScale: 1,
		Loadout:    loadout,
		Mounts:     mounts,
		MaxHealth:  health,
		BarScale:   1,
	})
	return e
}

// projectile places a stationary projectile directly in the world.
func (c *combat) projectile(origin ecs.Entity, x, y, damage float64, mask uint32) ecs.Entity {
	c.t.Helper()
	w := c.w
	e := ecs.CreateEntity(w)
	require.NoError(c.t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	require.NoError(c.t, ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Type:     component.ProjectileCannon,
		Origin:   uint64(origin),
		Damage:   damage,
		Lifetime: component.NewTimer(10, component.TimerOnce),
	}))
	require.NoError(c.t, ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{BY: 6, Radius: 3}))
	layer := component.ProjectileLayerFor(mask)
	require.NoError(c.t, ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &layer))
	return e
}

func (c *combat) tick(n int) {
	for i := 0; i < n; i++ {
		c.p.Tick(c.w, tickDT)
	}
}

func (c *combat) health(e ecs.Entity) *component.Health {
	h, _ := ecs.Get(c.w, e, component.HealthComponent.Kind())
	return h
}

func (c *combat) projectiles(kind component.ProjectileType) []ecs.Entity {
	var out []ecs.Entity
	ecs.ForEach(c.w, component.ProjectileComponent.Kind(), func(e ecs.Entity, p *component.Projectile) {
		if p.Type == kind {
			out = append(out, e)
		}
	})
	return out
}

func (c *combat) count(kind component.AnyKind) int {
	return len(c.w.Query(kind))
}

// fixedTarget aims every enemy turret at one point.
type fixedTarget common.Vec2

func (f fixedTarget) Target(*ecs.World, ecs.Entity, common.Vec2) (common.Vec2, bool) {
	return common.Vec2(f), true
}
