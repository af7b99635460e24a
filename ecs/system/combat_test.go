package system

import (
	"math"
	"strings"
	"testing"

	"github.com/milk9111/broadside/common"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCannonVolleyOverOneSecond(t *testing.T) {
	c := newCombat(t)
	c.vessel(component.FactionPlayer, 0, 0, 1000, component.TurretCannon)
	c.input.Fire = true
	c.input.CursorX, c.input.CursorY = 0, 1000

	c.tick(60)

	assert.Equal(t, 10, c.p.Stats.Triggers)
	assert.Equal(t, 10, c.p.Stats.Projectiles[component.ProjectileCannon])

	shots := c.projectiles(component.ProjectileCannon)
	require.Len(t, shots, 10)
	for _, e := range shots {
		p, _ := ecs.Get(c.w, e, component.ProjectileComponent.Kind())
		assert.InDelta(t, 1.0, p.Damage, 1e-12)
	}
}

func TestCooldownIsMonotonic(t *testing.T) {
	c := newCombat(t)
	c.vessel(component.FactionPlayer, 0, 0, 1000, component.TurretRocket)
	c.input.Fire = true
	c.input.CursorX, c.input.CursorY = 0, 1000

	c.tick(1)
	turrets := c.w.Query(component.TurretComponent.Kind())
	require.Len(t, turrets, 1)
	turret, _ := ecs.Get(c.w, turrets[0], component.TurretComponent.Kind())
	require.Equal(t, component.CooldownCoolingDown, turret.State)

	prev := turret.Cooldown.Remaining()
	triggers := c.p.Stats.Triggers
	for i := 0; i < 29; i++ {
		c.tick(1)
		if turret.State != component.CooldownCoolingDown {
			break
		}
		r := turret.Cooldown.Remaining()
		assert.LessOrEqual(t, r, prev, "tick %d", i+2)
		prev = r
		assert.Equal(t, triggers, c.p.Stats.Triggers, "fired while cooling down")
	}

	// 0.5s at 60Hz: ready again and firing on tick 31
	c.tick(1)
	assert.Equal(t, triggers+1, c.p.Stats.Triggers)
}

func TestRocketPairIsSymmetric(t *testing.T) {
	c := newCombat(t)
	c.vessel(component.FactionPlayer, 0, 0, 1000, component.TurretRocket)
	c.input.Fire = true
	c.input.CursorX, c.input.CursorY = 0, 1000

	c.tick(1)

	rockets := c.projectiles(component.ProjectileRocket)
	require.Len(t, rockets, 2)
	a, _ := ecs.Get(c.w, rockets[0], component.TransformComponent.Kind())
	b, _ := ecs.Get(c.w, rockets[1], component.TransformComponent.Kind())

	assert.InDelta(t, 0, a.X+b.X, 1e-9, "mirrored across the heading")
	assert.InDelta(t, 10, math.Abs(a.X-b.X), 1e-9)
	assert.InDelta(t, 5, a.Y, 1e-9)
	assert.InDelta(t, 5, b.Y, 1e-9)
	assert.InDelta(t, a.Rotation, b.Rotation, 1e-12)

	pa, _ := ecs.Get(c.w, rockets[0], component.ProjectileComponent.Kind())
	pb, _ := ecs.Get(c.w, rockets[1], component.ProjectileComponent.Kind())
	assert.Equal(t, pa.Damage, pb.Damage)
	assert.Equal(t, 5.0, pa.Damage)
}

func TestAtMostOneHitPerProjectile(t *testing.T) {
	c := newCombat(t)
	player := c.vessel(component.FactionPlayer, -500, 0, 1000)
	first := c.vessel(component.FactionEnemy, 0, 0, 100)
	second := c.vessel(component.FactionEnemy, 0, 10, 100)
	c.projectile(player, 0, 5, 7, component.EnemyLayer)

	c.tick(3)

	assert.Equal(t, 1, c.p.Stats.Hits)
	lost := (100 - c.health(first).Current) + (100 - c.health(second).Current)
	assert.InDelta(t, 7, lost, 1e-12)
	assert.Empty(t, c.projectiles(component.ProjectileCannon), "hit projectile is removed")
}

func TestProjectileSkipsItsOrigin(t *testing.T) {
	c := newCombat(t)
	player := c.vessel(component.FactionPlayer, 0, 0, 1000)
	enemy := c.vessel(component.FactionEnemy, 400, 0, 100)

	// a mask that would accept the origin's own layer
	c.projectile(player, 0, 0, 5, component.PlayerLayer|component.EnemyLayer)
	c.tick(2)
	assert.Equal(t, 0, c.p.Stats.Hits)
	assert.Equal(t, 1000.0, c.health(player).Current)

	c.projectile(player, 400, 0, 5, component.PlayerLayer|component.EnemyLayer)
	c.tick(2)
	assert.Equal(t, 1, c.p.Stats.Hits)
	assert.Equal(t, 95.0, c.health(enemy).Current)
}

func TestFactionExclusivity(t *testing.T) {
	tests := []struct {
		name   string
		target component.Faction
		mask   uint32
		hits   int
	}{
		{"player_shot_vs_player", component.FactionPlayer, component.FactionPlayer.Opposing(), 0},
		{"player_shot_vs_enemy", component.FactionEnemy, component.FactionPlayer.Opposing(), 1},
		{"enemy_shot_vs_enemy", component.FactionEnemy, component.FactionEnemy.Opposing(), 0},
		{"enemy_shot_vs_player", component.FactionPlayer, component.FactionEnemy.Opposing(), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCombat(t)
			// origin is far away so only the layer decides
			origin := c.vessel(component.FactionEnemy, 5000, 5000, 100)
			if tt.target == component.FactionEnemy {
				origin = c.vessel(component.FactionPlayer, 5000, 5000, 100)
			}
			c.vessel(tt.target, 0, 0, 100)
			c.projectile(origin, 0, 0, 1, tt.mask)

			c.tick(2)
			assert.Equal(t, tt.hits, c.p.Stats.Hits)
		})
	}
}

func TestProjectileExpiresOnSchedule(t *testing.T) {
	c := newCombat(t)
	c.vessel(component.FactionPlayer, 0, 0, 1000, component.TurretCannon)
	c.input.Fire = true
	c.input.CursorX, c.input.CursorY = 0, 1000

	c.tick(1)
	c.input.Fire = false
	require.Len(t, c.projectiles(component.ProjectileCannon), 1)

	// spawned on tick 1, aged from tick 2: a 2s lifetime ends on tick 121
	c.tick(119)
	require.Len(t, c.projectiles(component.ProjectileCannon), 1)
	assert.Equal(t, 0, c.p.Stats.Expired)

	c.tick(1)
	assert.Empty(t, c.projectiles(component.ProjectileCannon))
	assert.Equal(t, 1, c.p.Stats.Expired)
}

func TestDamageIsConserved(t *testing.T) {
	c := newCombat(t)
	c.vessel(component.FactionPlayer, 0, 0, 1000, component.TurretCannon)
	enemy := c.vessel(component.FactionEnemy, 0, 600, 10000)
	c.input.Fire = true
	c.input.CursorX, c.input.CursorY = 0, 600

	c.tick(120)

	stats := c.p.Stats
	require.Greater(t, stats.Hits, 0)
	h := c.health(enemy)
	assert.InDelta(t, stats.Damage, h.Max-h.Current, 1e-9)
	assert.InDelta(t, float64(stats.Hits), stats.Damage, 1e-9)
}

func TestLethalHitRemovesTargetNextTick(t *testing.T) {
	c := newCombat(t)
	player := c.vessel(component.FactionPlayer, -500, 0, 1000)
	enemy := c.vessel(component.FactionEnemy, 0, 0, 1)
	c.tick(1)
	require.Len(t, ecs.Children(c.w, enemy), 1, "health bar is a child")
	bar := ecs.Children(c.w, enemy)[0]

	c.projectile(player, 0, 0, 5, component.EnemyLayer)
	c.tick(1)
	require.True(t, c.w.IsAlive(enemy), "removal waits for the next sweep")
	assert.Equal(t, -4.0, c.health(enemy).Current)

	c.tick(1)
	assert.False(t, c.w.IsAlive(enemy))
	assert.False(t, c.w.IsAlive(bar), "health bar goes with its owner")
	assert.Equal(t, 1, c.p.Stats.Kills)
}

func TestOrphanedTurretsAreRemoved(t *testing.T) {
	tests := []struct {
		name    string
		faction component.Faction
		loadout []component.TurretType
		// ticks until every turret is ready to fire again
		reload int
	}{
		{"player", component.FactionPlayer, []component.TurretType{
			component.TurretRocket, component.TurretRocket, component.TurretRocket,
			component.TurretCannon, component.TurretCannon, component.TurretCannon,
		}, 6},
		{"enemy", component.FactionEnemy, []component.TurretType{component.TurretMediumRocket}, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCombat(t)
			if tt.faction == component.FactionEnemy {
				c.vessel(component.FactionPlayer, 0, 600, 1000)
			}
			owner := c.vessel(tt.faction, 0, 0, 1000, tt.loadout...)
			c.input.Fire = true
			c.input.CursorX, c.input.CursorY = 0, 1000

			c.tick(1)
			require.Equal(t, len(tt.loadout), c.count(component.TurretComponent.Kind()))
			require.Positive(t, c.p.Stats.Triggers)

			c.tick(tt.reload - 1)
			triggers := c.p.Stats.Triggers

			ecs.DestroyRecursive(c.w, owner)
			c.tick(1)
			assert.Equal(t, 0, c.count(component.TurretComponent.Kind()))
			assert.Equal(t, triggers, c.p.Stats.Triggers, "orphaned turrets must not fire")
		})
	}
}

func TestEmptyLoadoutSlotsAreSkipped(t *testing.T) {
	c := newCombat(t)
	c.vessel(component.FactionPlayer, 0, 0, 1000, component.TurretNone, component.TurretCannon, component.TurretNone)
	c.tick(1)
	assert.Equal(t, 1, c.count(component.TurretComponent.Kind()))
}

func TestMediumRocketVolley(t *testing.T) {
	c := newCombat(t)
	c.vessel(component.FactionPlayer, 0, 600, 1000)
	c.vessel(component.FactionEnemy, 0, 0, 1000, component.TurretMediumRocket)

	c.tick(1)

	volley := c.projectiles(component.ProjectileMediumRocket)
	require.Len(t, volley, 10)

	type shot struct{ rot, rate float64 }
	var shots []shot
	for _, e := range volley {
		p, _ := ecs.Get(c.w, e, component.ProjectileComponent.Kind())
		tr, _ := ecs.Get(c.w, e, component.TransformComponent.Kind())
		// 600 units at 600 units/s
		assert.InDelta(t, 1.0, p.Lifetime.Duration, 1e-9)
		assert.InDelta(t, -2*tr.Rotation/p.Lifetime.Duration, p.AngularRate, 1e-9)
		shots = append(shots, shot{tr.Rotation, p.AngularRate})
	}
	for _, s := range shots {
		mirrored := false
		for _, o := range shots {
			if math.Abs(s.rot+o.rot) < 1e-9 && math.Abs(s.rate+o.rate) < 1e-9 {
				mirrored = true
			}
		}
		assert.True(t, mirrored, "shot at %.3f has no mirror", s.rot)
	}
}

func TestMediumRocketVolleyConvergesOnTarget(t *testing.T) {
	tests := []struct {
		name   string
		target common.Vec2
	}{
		{"ahead", common.V(0, 600)},
		{"off_axis", common.V(300, 600)},
		{"behind", common.V(-400, -300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCombatWith(t, Options{Targeter: fixedTarget(tt.target)})
			c.vessel(component.FactionEnemy, 0, 0, 1000, component.TurretMediumRocket)

			// every rocket of the first volley expires on the same tick
			for i := 0; i < 2*common.TickRate && c.p.Stats.Explosions == 0; i++ {
				c.tick(1)
			}
			require.Equal(t, 10, c.p.Stats.Explosions)

			var landed int
			ecs.ForEach2(c.w, component.ExplosionComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Explosion, tr *component.Transform) {
				assert.InDelta(t, 0, tr.Position().Dist(tt.target), 1, "rocket ended at (%.1f, %.1f)", tr.X, tr.Y)
				landed++
			})
			assert.Equal(t, 10, landed)
		})
	}
}

func TestRocketExpiryLeavesExplosion(t *testing.T) {
	c := newCombat(t)
	c.vessel(component.FactionPlayer, 0, 0, 1000, component.TurretRocket)
	c.input.Fire = true
	c.input.CursorX, c.input.CursorY = 0, 1000

	c.tick(1)
	c.input.Fire = false
	c.tick(120)

	assert.Equal(t, 2, c.p.Stats.Explosions)
	assert.Equal(t, 2, c.count(component.ExplosionComponent.Kind()))

	// 8 frames at 0.075s
	c.tick(40)
	assert.Equal(t, 0, c.count(component.ExplosionComponent.Kind()))
}

func TestMissingPlayerIsLoggedOnce(t *testing.T) {
	c := newCombat(t)
	c.vessel(component.FactionEnemy, 0, 0, 1000)

	c.tick(5)

	assert.Equal(t, 1, strings.Count(c.logs.String(), "turret_trigger: no single player"))
	assert.Equal(t, 1, strings.Count(c.logs.String(), "input: no single player"))
}

func TestHealthBarMirrorsHealth(t *testing.T) {
	c := newCombat(t)
	player := c.vessel(component.FactionPlayer, -500, 0, 1000)
	enemy := c.vessel(component.FactionEnemy, 0, 0, 100)
	c.tick(1)

	c.projectile(player, 0, 0, 25, component.EnemyLayer)
	c.tick(1)

	bars := ecs.Children(c.w, enemy)
	require.Len(t, bars, 1)
	bar, _ := ecs.Get(c.w, bars[0], component.HealthBarComponent.Kind())
	assert.True(t, bar.Visible)
	assert.InDelta(t, 0.75, bar.Fill, 1e-12)
}
