package system

import (
	"math"
	"testing"

	"github.com/milk9111/broadside/common"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerThrottleIsClamped(t *testing.T) {
	c := newCombat(t)
	player := c.vessel(component.FactionPlayer, 0, 0, 1000)
	require.NoError(t, ecs.Add(c.w, player, component.ShipStatsComponent.Kind(), &component.ShipStats{
		DeltaSteering: 2, DeltaSpeed: 75, MinSpeed: -100, MaxSpeed: 400,
	}))
	c.input.ThrottleV = 1

	c.tick(common.TickRate * 10)

	stats, _ := ecs.Get(c.w, player, component.ShipStatsComponent.Kind())
	assert.Equal(t, 400.0, stats.CurrentSpeed)
	tr, _ := ecs.Get(c.w, player, component.TransformComponent.Kind())
	assert.Greater(t, tr.Y, 0.0, "ships move along +Y at rotation 0")
	assert.InDelta(t, 0, tr.X, 1e-9)
}

func TestSteeringTurnsCounterClockwise(t *testing.T) {
	c := newCombat(t)
	player := c.vessel(component.FactionPlayer, 0, 0, 1000)
	require.NoError(t, ecs.Add(c.w, player, component.ShipStatsComponent.Kind(), &component.ShipStats{
		DeltaSteering: 2, DeltaSpeed: 75, MinSpeed: -100, MaxSpeed: 400,
	}))
	c.input.SteerV = 1

	c.tick(common.TickRate)

	tr, _ := ecs.Get(c.w, player, component.TransformComponent.Kind())
	assert.InDelta(t, 2.0, tr.Rotation, 1e-9)
}

func TestCoastingBleedsSpeed(t *testing.T) {
	c := newCombat(t)
	player := c.vessel(component.FactionPlayer, 0, 0, 1000)
	require.NoError(t, ecs.Add(c.w, player, component.ShipStatsComponent.Kind(), &component.ShipStats{
		DeltaSpeed: 100, MinSpeed: -150, MaxSpeed: 500, CurrentSpeed: 50, Coasting: true,
	}))

	c.tick(common.TickRate)
	stats, _ := ecs.Get(c.w, player, component.ShipStatsComponent.Kind())
	assert.InDelta(t, 0, stats.CurrentSpeed, 1e-9)

	c.tick(common.TickRate)
	assert.Zero(t, stats.CurrentSpeed, "coasting never reverses")
}

func TestInheritedVelocity(t *testing.T) {
	c := newCombat(t)
	player := c.vessel(component.FactionPlayer, 0, 0, 1000, component.TurretCannon)
	require.NoError(t, ecs.Add(c.w, player, component.ShipStatsComponent.Kind(), &component.ShipStats{
		MinSpeed: -100, MaxSpeed: 400, CurrentSpeed: 200,
	}))
	c.input.Fire = true
	c.input.CursorX, c.input.CursorY = 1000, 0

	c.tick(1)

	shots := c.projectiles(component.ProjectileCannon)
	require.Len(t, shots, 1)
	p, _ := ecs.Get(c.w, shots[0], component.ProjectileComponent.Kind())
	assert.InDelta(t, 0, p.InheritedX, 1e-9)
	assert.InDelta(t, 200, p.InheritedY, 1e-9)

	tr, _ := ecs.Get(c.w, shots[0], component.TransformComponent.Kind())
	assert.InDelta(t, -math.Pi/2, tr.Rotation, 1e-2, "turret faces the cursor")
}
