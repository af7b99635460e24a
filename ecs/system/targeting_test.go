package system

import (
	"bytes"
	"log"
	"testing"

	"github.com/milk9111/broadside/common"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
	"github.com/milk9111/broadside/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func targetWorld(t *testing.T, speed float64) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	player := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 600}))
	require.NoError(t, ecs.Add(w, player, component.ShipStatsComponent.Kind(), &component.ShipStats{CurrentSpeed: speed}))

	turret := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, turret, component.TurretComponent.Kind(), &component.Turret{Type: component.TurretMediumRocket, Faction: component.FactionEnemy}))
	return w, turret
}

func TestScriptTargeter(t *testing.T) {
	spec, err := prefabs.LoadWeapons()
	require.NoError(t, err)
	weapons := NewWeapons(spec)

	tests := []struct {
		name  string
		speed float64
		lead  float64
		want  common.Vec2
	}{
		{"no_lead", 100, 0, common.V(0, 600)},
		{"stationary_player", 0, 1, common.V(0, 600)},
		// 600 units away at 600 units/s: one second of player travel
		{"leads_moving_player", 100, 1, common.V(0, 700)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := LoadScriptTargeter(weapons, tt.lead, log.New(&bytes.Buffer{}, "", 0))
			require.NoError(t, err)

			w, turret := targetWorld(t, tt.speed)
			got, ok := st.Target(w, turret, common.V(0, 0))
			require.True(t, ok)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestScriptTargeterWithoutPlayer(t *testing.T) {
	spec, err := prefabs.LoadWeapons()
	require.NoError(t, err)

	st, err := LoadScriptTargeter(NewWeapons(spec), 1, log.New(&bytes.Buffer{}, "", 0))
	require.NoError(t, err)

	_, ok := st.Target(ecs.NewWorld(), 0, common.V(0, 0))
	assert.False(t, ok)
}

func TestScriptTargeterRejectsBadScript(t *testing.T) {
	_, err := NewScriptTargeter([]byte("target_x := ("), nil, 0, nil)
	assert.Error(t, err)

	st, err := NewScriptTargeter([]byte("has_target := true\ntarget_x := 1.0\ntarget_y := 2.0\n"), nil, 0, nil)
	require.NoError(t, err)
	require.Error(t, st.Reload([]byte("has_target := (")))

	// the previous script keeps running
	got, ok := st.Target(ecs.NewWorld(), 0, common.V(0, 0))
	require.True(t, ok)
	assert.Equal(t, common.V(1, 2), got)
}

func TestPlayerTargeter(t *testing.T) {
	w, turret := targetWorld(t, 0)
	got, ok := PlayerTargeter{}.Target(w, turret, common.Vec2{})
	require.True(t, ok)
	assert.Equal(t, common.V(0, 600), got)
}
