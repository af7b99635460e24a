package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/broadside/common"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
	"github.com/milk9111/broadside/prefabs"
)

// Targeter picks the point an enemy turret shoots at.
type Targeter interface {
	Target(w *ecs.World, turret ecs.Entity, from common.Vec2) (common.Vec2, bool)
}

// PlayerTargeter aims at the single player's position.
type PlayerTargeter struct{}

func (PlayerTargeter) Target(w *ecs.World, _ ecs.Entity, _ common.Vec2) (common.Vec2, bool) {
	_, t, ok := playerTransform(w)
	if !ok {
		return common.Vec2{}, false
	}
	return t.Position(), true
}

func playerTransform(w *ecs.World) (ecs.Entity, *component.Transform, bool) {
	player, _, err := ecs.Single(w, component.PlayerTagComponent.Kind())
	if err != nil {
		return 0, nil, false
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	return player, t, true
}

var scriptInputs = []string{"turret_x", "turret_y", "player_x", "player_y", "player_vx", "player_vy", "speed", "lead"}

// ScriptTargeter runs a tengo script to lead the player. It falls back to
// the player's position when the script fails.
type ScriptTargeter struct {
	compiled *tengo.Compiled
	weapons  *Weapons
	lead     float64
	diag     *diagnostics
	fallback PlayerTargeter
}

// NewScriptTargeter compiles src. Lead scales how far ahead of the player
// the script aims; 0 aims straight at it.
func NewScriptTargeter(src []byte, weapons *Weapons, lead float64, logger *log.Logger) (*ScriptTargeter, error) {
	st := &ScriptTargeter{weapons: weapons, lead: lead, diag: newDiagnostics(logger)}
	if err := st.Reload(src); err != nil {
		return nil, err
	}
	return st, nil
}

// LoadScriptTargeter compiles prefabs/scripts/target.tengo.
func LoadScriptTargeter(weapons *Weapons, lead float64, logger *log.Logger) (*ScriptTargeter, error) {
	src, err := prefabs.LoadScript(prefabs.TargetScript)
	if err != nil {
		return nil, fmt.Errorf("targeting: load %s: %w", prefabs.TargetScript, err)
	}
	return NewScriptTargeter(src, weapons, lead, logger)
}

// Reload recompiles the script, keeping the previous one on error.
func (st *ScriptTargeter) Reload(src []byte) error {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	for _, name := range scriptInputs {
		if err := script.Add(name, 0.0); err != nil {
			return fmt.Errorf("targeting: add %s: %w", name, err)
		}
	}
	if err := script.Add("has_player", false); err != nil {
		return fmt.Errorf("targeting: add has_player: %w", err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("targeting: compile: %w", err)
	}
	st.compiled = compiled
	return nil
}

func (st *ScriptTargeter) Target(w *ecs.World, turret ecs.Entity, from common.Vec2) (common.Vec2, bool) {
	if st == nil || st.compiled == nil {
		return st.fallback.Target(w, turret, from)
	}

	inputs := map[string]any{
		"turret_x":   from.X,
		"turret_y":   from.Y,
		"has_player": false,
		"player_x":   0.0,
		"player_y":   0.0,
		"player_vx":  0.0,
		"player_vy":  0.0,
		"speed":      0.0,
		"lead":       st.lead,
	}
	if player, t, ok := playerTransform(w); ok {
		inputs["has_player"] = true
		inputs["player_x"] = t.X
		inputs["player_y"] = t.Y
		if stats, ok := ecs.Get(w, player, component.ShipStatsComponent.Kind()); ok {
			v := t.Forward().Scale(stats.CurrentSpeed)
			inputs["player_vx"] = v.X
			inputs["player_vy"] = v.Y
		}
	}
	if tr, ok := ecs.Get(w, turret, component.TurretComponent.Kind()); ok {
		if spec, ok := st.weapons.Get(tr.Type); ok {
			inputs["speed"] = spec.Speed
		}
	}

	for name, v := range inputs {
		if err := st.compiled.Set(name, v); err != nil {
			st.diag.warn("set", "targeting: set %s: %v", name, err)
			return st.fallback.Target(w, turret, from)
		}
	}
	if err := st.compiled.Run(); err != nil {
		st.diag.warn("run", "targeting: script error: %v", err)
		return st.fallback.Target(w, turret, from)
	}
	st.diag.clear("run")

	if !st.compiled.Get("has_target").Bool() {
		return common.Vec2{}, false
	}
	return common.V(st.compiled.Get("target_x").Float(), st.compiled.Get("target_y").Float()), true
}
