package system

import (
	"github.com/milk9111/broadside/common"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
)

// TurretDespawnSystem removes turrets whose owner no longer resolves.
type TurretDespawnSystem struct{}

func NewTurretDespawnSystem() *TurretDespawnSystem {
	return &TurretDespawnSystem{}
}

func (s *TurretDespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TurretComponent.Kind(), func(e ecs.Entity, t *component.Turret) {
		if w.IsAlive(ecs.Entity(t.Owner)) {
			return
		}
		ecs.DestroyRecursive(w, e)
	})
}

// TurretPositionSystem keeps turrets on their mount and layered above the
// owner's hull.
type TurretPositionSystem struct{}

func NewTurretPositionSystem() *TurretPositionSystem {
	return &TurretPositionSystem{}
}

func (s *TurretPositionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.TurretComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, t *component.Turret, tr *component.Transform) {
		owner, ok := ecs.Get(w, ecs.Entity(t.Owner), component.TransformComponent.Kind())
		if !ok {
			return
		}
		tr.SetPosition(owner.Local(common.V(t.OffsetX, t.OffsetY)))
		tr.Z = owner.Z + common.TurretZOffset
	})
}

// TurretAimSystem points player turrets at the cursor and enemy turrets at
// the player, every tick and regardless of cooldown.
type TurretAimSystem struct {
	diag *diagnostics
}

func NewTurretAimSystem(opts Options) *TurretAimSystem {
	return &TurretAimSystem{diag: newDiagnostics(opts.logger())}
}

func (s *TurretAimSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	cursor, hasCursor := s.cursor(w)
	_, player, hasPlayer := playerTransform(w)

	ecs.ForEach2(w, component.TurretComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, t *component.Turret, tr *component.Transform) {
		var target common.Vec2
		switch t.Faction {
		case component.FactionPlayer:
			if !hasCursor {
				return
			}
			target = cursor
		case component.FactionEnemy:
			if !hasPlayer {
				return
			}
			target = player.Position()
		default:
			return
		}
		aim(t, tr, target)
	})
}

func (s *TurretAimSystem) cursor(w *ecs.World) (common.Vec2, bool) {
	player, _, err := ecs.Single(w, component.PlayerTagComponent.Kind())
	if err != nil {
		s.diag.warn("player", "turret_aim: no single player: %v", err)
		return common.Vec2{}, false
	}
	s.diag.clear("player")
	in, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return common.Vec2{}, false
	}
	return common.V(in.CursorX, in.CursorY), true
}

// aim sets the turret's rotation so its forward axis faces target.
func aim(t *component.Turret, tr *component.Transform, target common.Vec2) {
	d := target.Sub(tr.Position())
	if d.Len() == 0 {
		return
	}
	dir := d.Perp().Neg()
	t.AimX, t.AimY = dir.X, dir.Y
	tr.Rotation = dir.Angle()
}

// TurretCooldownSystem counts cooling turrets down on the world clock.
type TurretCooldownSystem struct{}

func NewTurretCooldownSystem() *TurretCooldownSystem {
	return &TurretCooldownSystem{}
}

func (s *TurretCooldownSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Clock().Delta

	ecs.ForEach(w, component.TurretComponent.Kind(), func(_ ecs.Entity, t *component.Turret) {
		if t.State != component.CooldownCoolingDown {
			return
		}
		t.Cooldown.Tick(dt)
		if t.Cooldown.Finished() {
			t.State = component.CooldownReady
		}
	})
}

// TurretTriggerSystem emits one FireTrigger per ready turret that wants to
// fire and starts its cooldown.
type TurretTriggerSystem struct {
	triggers *ecs.Queue[component.FireTrigger]
	weapons  *Weapons
	targeter Targeter
	stats    *Stats
	diag     *diagnostics
}

func NewTurretTriggerSystem(triggers *ecs.Queue[component.FireTrigger], weapons *Weapons, stats *Stats, opts Options) *TurretTriggerSystem {
	targeter := opts.Targeter
	if targeter == nil {
		targeter = PlayerTargeter{}
	}
	return &TurretTriggerSystem{
		triggers: triggers,
		weapons:  weapons,
		targeter: targeter,
		stats:    stats,
		diag:     newDiagnostics(opts.logger()),
	}
}

func (s *TurretTriggerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	player, _, playerErr := ecs.Single(w, component.PlayerTagComponent.Kind())
	var input *component.Input
	if playerErr != nil {
		s.diag.warn("player", "turret_trigger: no single player, player turrets hold fire: %v", playerErr)
	} else {
		s.diag.clear("player")
		input, _ = ecs.Get(w, player, component.InputComponent.Kind())
	}

	ecs.ForEach2(w, component.TurretComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, t *component.Turret, tr *component.Transform) {
		if !t.Ready() {
			return
		}

		var target common.Vec2
		var hasTarget bool
		switch t.Faction {
		case component.FactionPlayer:
			if playerErr != nil || input == nil || !input.Fire || ecs.Entity(t.Owner) != player {
				return
			}
			target, hasTarget = common.V(input.CursorX, input.CursorY), true
		case component.FactionEnemy:
			target, hasTarget = s.targeter.Target(w, e, tr.Position())
		default:
			return
		}

		cooldown := s.weapons.Cooldown(t.Type, t.StatsScale)
		if cooldown <= 0 {
			s.diag.warn("weapon:"+t.Type.String(), "turret_trigger: no tuning for %s", t.Type)
			return
		}

		vel := ownerVelocity(w, ecs.Entity(t.Owner))
		s.triggers.Push(component.FireTrigger{
			Turret:     t.Type,
			Origin:     t.Owner,
			Source:     uint64(e),
			X:          tr.X,
			Y:          tr.Y,
			Rotation:   tr.Rotation,
			VelocityX:  vel.X,
			VelocityY:  vel.Y,
			StatsScale: t.StatsScale,
			Layer:      component.ProjectileLayerFor(t.Faction.Opposing()),
			TargetX:    target.X,
			TargetY:    target.Y,
			HasTarget:  hasTarget,
		})

		t.State = component.CooldownCoolingDown
		t.Cooldown = component.NewTimer(cooldown, component.TimerOnce)
		if s.stats != nil {
			s.stats.Triggers++
		}
	})
}

// ownerVelocity is forward times current speed; vessels without ShipStats
// do not move.
func ownerVelocity(w *ecs.World, owner ecs.Entity) common.Vec2 {
	stats, ok := ecs.Get(w, owner, component.ShipStatsComponent.Kind())
	if !ok {
		return common.Vec2{}
	}
	tr, ok := ecs.Get(w, owner, component.TransformComponent.Kind())
	if !ok {
		return common.Vec2{}
	}
	return tr.Forward().Scale(stats.CurrentSpeed)
}
