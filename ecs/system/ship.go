package system

import (
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
)

// PlayerControlSystem maps the player's Input onto its ShipStats.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (s *PlayerControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Clock().Delta

	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), component.ShipStatsComponent.Kind(),
		func(_ ecs.Entity, _ *component.PlayerTag, in *component.Input, stats *component.ShipStats) {
			stats.Steering = in.Steer
			if in.ToggleCoast {
				stats.Coasting = !stats.Coasting
			}

			speed := stats.CurrentSpeed + in.Throttle*stats.DeltaSpeed*dt
			if in.Throttle == 0 && stats.Coasting && speed != 0 {
				reduction := stats.DeltaSpeed / 2 * dt
				if speed > 0 {
					speed = max(speed-reduction, 0)
				} else {
					speed = min(speed+reduction, 0)
				}
			}
			stats.CurrentSpeed = clamp(speed, stats.MinSpeed, stats.MaxSpeed)
		})
}

// ShipMotionSystem steers ships and moves them along their forward axis.
type ShipMotionSystem struct{}

func NewShipMotionSystem() *ShipMotionSystem {
	return &ShipMotionSystem{}
}

func (s *ShipMotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Clock().Delta

	ecs.ForEach2(w, component.ShipStatsComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, stats *component.ShipStats, t *component.Transform) {
			t.Rotation += stats.DeltaSteering * stats.Steering * dt
			t.SetPosition(t.Position().Add(t.Forward().Scale(stats.CurrentSpeed * dt)))
		})
}

func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return v
	}
	return min(max(v, lo), hi)
}
