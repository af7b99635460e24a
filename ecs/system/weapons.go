package system

import (
	"github.com/milk9111/broadside/ecs/component"
	"github.com/milk9111/broadside/prefabs"
)

// Weapons is the weapon tuning shared by the turret and projectile systems.
// Set swaps it atomically between ticks for hot reload.
type Weapons struct {
	spec *prefabs.WeaponsSpec
}

func NewWeapons(spec *prefabs.WeaponsSpec) *Weapons {
	return &Weapons{spec: spec}
}

func (w *Weapons) Set(spec *prefabs.WeaponsSpec) {
	if w == nil || spec == nil {
		return
	}
	w.spec = spec
}

func (w *Weapons) Spec() *prefabs.WeaponsSpec {
	if w == nil {
		return nil
	}
	return w.spec
}

func (w *Weapons) Get(t component.TurretType) (*prefabs.WeaponSpec, bool) {
	if w == nil {
		return nil, false
	}
	return w.spec.Weapon(t)
}

// Cooldown returns the base cooldown scaled by statsScale.
func (w *Weapons) Cooldown(t component.TurretType, statsScale float64) float64 {
	spec, ok := w.Get(t)
	if !ok {
		return 0
	}
	if statsScale <= 0 {
		statsScale = 1
	}
	return spec.Cooldown / statsScale
}

func (w *Weapons) Explosion() prefabs.AnimationSpec {
	if w == nil || w.spec == nil {
		return prefabs.AnimationSpec{}
	}
	return w.spec.Explosion
}
