package system

import (
	"github.com/milk9111/broadside/common"
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
)

// HealthBarSystem mirrors owner health into health bars. It only reads
// Health.
type HealthBarSystem struct{}

func NewHealthBarSystem() *HealthBarSystem {
	return &HealthBarSystem{}
}

func (s *HealthBarSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.HealthBarComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, bar *component.HealthBar, t *component.Transform) {
		owner := ecs.Entity(bar.Owner)
		health, ok := ecs.Get(w, owner, component.HealthComponent.Kind())
		if !ok {
			bar.Visible = false
			return
		}
		bar.Visible = true
		bar.Fill = clamp(health.Ratio(), 0, 1)
		if ot, ok := ecs.Get(w, owner, component.TransformComponent.Kind()); ok {
			t.X = ot.X + bar.OffsetX
			t.Y = ot.Y + bar.OffsetY
			// above the owner's turrets
			t.Z = ot.Z + 2*common.TurretZOffset
		}
	})
}
