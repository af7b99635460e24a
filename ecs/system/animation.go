package system

import (
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
)

// AnimationSystem steps animated sprites and retires finished one-shots.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Clock().Delta

	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, a *component.Animation) {
		if !a.Playing {
			return
		}
		a.FrameTimer.Tick(dt)
		if a.FrameTimer.JustFinished() {
			switch {
			case a.Frame+1 < a.FrameCount:
				a.Frame++
			case a.Loop:
				a.Frame = 0
			default:
				a.Playing = false
				if a.DespawnOnFinish {
					ecs.DestroyRecursive(w, e)
					return
				}
			}
		}
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Frame = a.Frame
		}
	})
}
