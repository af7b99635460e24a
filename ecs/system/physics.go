package system

import (
	"github.com/milk9111/broadside/ecs"
)

// PhysicsSystem mirrors colliders into the world's PhysicsWorld so overlap
// queries see this tick's positions.
type PhysicsSystem struct {
	physics *ecs.PhysicsWorld
}

// NewPhysicsSystem syncs pw, or the world's attached PhysicsWorld when pw
// is nil.
func NewPhysicsSystem(pw *ecs.PhysicsWorld) *PhysicsSystem {
	return &PhysicsSystem{physics: pw}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	pw := ps.physics
	if pw == nil {
		pw = w.PhysicsWorld()
	}
	if pw == nil {
		return
	}
	pw.Sync(w, w.Clock().Delta)
}
