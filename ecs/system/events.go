package system

import (
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
)

// Events holds the per-tick message queues passed between stages.
type Events struct {
	VesselSpawns *ecs.Queue[component.VesselSpawned]
	FireTriggers *ecs.Queue[component.FireTrigger]
	Collisions   *ecs.Queue[component.CollisionEvent]
	Despawns     *ecs.Queue[component.ProjectileDespawned]
}

func NewEvents() *Events {
	return &Events{
		VesselSpawns: ecs.NewQueue[component.VesselSpawned](),
		FireTriggers: ecs.NewQueue[component.FireTrigger](),
		Collisions:   ecs.NewQueue[component.CollisionEvent](),
		Despawns:     ecs.NewQueue[component.ProjectileDespawned](),
	}
}

// Reset drops every pending message. Builders push vessel spawns between
// ticks; they are drained in the intent stage before this runs.
func (e *Events) Reset() {
	e.VesselSpawns.Reset()
	e.FireTriggers.Reset()
	e.Collisions.Reset()
	e.Despawns.Reset()
}
