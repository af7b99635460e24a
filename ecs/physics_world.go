package ecs

import (
	"iter"
	"log"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/broadside/ecs/component"
)

// minIndexStep is the smallest step handed to the space; cp skips Step(0)
// entirely, which would leave the shape index stale.
const minIndexStep = 1e-6

// PhysicsWorld mirrors collidable entities into a Chipmunk space as
// kinematic sensors and answers overlap queries against it. It never
// resolves contacts; positions are owned by the ECS.
type PhysicsWorld struct {
	space  *cp.Space
	logger *log.Logger

	bodies        map[Entity]*physicsBody
	shapeToEntity map[*cp.Shape]Entity

	queryBody *cp.Body
}

type physicsBody struct {
	body     *cp.Body
	shape    *cp.Shape
	collider component.Collider
}

// NewPhysicsWorld creates an empty space. A nil logger logs to log.Default().
func NewPhysicsWorld(logger *log.Logger) *PhysicsWorld {
	if logger == nil {
		logger = log.Default()
	}
	space := cp.NewSpace()
	space.Iterations = 1
	return &PhysicsWorld{
		space:         space,
		logger:        logger,
		bodies:        make(map[Entity]*physicsBody),
		shapeToEntity: make(map[*cp.Shape]Entity),
		queryBody:     cp.NewKinematicBody(),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Len returns the number of registered colliders.
func (pw *PhysicsWorld) Len() int {
	if pw == nil {
		return 0
	}
	return len(pw.bodies)
}

// Sync registers every entity carrying Collider, Transform and
// CollisionLayer, moves existing bodies to their transforms, drops
// entities that died or lost their collider, and refreshes the index.
func (pw *PhysicsWorld) Sync(w *World, dt float64) {
	if pw == nil || w == nil {
		return
	}
	pw.cleanup(w)

	ForEach3(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), component.CollisionLayerComponent.Kind(),
		func(e Entity, c *component.Collider, t *component.Transform, layer *component.CollisionLayer) {
			pb := pw.bodies[e]
			if pb != nil && pb.collider != *c {
				pw.remove(e)
				pb = nil
			}
			if pb == nil {
				pb = pw.add(e, *c)
			}
			pb.body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
			pb.body.SetAngle(t.Rotation)
			pb.shape.SetFilter(filterFor(*layer))
		})

	if dt < minIndexStep {
		dt = minIndexStep
	}
	pw.space.Step(dt)
}

// Overlaps yields the entities whose colliders overlap collider placed at
// (x, y) with the given rotation. Candidates rejected by filter and the
// exclude entity are never yielded. Results are ordered by entity so the
// first candidate is stable across runs.
func (pw *PhysicsWorld) Overlaps(collider component.Collider, x, y, rotation float64, filter component.CollisionLayer, exclude Entity) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		if pw == nil || pw.space == nil {
			return
		}
		pw.queryBody.SetPosition(cp.Vector{X: x, Y: y})
		pw.queryBody.SetAngle(rotation)
		shape := newCapsule(pw.queryBody, collider)
		shape.SetSensor(true)
		shape.SetFilter(filterFor(filter))

		var hits []Entity
		pw.space.ShapeQuery(shape, func(other *cp.Shape, _ *cp.ContactPointSet) {
			e, ok := pw.shapeToEntity[other]
			if !ok || e == exclude {
				return
			}
			if !slices.Contains(hits, e) {
				hits = append(hits, e)
			}
		})
		slices.Sort(hits)
		for _, e := range hits {
			if !yield(e) {
				return
			}
		}
	}
}

// Remove drops an entity's body from the space.
func (pw *PhysicsWorld) Remove(e Entity) {
	if pw == nil {
		return
	}
	pw.remove(e)
}

func (pw *PhysicsWorld) add(e Entity, c component.Collider) *physicsBody {
	body := cp.NewKinematicBody()
	shape := newCapsule(body, c)
	shape.SetSensor(true)
	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pb := &physicsBody{body: body, shape: shape, collider: c}
	pw.bodies[e] = pb
	pw.shapeToEntity[shape] = e
	return pb
}

func (pw *PhysicsWorld) remove(e Entity) {
	pb, ok := pw.bodies[e]
	if !ok {
		return
	}
	if pb.shape != nil {
		delete(pw.shapeToEntity, pb.shape)
		if pw.space.ContainsShape(pb.shape) {
			pw.space.RemoveShape(pb.shape)
		}
	}
	if pb.body != nil && pw.space.ContainsBody(pb.body) {
		pw.space.RemoveBody(pb.body)
	}
	delete(pw.bodies, e)
}

func (pw *PhysicsWorld) cleanup(w *World) {
	for e := range pw.bodies {
		if w.IsAlive(e) && w.HasComponent(e, component.ColliderComponent.Kind()) &&
			w.HasComponent(e, component.TransformComponent.Kind()) &&
			w.HasComponent(e, component.CollisionLayerComponent.Kind()) {
			continue
		}
		pw.remove(e)
	}
}

func newCapsule(body *cp.Body, c component.Collider) *cp.Shape {
	s := c.Scaled()
	return cp.NewSegment(body, cp.Vector{X: s.AX, Y: s.AY}, cp.Vector{X: s.BX, Y: s.BY}, s.Radius)
}

func filterFor(layer component.CollisionLayer) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, uint(layer.Layer), uint(layer.Mask))
}
