package ecs

import "github.com/milk9111/broadside/ecs/component"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, the simulation clock and the
// attached physics world.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	clock    Clock

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle.
// It reports false when e was already dead.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Clock returns the simulation clock shared by every timer.
func (w *World) Clock() *Clock {
	if w == nil {
		return nil
	}
	return &w.clock
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent attaches (or replaces) the component of the given kind.
func (w *World) AddComponent(e Entity, kind component.AnyKind, value any) error {
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

// RemoveComponent detaches a component, reporting whether it was present.
func (w *World) RemoveComponent(e Entity, kind component.AnyKind) bool {
	if !w.IsAlive(e) || kind == nil {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

// HasComponent reports whether e carries a component of the given kind.
func (w *World) HasComponent(e Entity, kind component.AnyKind) bool {
	if !w.IsAlive(e) || kind == nil {
		return false
	}
	return w.store(kind.ID(), false).Has(e.id())
}

// GetComponent returns the raw component value of the given kind.
func (w *World) GetComponent(e Entity, kind component.AnyKind) (any, bool) {
	if !w.IsAlive(e) || kind == nil {
		return nil, false
	}
	v := w.store(kind.ID(), false).Get(e.id())
	return v, v != nil
}

// Query returns the live entities carrying every given kind. The result is
// a fresh slice and stays valid while the caller mutates the world.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate the smallest set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	var out []Entity
	for _, id := range sets[smallest].snapshot() {
		matched := true
		for i, s := range sets {
			if i != smallest && !s.Has(id) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity carrying kind.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	if w == nil || kind == nil {
		return 0, false
	}
	for _, id := range w.store(kind.ID(), false).snapshot() {
		if e, ok := w.entities.current(id); ok {
			return e, true
		}
	}
	return 0, false
}

// Update runs the systems once in order.
func (w *World) Update(systems ...System) {
	for _, s := range systems {
		if s != nil {
			s.Update(w)
		}
	}
}
