package ecs

import "fmt"

// Entity packs a slot id (low half) and the generation the slot had when the
// handle was issued (high half). Destroying an entity bumps its slot's
// generation, so every older handle to that slot stops resolving.
type Entity uint64

type entityID uint32
type generation uint32

const (
	idMask   = 1<<32 - 1
	genShift = 32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(id) | uint64(gen)<<genShift)
}

func (e Entity) id() entityID {
	return entityID(uint64(e) & idMask)
}

func (e Entity) generation() generation {
	return generation(uint64(e) >> genShift)
}

// String formats the handle as slot:generation, e.g. "12:3".
func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.id(), e.generation())
}

// Valid reports whether e was ever issued by a world. Slot 0 is never used.
func (e Entity) Valid() bool {
	return e.id() != 0
}
