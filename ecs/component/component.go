package component

import (
	"errors"
	"sync/atomic"
)

// Errors shared by the ecs package and component helpers.
var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID names one component storage. IDs are process-wide and start at
// 1; the zero ID marks an unregistered kind.
type ComponentID uint32

var lastComponentID atomic.Uint32

// AnyKind lets kinds of different value types share a query argument list.
type AnyKind interface {
	ID() ComponentID
}

// ComponentKind is the typed key of a component storage.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind registers a fresh storage key for T. Two calls for the same
// T yield distinct kinds.
func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(lastComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is what component files export, e.g.
//
//	var HealthComponent = NewComponent[Health]()
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
