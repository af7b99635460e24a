package ecs

import (
	"errors"

	"github.com/milk9111/broadside/ecs/component"
)

var (
	// ErrNoEntity is returned by Single when nothing matches.
	ErrNoEntity = errors.New("ecs: no entity matches")
	// ErrMultipleEntities is returned by Single when more than one entity matches.
	ErrMultipleEntities = errors.New("ecs: more than one entity matches")
	// ErrComponentMissing reports a lookup of a component the entity lacks.
	ErrComponentMissing = errors.New("ecs: component missing")
	// ErrEntityNotAlive reports a dangling entity reference.
	ErrEntityNotAlive = component.ErrEntityNotAlive
)

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for i := range w.entities.gen {
		if e, ok := w.entities.current(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	return w.AddComponent(e, kind, value)
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.RemoveComponent(e, kind)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.HasComponent(e, kind)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	value, ok := w.GetComponent(e, kind)
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

// Single resolves the one entity carrying kind. Zero or many matches are
// reported as ErrNoEntity and ErrMultipleEntities so callers can decide how
// to degrade.
func Single[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, error) {
	matches := w.Query(kind)
	switch len(matches) {
	case 0:
		return 0, nil, ErrNoEntity
	case 1:
		v, _ := Get(w, matches[0], kind)
		return matches[0], v, nil
	default:
		return 0, nil, ErrMultipleEntities
	}
}

// ForEach calls fn for every live entity carrying kind. Entities destroyed
// or stripped of the component during iteration are skipped.
func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	for _, e := range w.Query(ka) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.Query(ka, kb, kc) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	for _, e := range w.Query(ka, kb, kc, kd) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		d, okD := Get(w, e, kd)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, a, b, c, d)
	}
}
