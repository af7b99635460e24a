package ecs

import "github.com/milk9111/broadside/ecs/component"

// DestroyRecursive destroys e and every entity whose Parent chain leads to
// it. It returns the number of entities destroyed.
func DestroyRecursive(w *World, e Entity) int {
	if !w.IsAlive(e) {
		return 0
	}
	destroyed := 0
	for _, child := range Children(w, e) {
		destroyed += DestroyRecursive(w, child)
	}
	if w.DestroyEntity(e) {
		destroyed++
	}
	return destroyed
}

// Children returns the live entities whose Parent is e.
func Children(w *World, e Entity) []Entity {
	var out []Entity
	ForEach(w, component.ParentComponent.Kind(), func(child Entity, p *component.Parent) {
		if Entity(p.Entity) == e {
			out = append(out, child)
		}
	})
	return out
}
