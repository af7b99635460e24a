package component

// Parent links a structural child (e.g. a health bar) to the entity it is
// removed with. Entity holds an ecs.Entity.
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()
