package ecs

// Queue is a FIFO of ephemeral messages passed from one pipeline stage to
// the next. Exactly one consumer drains it per tick and the pipeline resets
// whatever is left at the end of the tick, so messages never outlive the
// tick that produced them.
type Queue[T any] struct {
	items []T
}

// NewQueue creates an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push adds a message.
func (q *Queue[T]) Push(evt T) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all messages and clears the queue.
func (q *Queue[T]) Drain() []T {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending messages.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Reset drops pending messages.
func (q *Queue[T]) Reset() {
	if q == nil {
		return
	}
	q.items = nil
}
