package ecs

import (
	"slices"
	"testing"
)

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(*World) { *r.log = append(*r.log, r.name) }

func TestSchedulerRunsStagesInOrder(t *testing.T) {
	var log []string
	s := NewScheduler(
		Stage{Name: "a", Systems: []System{recordSystem{"a1", &log}, recordSystem{"a2", &log}}},
		Stage{Name: "b", Systems: []System{nil, recordSystem{"b1", &log}}},
	)
	s.Add(Stage{Name: "c", Systems: []System{recordSystem{"c1", &log}}})
	s.OnTickEnd(func() { log = append(log, "reset") })

	s.Update(NewWorld())

	want := []string{"a1", "a2", "b1", "c1", "reset"}
	if !slices.Equal(log, want) {
		t.Fatalf("got %v, want %v", log, want)
	}
	if got := len(s.Stages()); got != 3 {
		t.Fatalf("expected 3 stages, got %d", got)
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue[int]()
	q.Push(1)
	q.Push(2)
	if q.Len() != 2 {
		t.Fatalf("expected 2 pending, got %d", q.Len())
	}
	if got := q.Drain(); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("Drain() = %v", got)
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Fatalf("queue should be empty after drain")
	}

	q.Push(3)
	q.Reset()
	if q.Len() != 0 {
		t.Fatalf("Reset left %d messages", q.Len())
	}

	var nilQueue *Queue[int]
	nilQueue.Push(1)
	if nilQueue.Len() != 0 {
		t.Fatalf("nil queue should stay empty")
	}
}

func TestClockAdvance(t *testing.T) {
	var c Clock
	c.Advance(0.5)
	c.Advance(-1)
	if c.Tick != 2 || c.Delta != 0 || c.Elapsed != 0.5 {
		t.Fatalf("unexpected clock %+v", c)
	}
}
