package ecs

// Stage is a named, ordered group of systems.
type Stage struct {
	Name    string
	Systems []System
}

// Scheduler runs stages in a fixed order. Within a tick every stage runs to
// completion before the next starts; there is no concurrency between them.
type Scheduler struct {
	stages []Stage
	resets []func()
}

func NewScheduler(stages ...Stage) *Scheduler {
	copied := append([]Stage(nil), stages...)
	return &Scheduler{stages: copied}
}

// Add appends a stage.
func (s *Scheduler) Add(stage Stage) {
	s.stages = append(s.stages, stage)
}

// OnTickEnd registers a hook run after the last stage, typically a queue reset.
func (s *Scheduler) OnTickEnd(fn func()) {
	if fn == nil {
		return
	}
	s.resets = append(s.resets, fn)
}

// Update runs every stage once.
func (s *Scheduler) Update(w *World) {
	for _, stage := range s.stages {
		for _, system := range stage.Systems {
			if system != nil {
				system.Update(w)
			}
		}
	}
	for _, reset := range s.resets {
		reset()
	}
}

// Stages returns a copy of the configured stages.
func (s *Scheduler) Stages() []Stage {
	stages := make([]Stage, 0, len(s.stages))
	return append(stages, s.stages...)
}
