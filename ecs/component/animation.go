package component

// Animation steps a sprite's frame on a repeating timer.
type Animation struct {
	FrameCount int
	Loop       bool
	Frame      int
	Playing    bool
	// destroy the entity after the last frame of a non-looping animation
	DespawnOnFinish bool

	FrameTimer Timer
}

// NewAnimation builds an animation advancing fps frames per second.
func NewAnimation(frames int, fps float64, loop bool) Animation {
	d := 0.0
	if fps > 0 {
		d = 1 / fps
	}
	return Animation{
		FrameCount: frames,
		Loop:       loop,
		Playing:    true,
		FrameTimer: NewTimer(d, TimerRepeating),
	}
}

var AnimationComponent = NewComponent[Animation]()
