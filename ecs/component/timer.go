package component

// timerEpsilon is the drift tolerance on completion. Summing fixed dt steps
// lands a hair under exact totals (six 1/60s ticks sum below 0.1s), so
// Elapsed within 1e-9s of Duration counts as done. It is far below one
// tick; nothing finishes a tick early.
const timerEpsilon = 1e-9

type TimerMode uint8

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts elapsed seconds toward Duration. It is advanced only by the
// world clock delta. A timer finishes on the first Tick where Elapsed reaches
// Duration, less the timerEpsilon drift tolerance, and never before.
type Timer struct {
	Duration float64
	Elapsed  float64
	Mode     TimerMode

	finished     bool
	justFinished bool
}

func NewTimer(duration float64, mode TimerMode) Timer {
	return Timer{Duration: duration, Mode: mode}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	t.justFinished = false
	if dt < 0 {
		dt = 0
	}
	if t.Mode == TimerOnce && t.finished {
		return
	}
	t.Elapsed += dt
	if t.Elapsed < t.Duration-timerEpsilon {
		return
	}
	t.justFinished = true
	t.finished = true
	switch t.Mode {
	case TimerRepeating:
		if t.Duration > 0 {
			for t.Elapsed >= t.Duration-timerEpsilon {
				t.Elapsed -= t.Duration
			}
			if t.Elapsed < 0 {
				t.Elapsed = 0
			}
		} else {
			t.Elapsed = 0
		}
	default:
		t.Elapsed = t.Duration
	}
}

// Finished reports whether the timer has completed at least once.
func (t *Timer) Finished() bool { return t.finished }

// JustFinished reports whether the last Tick completed the timer.
func (t *Timer) JustFinished() bool { return t.justFinished }

// Fraction is Elapsed/Duration in [0,1].
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	f := t.Elapsed / t.Duration
	if f > 1 {
		return 1
	}
	return f
}

// Remaining returns the seconds left before the timer finishes.
func (t *Timer) Remaining() float64 {
	if t.finished && t.Mode == TimerOnce {
		return 0
	}
	r := t.Duration - t.Elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Reset rewinds the timer, dropping any leftover time.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.justFinished = false
}
