package system

import (
	"github.com/milk9111/broadside/ecs"
	"github.com/milk9111/broadside/ecs/component"
)

// InputSource is the player's intent for one tick.
type InputSource interface {
	FireHeld() bool
	CursorWorld() (x, y float64)
	// Steer is in [-1, 1]; positive turns counter-clockwise.
	Steer() float64
	// Throttle is in [-1, 1].
	Throttle() float64
	ToggleCoast() bool
}

// StaticInput is an InputSource with fixed values, used by the headless
// runner and tests.
type StaticInput struct {
	Fire      bool
	CursorX   float64
	CursorY   float64
	SteerV    float64
	ThrottleV float64
	Coast     bool
}

func (s *StaticInput) FireHeld() bool { return s != nil && s.Fire }

func (s *StaticInput) CursorWorld() (float64, float64) {
	if s == nil {
		return 0, 0
	}
	return s.CursorX, s.CursorY
}

func (s *StaticInput) Steer() float64 {
	if s == nil {
		return 0
	}
	return s.SteerV
}

func (s *StaticInput) Throttle() float64 {
	if s == nil {
		return 0
	}
	return s.ThrottleV
}

func (s *StaticInput) ToggleCoast() bool { return s != nil && s.Coast }

// InputSystem copies the input source into the single player's Input.
type InputSystem struct {
	source InputSource
	diag   *diagnostics
}

func NewInputSystem(source InputSource, opts Options) *InputSystem {
	return &InputSystem{source: source, diag: newDiagnostics(opts.logger())}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.source == nil {
		return
	}

	player, _, err := ecs.Single(w, component.PlayerTagComponent.Kind())
	if err != nil {
		i.diag.warn("player", "input: no single player: %v", err)
		return
	}
	i.diag.clear("player")

	x, y := i.source.CursorWorld()
	in := &component.Input{
		Fire:        i.source.FireHeld(),
		CursorX:     x,
		CursorY:     y,
		Steer:       clampUnit(i.source.Steer()),
		Throttle:    clampUnit(i.source.Throttle()),
		ToggleCoast: i.source.ToggleCoast(),
	}
	_ = ecs.Add(w, player, component.InputComponent.Kind(), in)
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
