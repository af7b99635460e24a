package component

// Input stores per-frame intent for the player vessel.
type Input struct {
	Fire     bool
	CursorX  float64
	CursorY  float64
	Steer    float64
	Throttle float64
	// ToggleCoast flips ShipStats.Coasting on the tick it is pressed.
	ToggleCoast bool
}

var InputComponent = NewComponent[Input]()
