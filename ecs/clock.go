package ecs

// Clock is the single time source of a world. It is advanced once per tick
// and every cooldown, lifetime and animation timer reads Delta from it.
type Clock struct {
	Tick    uint64
	Delta   float64
	Elapsed float64
}

// Advance starts a new tick of dt seconds.
func (c *Clock) Advance(dt float64) {
	if c == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	c.Tick++
	c.Delta = dt
	c.Elapsed += dt
}
