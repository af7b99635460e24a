package component

// Health is the hit point ledger of a vessel. Current is never clamped here:
// it may drop below zero and stays there until the death sweep removes the
// owner.
type Health struct {
	Owner    uint64
	Current  float64
	Max      float64
	BarScale float64
}

func NewHealth(owner uint64, max, barScale float64) Health {
	return Health{Owner: owner, Current: max, Max: max, BarScale: barScale}
}

// Ratio is Current/Max for observers such as health bars.
func (h *Health) Ratio() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// Depleted reports whether the owner is due for removal.
func (h *Health) Depleted() bool {
	return h != nil && h.Current <= 0
}

var HealthComponent = NewComponent[Health]()
