package component

// HealthBar mirrors an owner's Health for HUD rendering. It is a child of
// the owner and never writes back.
type HealthBar struct {
	Owner   uint64
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
	Fill    float64
	Visible bool
}

var HealthBarComponent = NewComponent[HealthBar]()
