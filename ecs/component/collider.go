package component

// Collider is a capsule in the entity's local frame: the segment A..B
// swept by Radius. Scale is applied when the shape is built.
type Collider struct {
	AX     float64 `yaml:"ax"`
	AY     float64 `yaml:"ay"`
	BX     float64 `yaml:"bx"`
	BY     float64 `yaml:"by"`
	Radius float64 `yaml:"radius"`
	Scale  float64 `yaml:"scale"`
}

// Scaled returns the capsule with Scale folded in.
func (c Collider) Scaled() Collider {
	s := c.Scale
	if s == 0 {
		s = 1
	}
	return Collider{AX: c.AX * s, AY: c.AY * s, BX: c.BX * s, BY: c.BY * s, Radius: c.Radius * s, Scale: 1}
}

var ColliderComponent = NewComponent[Collider]()
