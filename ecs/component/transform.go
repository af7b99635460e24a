package component

import "github.com/milk9111/broadside/common"

// Transform is an entity's world placement. Rotation is in radians and
// turns the +Y forward axis counter-clockwise.
type Transform struct {
	X        float64
	Y        float64
	Z        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

func (t *Transform) Position() common.Vec2 {
	return common.Vec2{X: t.X, Y: t.Y}
}

func (t *Transform) SetPosition(p common.Vec2) {
	t.X = p.X
	t.Y = p.Y
}

// Forward returns the unit vector the entity faces.
func (t *Transform) Forward() common.Vec2 {
	return common.Forward(t.Rotation)
}

// Local maps an offset in the entity's frame to world space.
func (t *Transform) Local(offset common.Vec2) common.Vec2 {
	return t.Position().Add(offset.Rotate(t.Rotation))
}

var TransformComponent = NewComponent[Transform]()
