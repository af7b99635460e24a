package common

import "math"

// TickRate is the simulation rate the demo and the headless runner step at.
const TickRate = 60

// TurretZOffset keeps turrets layered above the hull they are mounted on.
const TurretZOffset = 10.0

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Vec2 is a 2D vector in world units. +Y is a sprite's forward axis.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

func (v Vec2) Neg() Vec2 { return Vec2{X: -v.X, Y: -v.Y} }

// Perp rotates v a quarter turn counter-clockwise.
func (v Vec2) Perp() Vec2 { return Vec2{X: -v.Y, Y: v.X} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rotate rotates v by angle radians counter-clockwise.
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Angle returns the angle between +X and v.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Forward returns the unit +Y axis of something rotated by angle.
func Forward(angle float64) Vec2 {
	return Vec2{X: 0, Y: 1}.Rotate(angle)
}

// NearlyEqual compares within eps.
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
