package gamemath

import "math"

// Vec is a 2D vector in level space (y axis points up).
type Vec struct {
	X, Y float64
}

func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Ortho rotates v by 90 degrees.
func (v Vec) Ortho() Vec {
	return Vec{X: -v.Y, Y: v.X}
}

// Cross is the z component of the 3D cross product; its sign gives the
// turn direction from v to o.
func (v Vec) Cross(o Vec) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Unit returns v scaled to length 1. A zero vector yields NaN components.
func (v Vec) Unit() Vec {
	l := v.Len()
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Angle returns the turn angle in degrees between two consecutive edge
// vectors: 180 - the angle between them. Both vectors must be non-zero.
func (v Vec) Angle(o Vec) float64 {
	dot := Clamp(v.Unit().Dot(o.Unit()), -1, 1)
	return 180 - math.Acos(dot)*180/math.Pi
}
