// Package gamemath holds the small float32 math shared by the simulation and
// the headless tools. World space grows right on X and up on Y.
package gamemath

import "math"

// Vec2 is a single precision 2D vector.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Len2() float32 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.Len2())))
}

// Normalize returns the unit vector pointing along v. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
