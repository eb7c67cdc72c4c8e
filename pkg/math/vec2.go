// Package math provides the small float32 vector types used by the terrain pipeline.
package math

import "math"

// Vec2 is a 2D vector in the terrain's XY plane.
type Vec2 struct {
	X, Y float32
}

// Vec2FromAngle returns the unit vector at the given angle in radians.
func Vec2FromAngle(rad float64) Vec2 {
	return Vec2{float32(math.Cos(rad)), float32(math.Sin(rad))}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}
