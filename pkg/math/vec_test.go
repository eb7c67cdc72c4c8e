package math

import (
	"math"
	"testing"
)

func TestVec2FromAngle(t *testing.T) {
	tests := []struct {
		name string
		rad  float64
		want Vec2
	}{
		{"zero", 0, Vec2{1, 0}},
		{"quarter", math.Pi / 2, Vec2{0, 1}},
		{"half", math.Pi, Vec2{-1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Vec2FromAngle(tt.rad)
			if math.Abs(float64(got.X-tt.want.X)) > 1e-6 || math.Abs(float64(got.Y-tt.want.Y)) > 1e-6 {
				t.Errorf("Vec2FromAngle(%v) = %v, want %v", tt.rad, got, tt.want)
			}
			if l := got.Length(); l < 0.99999 || l > 1.00001 {
				t.Errorf("Vec2FromAngle(%v).Length() = %v, want 1", tt.rad, l)
			}
		})
	}
}

func TestVec2SubDot(t *testing.T) {
	a := Vec2{3, 5}
	b := Vec2{1, 1}
	if got, want := a.Sub(b), (Vec2{2, 4}); got != want {
		t.Errorf("Vec2.Sub() = %v, want %v", got, want)
	}
	if got := a.Dot(b); got != 8 {
		t.Errorf("Vec2.Dot() = %v, want 8", got)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
	if got := y.Cross(x); got != (Vec3{0, 0, -1}) {
		t.Errorf("Vec3.Cross() reversed = %v, want (0,0,-1)", got)
	}
}

func TestVec3AddSubScale(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	if got, want := a.Add(b), (Vec3{5, 7, 9}); got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
	if got, want := b.Sub(a), (Vec3{3, 3, 3}); got != want {
		t.Errorf("Vec3.Sub() = %v, want %v", got, want)
	}
	if got, want := a.Scale(2), (Vec3{2, 4, 6}); got != want {
		t.Errorf("Vec3.Scale() = %v, want %v", got, want)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Vec3.Dot() = %v, want 32", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{2, -3, 6}
	n := v.Normalize()
	if l := n.Length(); l < 0.99999 || l > 1.00001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	zero := Vec3{}
	if got := zero.Normalize(); !got.IsZero() {
		t.Errorf("Vec3{}.Normalize() = %v, want zero vector", got)
	}
}

func TestVec3XY(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got, want := v.XY(), (Vec2{1, 2}); got != want {
		t.Errorf("Vec3.XY() = %v, want %v", got, want)
	}
}
