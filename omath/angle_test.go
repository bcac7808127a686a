package omath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var axisVectors = []mgl64.Vec3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

func TestSignedAngleAroundAxisSameDirection(t *testing.T) {
	for _, d := range axisVectors {
		for _, axis := range axisVectors {
			if got := SignedAngleAroundAxis(d, d, axis); got != 0 {
				t.Fatalf("angle from %v to itself around %v: expected 0, got %f", d, axis, got)
			}
		}
	}
}

func TestSignedAngleAroundAxisAntisymmetric(t *testing.T) {
	pairs := [][2]mgl64.Vec3{
		{{0, 0, 1}, {1, 0, 0}},
		{{0, 0, 1}, {-1, 0, 1}},
		{{1, 2, 3}, {-3, 0.5, 1}},
		{{0.2, -4, 1}, {5, 1, -2}},
	}
	for _, axis := range []mgl64.Vec3{Up, Right, Forward, {1, 1, 0}} {
		for _, p := range pairs {
			ab := SignedAngleAroundAxis(p[0], p[1], axis)
			ba := SignedAngleAroundAxis(p[1], p[0], axis)
			if math.Abs(ab+ba) > 1e-9 {
				t.Fatalf("angle around %v not antisymmetric for %v: %f vs %f", axis, p, ab, ba)
			}
		}
	}
}

func TestSignedAngleAroundAxisSign(t *testing.T) {
	tests := []struct {
		a, b mgl64.Vec3
		want float64
	}{
		{Forward, Right, 90},
		{Forward, Right.Mul(-1), -90},
		{Forward, mgl64.Vec3{1, 0, 1}, 45},
		// Vertical components are projected away.
		{Forward, mgl64.Vec3{1, 50, 1}, 45},
		{mgl64.Vec3{0, -3, 2}, mgl64.Vec3{-1, 0, 1}, -45},
	}
	for _, tt := range tests {
		if got := SignedAngleAroundAxis(tt.a, tt.b, Up); math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("angle from %v to %v: expected %f, got %f", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestSignedAngleAroundAxisDegenerate(t *testing.T) {
	if got := SignedAngleAroundAxis(Up, Forward, Up); got != 0 {
		t.Fatalf("expected 0 for a direction parallel to the axis, got %f", got)
	}
	if got := SignedAngleAroundAxis(Forward, mgl64.Vec3{0, -2, 0}, Up); got != 0 {
		t.Fatalf("expected 0 for a direction anti-parallel to the axis, got %f", got)
	}
	if got := SignedAngleAroundAxis(Forward, Right, mgl64.Vec3{}); got != 0 {
		t.Fatalf("expected 0 for a zero axis, got %f", got)
	}
}

func TestDeltaAngle(t *testing.T) {
	tests := []struct {
		current, target, want float64
	}{
		{0, 90, 90},
		{0, 270, -90},
		{350, 10, 20},
		{10, 350, -20},
		{10, 190, 180},
		{0, -180, 180},
		{720, 45, 45},
	}
	for _, tt := range tests {
		if got := DeltaAngle(tt.current, tt.target); math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("DeltaAngle(%f, %f): expected %f, got %f", tt.current, tt.target, tt.want, got)
		}
	}
}

func TestProject(t *testing.T) {
	got := Project(mgl64.Vec3{3, 4, 5}, mgl64.Vec3{0, 2, 0})
	if !vecNear(got, mgl64.Vec3{0, 4, 0}, 1e-9) {
		t.Fatalf("expected {0 4 0}, got %v", got)
	}
	if got := Project(mgl64.Vec3{3, 4, 5}, mgl64.Vec3{}); got != (mgl64.Vec3{}) {
		t.Fatalf("expected zero projection on a zero axis, got %v", got)
	}
}

func TestFlatten(t *testing.T) {
	if got := Flatten(mgl64.Vec3{3, -7, 5}); got != (mgl64.Vec3{3, 0, 5}) {
		t.Fatalf("expected {3 0 5}, got %v", got)
	}
}
